package recorder

import (
	"fmt"
	"strconv"
	"strings"
)

// dialect captures the DDL and placeholder differences between backends.
type dialect struct {
	name     string // database/sql driver name
	serialPK string
	float    string
	dollar   bool // $1 placeholders instead of ?
}

var dialects = map[string]dialect{
	"sqlite": {
		name:     "sqlite",
		serialPK: "INTEGER PRIMARY KEY AUTOINCREMENT",
		float:    "REAL",
	},
	"postgres": {
		name:     "postgres",
		serialPK: "BIGSERIAL PRIMARY KEY",
		float:    "DOUBLE PRECISION",
		dollar:   true,
	},
}

func lookupDialect(driver string) (dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return dialect{}, fmt.Errorf("unsupported database driver %q", driver)
	}
	return d, nil
}

// rebind rewrites ? placeholders for drivers that number them.
func (d dialect) rebind(query string) string {
	if !d.dollar {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
