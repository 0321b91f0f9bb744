package collector

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"

	"WealthSentinel/internal/model"
)

// APISource implements Source against a ledger REST API.
type APISource struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewAPISource creates a new source with optional proxy support.
func NewAPISource(baseURL, apiKey, proxyURL string) *APISource {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &APISource{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (s *APISource) Name() string { return "api" }

func (s *APISource) FetchLedger(ctx context.Context) (*model.Ledger, error) {
	endpoint := s.BaseURL + "/api/v1/ledger"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch ledger: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch ledger: status %d, body: %s", resp.StatusCode, string(body))
	}

	ledger := &model.Ledger{}
	if err := json.NewDecoder(resp.Body).Decode(ledger); err != nil {
		return nil, fmt.Errorf("decode ledger: %w", err)
	}
	sortTransactions(ledger.Transactions)
	return ledger, nil
}
