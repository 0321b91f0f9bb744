// Package api exposes the analytics engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/collector"
	"WealthSentinel/internal/metrics"
	"WealthSentinel/internal/recorder"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Metrics   *metrics.Metrics
}

// NewServer creates a new Server. m may be nil.
func NewServer(col *collector.Collector, rec recorder.Recorder, m *metrics.Metrics) *Server {
	return &Server{Collector: col, Recorder: rec, Metrics: m}
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", s.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Get("/report", s.handleReport)
		r.Post("/report", s.handleBuildReport)
		r.Get("/history", s.handleHistory)

		r.Post("/xirr", s.handleXIRR)
		r.Post("/xirr/investment", s.handleInvestmentXIRR)
		r.Post("/cagr", s.handleCAGR)
		r.Post("/sip", s.handleSIP)
		r.Post("/growth", s.handleGrowth)
		r.Post("/fire", s.handleFIRE)
		r.Post("/score", s.handleScore)
		r.Post("/emergency", s.handleEmergency)
		r.Post("/velocity", s.handleVelocity)
		r.Post("/income", s.handleIncome)
		r.Post("/timeline", s.handleTimeline)
	})

	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		s.Metrics.ObserveRequest(r.Method, route, ww.Status(), time.Since(start))
		log.WithFields(log.Fields{
			"request_id": middleware.GetReqID(r.Context()),
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"bytes":      ww.BytesWritten(),
			"elapsed":    time.Since(start).String(),
		}).Info("request")
	})
}
