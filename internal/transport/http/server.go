package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/aboutmisha/flight-deals-bot/internal/shared/config"
	sloghttp "github.com/samber/slog-http"
)

// Server publishes the deal feed written by the bot runs. It serves
// the RSS file as-is, so it can sit next to the bot process or behind
// a cron job that only refreshes the file.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a new HTTP server
func New(cfg *config.Config) *Server {
	return &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
}

// SetLogger sets the logger
func (s *Server) SetLogger(logger *slog.Logger) {
	s.logger = logger
}

// Start starts the HTTP server
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /rss", s.handleRSSFeed)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /", s.handleRoot)

	addr := fmt.Sprintf(":%s", s.cfg.HTTPPort)
	s.logger.Info("Feed server starting", "addr", addr, "feed_path", s.cfg.FeedPath)

	// Use slog-http middleware with recovery
	handler := sloghttp.Recovery(mux)
	handler = sloghttp.New(s.logger)(handler)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

func (s *Server) handleRSSFeed(w http.ResponseWriter, r *http.Request) {
	if s.cfg.FeedPath == "" {
		http.Error(w, "Feed export is not configured", http.StatusNotFound)
		return
	}

	rss, err := os.ReadFile(s.cfg.FeedPath)
	if err != nil {
		s.logger.Error("Error reading feed file", "path", s.cfg.FeedPath, "error", err)
		http.Error(w, "Feed is not available yet", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	w.WriteHeader(http.StatusOK)
	w.Write(rss)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Flight Deals Feed</title>
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 50px auto; padding: 20px; }
        h1 { color: #333; }
        .info { background: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0; }
        code { background: #e8e8e8; padding: 2px 6px; border-radius: 3px; }
    </style>
</head>
<body>
    <h1>Flight Deals Feed</h1>
    <div class="info">
        <p>This service publishes the cheap flight deals found by the bot.</p>
        <p>The RSS feed is available at: <code>/rss</code></p>
    </div>
    <p><a href="/health">Health Check</a></p>
</body>
</html>`
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}
