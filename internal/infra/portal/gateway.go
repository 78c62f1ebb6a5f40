// Package portal implements the authenticated HTTP gateway to the chain's
// back office: the login flow, the per-kind report export requests and the
// decoding of the returned spreadsheets.
package portal

import (
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"time"

	"chainsync/internal/domain/entity"
	"chainsync/internal/domain/service"
)

// Browser user agents rotated across sessions; the portal throttles unknown
// clients harder.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.93 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/64.0.3282.186 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/44.0.2403.157 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.114 Safari/537.36",
}

// Config carries the portal endpoints and transport tuning.
type Config struct {
	AuthBaseURL   string        // e.g. https://auth.example.com
	OfficeBaseURL string        // e.g. https://officemanager.example.com
	CountryCode   string        // Login context field, e.g. "Ru".
	Timeout       time.Duration // Transport-level request timeout.
}

type gateway struct {
	cfg    Config
	logger *slog.Logger
}

// NewGateway creates the portal gateway.
func NewGateway(cfg Config, logger *slog.Logger) service.PortalGateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 180 * time.Second
	}

	return &gateway{cfg: cfg, logger: logger}
}

// NewSession creates a fresh unauthenticated session for the unit. Each
// session owns its own cookie jar, so authentication state dies with it.
func (g *gateway) NewSession(unit *entity.Unit) service.ReportSession {
	jar, _ := cookiejar.New(nil)

	return &session{
		cfg:  g.cfg,
		unit: unit,
		client: &http.Client{
			Timeout: g.cfg.Timeout,
			Jar:     jar,
		},
		userAgent: userAgents[rand.Intn(len(userAgents))],
		logger:    g.logger,
	}
}
