package service

import (
	"runtime"
	"time"

	"github.com/1ShivamPandey/apnafinance/internal/model"
	"github.com/1ShivamPandey/apnafinance/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	quoteProvider string
	started       time.Time
}

// NewSystemService creates a new SystemService. quoteProvider names the
// upstream price source reported by the version endpoint.
func NewSystemService(quoteProvider string) *SystemService {
	return &SystemService{
		quoteProvider: quoteProvider,
		started:       time.Now(),
	}
}

// CheckHealth reports the liveness of the service. There is no backing
// store to probe, so a responding process is a healthy one.
func (s *SystemService) CheckHealth() model.HealthStatus {
	return model.HealthStatus{
		Status: "healthy",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	}
}

// CheckVersion reports build and dependency information.
func (s *SystemService) CheckVersion() model.VersionInfo {
	return model.VersionInfo{
		AppVersion:    version.Version,
		QuoteProvider: s.quoteProvider,
		GoVersion:     runtime.Version(),
	}
}
