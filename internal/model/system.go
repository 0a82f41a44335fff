package model

// HealthStatus reports the liveness of the service.
type HealthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// VersionInfo contains version and dependency information for the application.
type VersionInfo struct {
	AppVersion    string `json:"app_version"`
	QuoteProvider string `json:"quote_provider"`
	GoVersion     string `json:"go_version"`
}
