package handlers

import (
	"net/http"

	"github.com/1ShivamPandey/apnafinance/internal/api/response"
	"github.com/1ShivamPandey/apnafinance/internal/service"
)

// SystemHandler handles system-related HTTP requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{
		systemService: systemService,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Health reports service liveness.
//
// Endpoint: GET /api/system/health
// Response: 200 OK with HealthResponse
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health := h.systemService.CheckHealth()

	response.RespondJSON(w, http.StatusOK, HealthResponse{
		Status: health.Status,
		Uptime: health.Uptime,
	})
}

// VersionInfoResponse represents the version check response.
type VersionInfoResponse struct {
	AppVersion    string `json:"app_version"`
	QuoteProvider string `json:"quote_provider"`
	GoVersion     string `json:"go_version"`
}

// Version reports application version and dependency information.
//
// Endpoint: GET /api/system/version
// Response: 200 OK with VersionInfoResponse
func (h *SystemHandler) Version(w http.ResponseWriter, r *http.Request) {
	version := h.systemService.CheckVersion()

	response.RespondJSON(w, http.StatusOK, VersionInfoResponse{
		AppVersion:    version.AppVersion,
		QuoteProvider: version.QuoteProvider,
		GoVersion:     version.GoVersion,
	})
}
