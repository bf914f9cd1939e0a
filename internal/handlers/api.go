package handlers

import (
	"net/http"
	"strings"

	"github.com/arush-mehrotra/finance-ai-agent/internal/common"
)

// APIHandler serves the service-level endpoints: health, version, and the
// JSON 404 for unmatched API paths.
type APIHandler struct {
	config *common.Config
}

// NewAPIHandler creates a new API handler.
func NewAPIHandler(config *common.Config) *APIHandler {
	return &APIHandler{config: config}
}

// Health reports process liveness and per-provider availability. A missing
// key is reported, not fatal here; startup validation already rejects it.
func (h *APIHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	availability := func(key string) string {
		if key == "" {
			return "unavailable"
		}
		return "available"
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"services": map[string]string{
			"stock_data": availability(h.config.MarketData.APIKey),
			"news":       availability(h.config.News.APIKey),
			"ai_agent":   availability(h.config.Claude.APIKey),
		},
	})
}

// Version reports build information.
func (h *APIHandler) Version(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// NotFound answers unmatched paths. API paths get the JSON error envelope;
// anything else gets a plain 404.
func (h *APIHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		WriteError(w, http.StatusNotFound, "not found", "no route for "+r.URL.Path)
		return
	}
	http.NotFound(w, r)
}
