package httpapi

import (
	"net/http"
	"time"
)

// ServerInfo describes the server's capabilities.
type ServerInfo struct {
	APIVersion string                      `json:"apiVersion"`
	ServerTime string                      `json:"serverTime"`
	Entities   map[string]EntityCapability `json:"entities"`
	Sheet      SheetCapability             `json:"sheet"`
	RateLimit  *RateLimitInfo              `json:"rateLimit,omitempty"`
}

// EntityCapability describes what the REST surface supports per entity.
type EntityCapability struct {
	Read   bool `json:"read"`
	Write  bool `json:"write"`
	Delete bool `json:"delete"`
}

// SheetCapability describes the import/export pipelines.
type SheetCapability struct {
	ImportKinds []string `json:"importKinds"`
	ExportKinds []string `json:"exportKinds"`
	Policies    []string `json:"policies"`
}

// Info handles GET /v1/info
// Can be called without any prior setup to discover capabilities.
func (s *Server) Info(w http.ResponseWriter, r *http.Request) {
	info := ServerInfo{
		APIVersion: "1.0",
		ServerTime: time.Now().UTC().Format(time.RFC3339Nano),
		Entities: map[string]EntityCapability{
			"leads":         {Read: true, Write: true, Delete: true},
			"companies":     {Read: true, Write: true, Delete: true},
			"follow-ups":    {Read: true, Write: true, Delete: true},
			"call-notes":    {Read: true, Write: true, Delete: true},
			"emails":        {Read: true, Write: true, Delete: true},
			"users":         {Read: true, Write: true, Delete: false},
			"notifications": {Read: true, Write: true, Delete: false},
		},
		Sheet: SheetCapability{
			ImportKinds: []string{"leads", "companies"},
			ExportKinds: []string{"leads", "companies"},
			Policies:    []string{"crm", "excel", "manual", "newest"},
		},
		RateLimit: &s.RateLimitConfig,
	}

	writeJSON(w, http.StatusOK, info)
}
