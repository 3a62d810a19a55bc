package models

// Store connectivity states reported by the health endpoint.
const (
	StatusConnected    = "connected"
	StatusDisconnected = "disconnected"
)

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	// Status is either StatusConnected or StatusDisconnected.
	Status string `json:"status"`

	// Version is the running server version, if known.
	Version string `json:"version,omitempty"`
}

// Serving reports whether the store behind the server is reachable.
func (h HealthStatus) Serving() bool {
	return h.Status == StatusConnected
}
