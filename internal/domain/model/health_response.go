package model

// Status represents a component health state.
type Status string

const (
	StatusUp   Status = "UP"
	StatusDown Status = "DOWN"
)

// ComponentHealthStatus is the health of one dependency.
type ComponentHealthStatus struct {
	Status  Status            `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse aggregates the health of the service's dependencies.
type HealthResponse struct {
	Status   Status                `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Redis    ComponentHealthStatus `json:"redis"`
}
