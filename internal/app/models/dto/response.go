package dto

import "time"

// APIResponse is the success envelope of the JSON endpoints
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data, Timestamp: time.Now()}
}

// HealthResponse reports the service and backend status
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Session string `json:"session_store"`
}
