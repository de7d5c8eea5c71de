package dtos

// APIResponse is the standard JSON envelope for non-search endpoints.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}
