package models

// UserRequest is one entry of a user's activity log.
type UserRequest struct {
	RequestId string `json:"request_id"`
	Method    string `json:"method"`
	Route     string `json:"route"`
}
