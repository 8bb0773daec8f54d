// Package domain contains entity without logic, just meta-data
package domain

type UserID string

// User is the room-facing view of a connected client as it appears in
// user_list and user_joined frames. IsActive mirrors the client's live
// speaking state.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
	IsActive bool   `json:"isActive"`
}
