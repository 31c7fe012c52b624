package models

// Chat message roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatMessage is one entry in a concierge transcript. Transcripts are
// append-only for the lifetime of a session.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
