package server

import "time"

// MessageType identifies the type of message
type MessageType string

const (
	// Client -> Server
	MessageTypeShowdown MessageType = "showdown"

	// Server -> Client
	MessageTypeWinners MessageType = "winners"
	MessageTypeError   MessageType = "error"
)

// ShowdownRequest asks the server to pick the winners among hands.
type ShowdownRequest struct {
	Type  MessageType `json:"type"`
	ID    string      `json:"id,omitempty"`
	Hands []string    `json:"hands"`
}

// Response is sent for every request. Winners and Keys are set for
// MessageTypeWinners, Error for MessageTypeError.
type Response struct {
	Type    MessageType `json:"type"`
	ID      string      `json:"id,omitempty"`
	Winners []string    `json:"winners,omitempty"`
	// Keys holds the rank key of each winner, or "" for a lone hand that
	// does not parse.
	Keys      []string  `json:"keys,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
