package proto

// Inbound is the envelope for frames coming from the client. The protocol is
// flat: every field lives next to the type discriminator and each type reads
// only the fields it needs.
type Inbound struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Room     string `json:"room,omitempty"`
	Message  string `json:"message,omitempty"`
	NewAdmin string `json:"newAdmin,omitempty"`
}

const (
	InboundTypeLogin         = "login"
	InboundTypeJoinRoom      = "joinRoom"
	InboundTypeCreateRoom    = "createRoom"
	InboundTypeMessage       = "message"
	InboundTypeDeleteMessage = "deleteMessage"
	InboundTypeAppointAdmin  = "appointAdmin"
	InboundTypeLeaveRoom     = "leaveRoom"

	OutboundTypeLogin          = "login"
	OutboundTypeCreateRoom     = "createRoom"
	OutboundTypeMessage        = "message"
	OutboundTypeDeleteMessage  = "deleteMessage"
	OutboundTypeMessageHistory = "messageHistory"
)

// Result answers a login or createRoom attempt.
type Result struct {
	Type    string `json:"type"`
	Success bool   `json:"success"`
}

// ChatMessage is a chat line broadcast to room members. History entries use
// the same shape.
type ChatMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	From    string `json:"from"`
}

// Deletion notifies room members that messages with this text were removed.
type Deletion struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// History replays a room's message log to a single client.
type History struct {
	Type    string        `json:"type"`
	History []ChatMessage `json:"history"`
}
