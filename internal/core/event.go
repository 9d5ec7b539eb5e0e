package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventLoginResult answers a login attempt.
	EventLoginResult EventKind = iota
	// EventCreateRoomResult answers a room creation attempt.
	EventCreateRoomResult
	// EventHistory delivers a room's message history to a single client.
	EventHistory
	// EventRoomMessage notifies room members about a chat message.
	EventRoomMessage
	// EventMessageDeleted notifies room members that messages were removed.
	EventMessageDeleted
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind     EventKind
	Room     string
	Success  bool
	Message  Message
	Messages []Message // for EventHistory
}
