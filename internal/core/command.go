package core

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandLogin binds a display name to the connection.
	CommandLogin CommandKind = iota
	// CommandJoinRoom requests the message history of a room.
	CommandJoinRoom
	// CommandCreateRoom creates a room owned and administered by the sender.
	CommandCreateRoom
	// CommandSendMessage delivers a chat message to room participants.
	CommandSendMessage
	// CommandDeleteMessage removes stored messages matching a text.
	CommandDeleteMessage
	// CommandAppointAdmin grants admin rights to another member.
	CommandAppointAdmin
	// CommandLeaveRoom unsubscribes the client from a room.
	CommandLeaveRoom
)

// Command represents an action requested by a client.
type Command struct {
	Kind  CommandKind
	Name  string // display name for CommandLogin
	Room  string
	Text  string // message body for send/delete
	Admin string // target name for CommandAppointAdmin
}
