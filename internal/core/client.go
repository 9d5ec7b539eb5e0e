package core

// Client is a chat participant as seen by the core layer. Name stays empty
// until a login command succeeds; Rooms is the authoritative membership set
// used for precondition checks and disconnect cleanup. Both fields are
// touched only by the hub goroutine after registration.
type Client struct {
	ID       string
	Name     string
	Commands chan *Command
	Events   chan *Event
	Rooms    map[string]struct{}
}

// NewClient constructs a client with initialized channels.
func NewClient(id string) *Client {
	return &Client{
		ID:       id,
		Commands: make(chan *Command, 8),
		Events:   make(chan *Event, 32),
		Rooms:    make(map[string]struct{}),
	}
}

// send delivers an event without blocking the hub. Slow consumers drop.
func (c *Client) send(event *Event) {
	select {
	case c.Events <- event:
	default:
	}
}
