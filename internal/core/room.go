package core

import "github.com/samber/lo"

// Room groups clients subscribed to the same channel. Members keep insertion
// order; admins is append-only and may hold names that are no longer members.
type Room struct {
	Name     string
	members  []*Client
	admins   []string
	messages []Message
}

// NewRoom constructs a room with the creator as sole member and admin.
func NewRoom(name string, creator *Client) *Room {
	return &Room{
		Name:    name,
		members: []*Client{creator},
		admins:  []string{creator.Name},
	}
}

// RemoveMember deletes a client from the member list. Returns true if removed.
func (r *Room) RemoveMember(c *Client) bool {
	for i, member := range r.members {
		if member == c {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}

// HasMemberNamed reports whether any current member carries the given name.
func (r *Room) HasMemberNamed(name string) bool {
	return lo.SomeBy(r.members, func(c *Client) bool { return c.Name == name })
}

// IsAdmin reports whether the name is in the room's admin list.
func (r *Room) IsAdmin(name string) bool {
	return lo.Contains(r.admins, name)
}

// AppointAdmin appends the name to the admin list. The list is append-only;
// repeated appointments accumulate.
func (r *Room) AppointAdmin(name string) {
	r.admins = append(r.admins, name)
}

// AppendMessage records a message in the room's log.
func (r *Room) AppendMessage(msg Message) {
	r.messages = append(r.messages, msg)
}

// DeleteMessages removes every stored message whose text equals text.
func (r *Room) DeleteMessages(text string) {
	r.messages = lo.Filter(r.messages, func(msg Message, _ int) bool {
		return msg.Text != text
	})
}

// History returns a copy of the message log, safe to hand to other goroutines.
func (r *Room) History() []Message {
	history := make([]Message, len(r.messages))
	copy(history, r.messages)
	return history
}

// Broadcast sends an event to all members in member-list order. Each send is
// independent; a slow consumer drops its copy and never blocks the rest.
func (r *Room) Broadcast(event *Event) {
	for _, member := range r.members {
		member.send(event)
	}
}
