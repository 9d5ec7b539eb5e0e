package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// SystemAuthor is the name attached to server-generated room messages.
const SystemAuthor = "server"

// Translator converts text to a target language before broadcast.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

type submission struct {
	client *Client
	cmd    *Command
}

type delivery struct {
	room  string
	event *Event
}

// Hub owns the session registry and the room store. All shared state is
// confined to the goroutine running Run; transports reach it through
// channels only, so precondition checks and mutations are atomic.
type Hub struct {
	registry   *Registry
	rooms      map[string]*Room
	translator Translator
	targetLang string

	inbox      chan submission
	deliveries chan delivery
	register   chan *Client
	unregister chan *Client

	clients map[*Client]struct{}
	log     *zerolog.Logger
}

// NewHub creates a hub that translates outbound chat into targetLang.
func NewHub(translator Translator, targetLang string, logger *zerolog.Logger) *Hub {
	return &Hub{
		registry:   NewRegistry(),
		rooms:      make(map[string]*Room),
		translator: translator,
		targetLang: targetLang,
		inbox:      make(chan submission, 64),
		deliveries: make(chan delivery, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		log:        logger,
	}
}

// Run processes registrations, commands, and deferred deliveries until the
// context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = struct{}{}
		case c := <-h.unregister:
			h.disconnect(c)
		case sub := <-h.inbox:
			if _, ok := h.clients[sub.client]; !ok {
				continue
			}
			h.dispatch(ctx, sub.client, sub.cmd)
		case d := <-h.deliveries:
			if room, ok := h.rooms[d.room]; ok {
				room.Broadcast(d.event)
			}
		case <-ctx.Done():
			return
		}
	}
}

// RegisterClient announces a new connection and starts pumping its commands
// into the hub. The caller must close the client's Commands channel when the
// connection ends, then call UnregisterClient.
func (h *Hub) RegisterClient(c *Client) {
	h.register <- c
	go func() {
		for cmd := range c.Commands {
			h.inbox <- submission{client: c, cmd: cmd}
		}
	}()
}

// UnregisterClient runs disconnect cleanup for a closed connection.
func (h *Hub) UnregisterClient(c *Client) {
	h.unregister <- c
}

func (h *Hub) dispatch(ctx context.Context, c *Client, cmd *Command) {
	var err error
	switch cmd.Kind {
	case CommandLogin:
		err = h.handleLogin(c, cmd.Name)
	case CommandJoinRoom:
		err = h.handleJoinRoom(c, cmd.Room)
	case CommandCreateRoom:
		err = h.handleCreateRoom(c, cmd.Room)
	case CommandSendMessage:
		err = h.handleSendMessage(ctx, c, cmd.Room, cmd.Text)
	case CommandDeleteMessage:
		err = h.handleDeleteMessage(c, cmd.Room, cmd.Text)
	case CommandAppointAdmin:
		err = h.handleAppointAdmin(c, cmd.Room, cmd.Admin)
	case CommandLeaveRoom:
		err = h.handleLeaveRoom(c, cmd.Room)
	}
	if err != nil {
		// The wire protocol keeps most precondition failures silent.
		h.log.Debug().Err(err).Str("client_id", c.ID).Str("room", cmd.Room).Msg("command rejected")
	}
}

func (h *Hub) handleLogin(c *Client, name string) error {
	ok := h.registry.Login(name, c)
	c.send(&Event{Kind: EventLoginResult, Success: ok})
	if !ok {
		return ErrNameTaken
	}
	h.log.Info().Str("client_id", c.ID).Str("name", name).Msg("client logged in")
	return nil
}

func (h *Hub) handleJoinRoom(c *Client, name string) error {
	room, ok := h.rooms[name]
	if !ok {
		return ErrRoomNotFound
	}
	// History replay only: joining never grants membership. The protocol
	// reserves membership for room creators.
	c.send(&Event{Kind: EventHistory, Room: name, Messages: room.History()})
	return nil
}

func (h *Hub) handleCreateRoom(c *Client, name string) error {
	if c.Name == "" {
		c.send(&Event{Kind: EventCreateRoomResult, Success: false})
		return ErrNotLoggedIn
	}
	if _, exists := h.rooms[name]; exists {
		c.send(&Event{Kind: EventCreateRoomResult, Success: false})
		return ErrRoomExists
	}
	h.rooms[name] = NewRoom(name, c)
	c.Rooms[name] = struct{}{}
	c.send(&Event{Kind: EventCreateRoomResult, Success: true})
	h.log.Info().Str("room", name).Str("name", c.Name).Msg("room created")
	return nil
}

func (h *Hub) handleSendMessage(ctx context.Context, c *Client, roomName, text string) error {
	if _, member := c.Rooms[roomName]; !member {
		return ErrNotInRoom
	}
	room, ok := h.rooms[roomName]
	if !ok {
		return ErrRoomNotFound
	}
	room.AppendMessage(Message{From: c.Name, Text: text})
	go h.translateAndDeliver(ctx, roomName, c.Name, text)
	return nil
}

// translateAndDeliver runs outside the hub goroutine so a slow translation
// stalls only this message, then re-enters through the deliveries channel.
func (h *Hub) translateAndDeliver(ctx context.Context, room, from, text string) {
	translated, err := h.translator.Translate(ctx, text, h.targetLang)
	if err != nil {
		h.log.Warn().Err(err).Str("room", room).Msg("translation failed, broadcasting original text")
		translated = text
	}
	select {
	case h.deliveries <- delivery{
		room:  room,
		event: &Event{Kind: EventRoomMessage, Room: room, Message: Message{From: from, Text: translated}},
	}:
	case <-ctx.Done():
	}
}

func (h *Hub) handleDeleteMessage(c *Client, roomName, text string) error {
	if _, member := c.Rooms[roomName]; !member {
		return ErrNotInRoom
	}
	room, ok := h.rooms[roomName]
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsAdmin(c.Name) {
		return ErrNotAdmin
	}
	room.DeleteMessages(text)
	room.Broadcast(&Event{Kind: EventMessageDeleted, Room: roomName, Message: Message{Text: text}})
	return nil
}

func (h *Hub) handleAppointAdmin(c *Client, roomName, target string) error {
	if _, member := c.Rooms[roomName]; !member {
		return ErrNotInRoom
	}
	room, ok := h.rooms[roomName]
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsAdmin(c.Name) {
		return ErrNotAdmin
	}
	if !room.HasMemberNamed(target) {
		return ErrNotAMember
	}
	room.AppointAdmin(target)
	room.Broadcast(systemMessage(roomName, fmt.Sprintf("%s ha nomenat a %s com a administrador", c.Name, target)))
	return nil
}

func (h *Hub) handleLeaveRoom(c *Client, roomName string) error {
	if _, member := c.Rooms[roomName]; !member {
		return ErrNotInRoom
	}
	delete(c.Rooms, roomName)
	room, ok := h.rooms[roomName]
	if !ok {
		return ErrRoomNotFound
	}
	if room.RemoveMember(c) {
		room.Broadcast(systemMessage(roomName, fmt.Sprintf("%s ha abandonat la sala", c.Name)))
	}
	return nil
}

// disconnect reconciles registry and room state after a connection drops.
// Admin entries persist; rooms live for the process lifetime.
func (h *Hub) disconnect(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	if c.Name != "" {
		h.registry.Logout(c)
		for name := range c.Rooms {
			room, ok := h.rooms[name]
			if !ok {
				continue
			}
			if room.RemoveMember(c) {
				room.Broadcast(systemMessage(name, fmt.Sprintf("%s ha abandonat la sala", c.Name)))
			}
		}
		h.log.Info().Str("client_id", c.ID).Str("name", c.Name).Msg("client disconnected")
	}
	close(c.Events)
}

func systemMessage(room, text string) *Event {
	return &Event{Kind: EventRoomMessage, Room: room, Message: Message{From: SystemAuthor, Text: text}}
}
