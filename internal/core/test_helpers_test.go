package core

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type stubTranslator struct {
	err error
}

func (s stubTranslator) Translate(_ context.Context, text, targetLang string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "[" + targetLang + "] " + text, nil
}

var clientSeq atomic.Int64

func newTestHub(t *testing.T, tr Translator) *Hub {
	t.Helper()

	if tr == nil {
		tr = stubTranslator{}
	}
	logger := zerolog.Nop()
	hub := NewHub(tr, "es", &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func connect(t *testing.T, hub *Hub) *Client {
	t.Helper()

	c := NewClient(fmt.Sprintf("c%d", clientSeq.Add(1)))
	hub.RegisterClient(c)
	return c
}

func login(t *testing.T, c *Client, name string) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandLogin, Name: name}
	ev := mustEvent(t, c.Events, EventLoginResult)
	if !ev.Success {
		t.Fatalf("login %q failed", name)
	}
}

func createRoom(t *testing.T, c *Client, room string) {
	t.Helper()

	c.Commands <- &Command{Kind: CommandCreateRoom, Room: room}
	ev := mustEvent(t, c.Events, EventCreateRoomResult)
	if !ev.Success {
		t.Fatalf("createRoom %q failed", room)
	}
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func mustNoEvent(t *testing.T, ch <-chan *Event, kind EventKind) {
	t.Helper()

	deadline := time.Now().Add(200 * time.Millisecond)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev != nil && ev.Kind == kind {
				t.Fatalf("unexpected event: %+v", ev)
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
}
