package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/mribalta/babelchat-server/internal/config"
	"github.com/mribalta/babelchat-server/internal/core"
	"github.com/mribalta/babelchat-server/internal/proto"
	"github.com/mribalta/babelchat-server/internal/translate"
)

func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zerolog.Nop()
	hub := core.NewHub(translate.Noop{}, "es", &logger)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	server := NewServer(hub, config.Config{
		Addr:              ":0",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
	}, &logger)

	ts := httptest.NewServer(server.Handler)
	t.Cleanup(ts.Close)

	return ts
}

func dial(t *testing.T, ctx context.Context, ts *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "done") })
	return conn
}

// readUntil skips interleaved frames until one matches the wanted type.
func readUntil(t *testing.T, ctx context.Context, conn *websocket.Conn, wantType string) map[string]any {
	t.Helper()

	for {
		var frame map[string]any
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			t.Fatalf("read frame: %v", err)
		}
		if frame["type"] == wantType {
			return frame
		}
	}
}

func TestLandingPage(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("landing request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "¡Bienvenido a mi servidor de chat!" {
		t.Fatalf("unexpected landing body: %q", body)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := startTestServer(t)

	resp, err := ts.Client().Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}
}

func TestLoginCreateRoomAndMessage(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)

	_ = wsjson.Write(ctx, connA, proto.Inbound{Type: "login", Name: "alice"})
	reply := readUntil(t, ctx, connA, "login")
	if reply["success"] != true {
		t.Fatalf("login rejected: %v", reply)
	}

	_ = wsjson.Write(ctx, connA, proto.Inbound{Type: "createRoom", Room: "lobby"})
	reply = readUntil(t, ctx, connA, "createRoom")
	if reply["success"] != true {
		t.Fatalf("createRoom rejected: %v", reply)
	}

	_ = wsjson.Write(ctx, connA, proto.Inbound{Type: "message", Room: "lobby", Message: "hola"})
	msg := readUntil(t, ctx, connA, "message")
	if msg["message"] != "hola" || msg["from"] != "alice" {
		t.Fatalf("unexpected broadcast: %v", msg)
	}

	// A second client replays the log via joinRoom.
	connB := dial(t, ctx, ts)
	_ = wsjson.Write(ctx, connB, proto.Inbound{Type: "joinRoom", Room: "lobby"})
	history := readUntil(t, ctx, connB, "messageHistory")
	entries, ok := history["history"].([]any)
	if !ok || len(entries) != 1 {
		t.Fatalf("unexpected history: %v", history)
	}
	entry := entries[0].(map[string]any)
	if entry["message"] != "hola" || entry["from"] != "alice" {
		t.Fatalf("unexpected history entry: %v", entry)
	}
}

func TestDuplicateLoginAcrossConnections(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)
	_ = wsjson.Write(ctx, connA, proto.Inbound{Type: "login", Name: "alice"})
	if reply := readUntil(t, ctx, connA, "login"); reply["success"] != true {
		t.Fatalf("first login rejected: %v", reply)
	}

	connB := dial(t, ctx, ts)
	_ = wsjson.Write(ctx, connB, proto.Inbound{Type: "login", Name: "alice"})
	if reply := readUntil(t, ctx, connB, "login"); reply["success"] != false {
		t.Fatalf("duplicate login must be rejected: %v", reply)
	}
}

func TestMalformedFrameKeepsConnectionOpen(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn := dial(t, ctx, ts)

	if err := conn.Write(ctx, websocket.MessageText, []byte("{not json")); err != nil {
		t.Fatalf("write malformed frame: %v", err)
	}
	// Missing required field: dropped without a reply.
	_ = wsjson.Write(ctx, conn, proto.Inbound{Type: "login"})

	_ = wsjson.Write(ctx, conn, proto.Inbound{Type: "login", Name: "alice"})
	if reply := readUntil(t, ctx, conn, "login"); reply["success"] != true {
		t.Fatalf("connection must survive malformed frames: %v", reply)
	}
}

func TestDisconnectReleasesName(t *testing.T) {
	ts := startTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	connA := dial(t, ctx, ts)
	_ = wsjson.Write(ctx, connA, proto.Inbound{Type: "login", Name: "alice"})
	readUntil(t, ctx, connA, "login")
	connA.Close(websocket.StatusNormalClosure, "bye")

	// The reconciler frees the name; polling covers the close round-trip.
	deadline := time.Now().Add(2 * time.Second)
	for {
		connB := dial(t, ctx, ts)
		_ = wsjson.Write(ctx, connB, proto.Inbound{Type: "login", Name: "alice"})
		if reply := readUntil(t, ctx, connB, "login"); reply["success"] == true {
			return
		}
		connB.Close(websocket.StatusNormalClosure, "retry")
		if time.Now().After(deadline) {
			t.Fatal("name was not released after disconnect")
		}
		time.Sleep(50 * time.Millisecond)
	}
}
