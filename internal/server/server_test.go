package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skoona/sknSensors-IRService/internal/engine"
	"github.com/skoona/sknSensors-IRService/internal/ir"
)

func newTestServer(t *testing.T) (*Server, *engine.Engine, *httptest.Server) {
	t.Helper()

	loop := ir.NewLoopback()
	eng := engine.New(loop, loop, engine.Config{})
	s := New("127.0.0.1:0", "TestDevice", eng)

	ts := httptest.NewServer(s.srv.Handler)
	t.Cleanup(ts.Close)

	return s, eng, ts
}

func TestStatusEndpoint(t *testing.T) {
	_, eng, ts := newTestServer(t)

	if _, err := eng.Send("7,E0E040BF,32"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	resp, err := http.Get(ts.URL + "/status")
	if err != nil {
		t.Fatalf("GET /status error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /status status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if status.Device != "TestDevice" {
		t.Errorf("Device = %q, want %q", status.Device, "TestDevice")
	}
	if !status.ReceiveEnabled {
		t.Error("ReceiveEnabled = false, want true by default")
	}
	if !strings.HasPrefix(status.LastSent, "7,") {
		t.Errorf("LastSent = %q, want a Samsung echo", status.LastSent)
	}
}

func TestStatusEndpointRejectsPost(t *testing.T) {
	_, _, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/status", "text/plain", nil)
	if err != nil {
		t.Fatalf("POST /status error = %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("POST /status status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
}

func TestWebSocketStream(t *testing.T) {
	_, eng, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", wsURL, err)
	}
	defer conn.Close()

	if _, err := eng.Send("3,20DF10EF,32"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if event.Kind != engine.StatusSent {
		t.Errorf("event.Kind = %q, want %q", event.Kind, engine.StatusSent)
	}
	if !strings.HasPrefix(event.Value, "3,") {
		t.Errorf("event.Value = %q, want an NEC echo", event.Value)
	}
}
