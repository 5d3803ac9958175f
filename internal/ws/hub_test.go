package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bloom-cafe/api/internal/store"
)

// mockClient creates a client for testing without a real WebSocket connection
func mockClient(hub *Hub) *Client {
	return &Client{
		hub:  hub,
		send: make(chan []byte, 256),
	}
}

func TestHubRegistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	// Register client
	hub.register <- client

	// Give hub time to process
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	if !hub.clients[client] {
		t.Fatal("client not registered")
	}
}

func TestHubUnregistration(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := mockClient(hub)

	// Register client
	hub.register <- client
	time.Sleep(10 * time.Millisecond)

	// Unregister client
	hub.unregister <- client
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	defer hub.mu.RUnlock()

	if hub.clients[client] {
		t.Fatal("client still registered after unregister")
	}

	// Send channel should be closed
	select {
	case _, ok := <-client.send:
		if ok {
			t.Fatal("expected closed send channel")
		}
	default:
		t.Fatal("send channel not closed")
	}
}

func TestBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client1 := mockClient(hub)
	client2 := mockClient(hub)
	client3 := mockClient(hub)

	hub.register <- client1
	hub.register <- client2
	hub.register <- client3
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(CollectionChanged(store.Orders))

	clients := []*Client{client1, client2, client3}
	for i, client := range clients {
		select {
		case msg := <-client.send:
			var received Event
			if err := json.Unmarshal(msg, &received); err != nil {
				t.Fatalf("client%d: failed to unmarshal: %v", i+1, err)
			}
			if received.Type != "orders.changed" {
				t.Errorf("client%d: expected type 'orders.changed', got '%s'", i+1, received.Type)
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("client%d did not receive message", i+1)
		}
	}
}

func TestBroadcastSkipsUnregisteredClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	stays := mockClient(hub)
	leaves := mockClient(hub)

	hub.register <- stays
	hub.register <- leaves
	time.Sleep(10 * time.Millisecond)

	hub.unregister <- leaves
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(CollectionChanged(store.Reservations))

	select {
	case msg := <-stays.send:
		var received Event
		if err := json.Unmarshal(msg, &received); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if received.Type != "reservations.changed" {
			t.Errorf("wrong event type: %s", received.Type)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("remaining client did not receive message")
	}
}

func TestCollectionChanged(t *testing.T) {
	testCases := []struct {
		collection store.Collection
		wantType   string
	}{
		{store.Orders, "orders.changed"},
		{store.Reservations, "reservations.changed"},
		{store.ContactMessages, "contact_messages.changed"},
	}

	for _, tc := range testCases {
		event := CollectionChanged(tc.collection)
		if event.Type != tc.wantType {
			t.Errorf("CollectionChanged(%s) = %s, want %s", tc.collection, event.Type, tc.wantType)
		}

		// Events without payloads omit the field entirely
		data, err := json.Marshal(event)
		if err != nil {
			t.Fatalf("Marshal error: %v", err)
		}
		if string(data) != `{"type":"`+tc.wantType+`"}` {
			t.Errorf("unexpected wire form: %s", data)
		}
	}
}
