package websocket

import (
	"log"
	"sync"

	"civiclens/models"

	"github.com/gorilla/websocket"
)

// FeedClient represents a client connected for live feed updates
type FeedClient struct {
	Conn    *websocket.Conn
	writeMu sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the feed client's WebSocket connection
func (fc *FeedClient) SafeWriteJSON(v interface{}) error {
	fc.writeMu.Lock()
	defer fc.writeMu.Unlock()
	return fc.Conn.WriteJSON(v)
}

// Global feed hub for broadcasting events to all connected clients
var (
	feedClients = make(map[*FeedClient]bool)
	feedMutex   sync.RWMutex
)

// RegisterFeedClient registers a client for feed updates
func RegisterFeedClient(client *FeedClient) {
	feedMutex.Lock()
	defer feedMutex.Unlock()
	feedClients[client] = true
	log.Printf("Feed client registered. Total clients: %d", len(feedClients))
}

// UnregisterFeedClient removes a client from feed updates
func UnregisterFeedClient(client *FeedClient) {
	feedMutex.Lock()
	defer feedMutex.Unlock()
	delete(feedClients, client)
	client.Conn.Close()
	log.Printf("Feed client unregistered. Total clients: %d", len(feedClients))
}

// BroadcastFeedEvent broadcasts a feed event to all connected clients
func BroadcastFeedEvent(event models.FeedEvent) {
	feedMutex.RLock()
	defer feedMutex.RUnlock()

	for client := range feedClients {
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting feed event to client: %v", err)
			// Remove client if write fails
			go UnregisterFeedClient(client)
		}
	}

	log.Printf("Broadcasted feed event: %s to %d clients", event.Type, len(feedClients))
}

// GetFeedClientsCount returns the number of connected feed clients
func GetFeedClientsCount() int {
	feedMutex.RLock()
	defer feedMutex.RUnlock()
	return len(feedClients)
}
