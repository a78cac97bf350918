package server

import (
	"encoding/json"
	"net/http"

	"market-indexes/src/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// -----------------------------------------------------------------------------
// Hub Pattern Implementation
// -----------------------------------------------------------------------------

// handleWebsockets is the main Hub loop
func (s *FastAPIServer) handleWebsockets() {
	for {
		select {
		case <-s.done:
			s.stateMutex.Lock()
			for client := range s.clients {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()
			return

		case client := <-s.register:
			s.stateMutex.Lock()
			s.clients[client] = struct{}{}
			s.stateMutex.Unlock()

			// Replay the latest update of every type
			s.stateMutex.RLock()
			for _, msg := range s.latest {
				if client.wants(msg.Type) {
					select {
					case client.send <- msg:
					default:
					}
				}
			}
			s.stateMutex.RUnlock()

		case client := <-s.unregister:
			s.stateMutex.Lock()
			if _, ok := s.clients[client]; ok {
				delete(s.clients, client)
				close(client.send)
			}
			s.stateMutex.Unlock()

		case message := <-s.broadcast:
			s.stateMutex.Lock()
			s.latest[message.Type] = message

			for client := range s.clients {
				if !client.wants(message.Type) {
					continue
				}
				select {
				case client.send <- message:
				default:
					// Client too slow, disconnect to prevent Hub blocking
					delete(s.clients, client)
					close(client.send)
				}
			}
			s.stateMutex.Unlock()
		}
	}
}

// -----------------------------------------------------------------------------
// Notifier Implementation
// -----------------------------------------------------------------------------

// Publish queues an update for broadcast. It never blocks: when the queue
// is full the update is dropped.
func (s *FastAPIServer) Publish(msg models.MUpdateMessage) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.broadcast <- msg:
	default:
		s.Logger.Warning("Broadcast queue full, dropping %s update", msg.Type)
	}
}

// -----------------------------------------------------------------------------
// WebSocket Handlers
// -----------------------------------------------------------------------------

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     checkOrigin,
}

// checkOrigin lets non-browser clients, which send no Origin, through
func checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	return origin == "" || allowedOrigin(origin)
}

// -----------------------------------------------------------------------------

func (s *FastAPIServer) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.Logger.Info("Failed to upgrade websocket: %v", err)
		return
	}

	client := newClient(s, conn)

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	// Start goroutines for reading/writing
	go client.writePump()
	go client.readPump()
}

// -----------------------------------------------------------------------------
// Client Message Handling
// -----------------------------------------------------------------------------

// HandleClientMessage applies subscribe/unsubscribe commands. Subscribing
// replays the latest update of each requested type.
func (s *FastAPIServer) HandleClientMessage(client *Client, message []byte) {
	var cmd models.MSubscribeCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		s.Logger.Info("Failed to parse client command: %v, disconnecting client", err)
		client.conn.Close()
		return
	}

	switch cmd.Command {
	case "subscribe":
		client.subscribe(cmd.Types)
	case "unsubscribe":
		client.unsubscribe(cmd.Types)
		return
	default:
		return
	}

	s.stateMutex.RLock()
	defer s.stateMutex.RUnlock()

	// The client may have been pruned by the hub meanwhile
	if _, ok := s.clients[client]; !ok {
		return
	}

	for _, msg := range s.latest {
		if !client.wants(msg.Type) {
			continue
		}
		select {
		case client.send <- msg:
		default:
		}
	}
}
