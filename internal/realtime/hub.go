package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"github.com/cambiove/exchange-api/internal/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

// Frame is what the hub writes to websocket clients: the topic an event
// arrived on plus the published envelope.
type Frame struct {
	Topic string          `json:"topic"`
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client is a single websocket connection with a fixed topic set decided at
// upgrade time.
type Client struct {
	conn   *websocket.Conn
	send   chan Frame
	topics map[string]struct{}
	hub    *Hub
}

// Hub bridges the Redis fan-out topics to websocket clients. It subscribes
// once to the broker's topic space and forwards every envelope to the
// clients subscribed to its topic. Slow clients are dropped rather than
// allowed to block delivery.
type Hub struct {
	redis *redis.Client

	mu      sync.RWMutex
	clients map[*Client]struct{}

	upgrader websocket.Upgrader
}

// NewHub creates a hub over the same Redis client the broker publishes to.
func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		redis:   redisClient,
		clients: make(map[*Client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run subscribes to the fan-out topics and forwards envelopes until ctx is
// cancelled. It is intended to run in its own goroutine.
func (h *Hub) Run(ctx context.Context) {
	pubsub := h.redis.PSubscribe(ctx, "order-*", "user-*", TopicAdmin, TopicRates)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.route(msg.Channel, []byte(msg.Payload))
		}
	}
}

func (h *Hub) route(topic string, payload []byte) {
	var envelope Envelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		logger.Log.Errorw("dropping malformed realtime envelope", "topic", topic, "error", err)
		return
	}

	frame := Frame{Topic: topic, Event: envelope.Event, Data: envelope.Data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if _, ok := client.topics[topic]; !ok {
			continue
		}
		select {
		case client.send <- frame:
		default:
			// Client is not keeping up; it will reconnect and re-derive
			// state from the merged event stream.
			logger.Log.Warnw("dropping frame for slow websocket client", "topic", topic)
		}
	}
}

// Serve upgrades the request to a websocket and attaches the client to the
// given topics. Topic authorization happens in the HTTP handler before this
// call.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, topics []string) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	topicSet := make(map[string]struct{}, len(topics))
	for _, topic := range topics {
		topicSet[topic] = struct{}{}
	}

	client := &Client{
		conn:   conn,
		send:   make(chan Frame, sendBuffer),
		topics: topicSet,
		hub:    h,
	}

	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	go client.readPump()

	return nil
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// readPump drains inbound frames to keep pong handling alive. Clients do
// not send application data; the websocket is a one-way event feed.
func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
