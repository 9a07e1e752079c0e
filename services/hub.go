package services

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	pongWait       = 60 * time.Second
	pingPeriod     = pongWait * 9 / 10
	writeWait      = 10 * time.Second
	maxMessageSize = 512
	sendBuffer     = 256
)

// WSMessage представляет сообщение WebSocket
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client представляет подключенного клиента
type Client struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan WSMessage
	Hub      *Hub
	LastPing time.Time
}

// Hub управляет всеми подключениями и рассылает события инвентаря
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan WSMessage
	done       chan struct{}
	mutex      sync.RWMutex
	logger     zerolog.Logger
}

// NewHub создает новый хаб
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan WSMessage, sendBuffer),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run запускает хаб до отмены контекста. После выхода Done закрыт.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()

			h.logger.Info().Str("client_id", client.ID).Int("clients", total).Msg("client connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			total := len(h.clients)
			h.mutex.Unlock()

			h.logger.Info().Str("client_id", client.ID).Int("clients", total).Msg("client disconnected")

		case message := <-h.broadcast:
			h.mutex.Lock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Клиент не успевает читать, отключаем его
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Done закрывается, когда хаб перестал обслуживать клиентов
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// join регистрирует клиента. Возвращает false, если хаб уже остановлен.
func (h *Hub) join(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// leave снимает клиента с регистрации, не блокируясь после остановки хаба
func (h *Hub) leave(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Broadcast ставит сообщение в очередь рассылки всем клиентам
func (h *Hub) Broadcast(message WSMessage) {
	select {
	case h.broadcast <- message:
	default:
		h.logger.Warn().Str("type", message.Type).Msg("broadcast queue is full, message dropped")
	}
}

// ClientCount возвращает количество подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

// HandleWebSocket обрабатывает WebSocket соединение до его закрытия
func (h *Hub) HandleWebSocket(c *websocket.Conn) {
	client := &Client{
		ID:       uuid.NewString(),
		Conn:     c,
		Send:     make(chan WSMessage, sendBuffer),
		Hub:      h,
		LastPing: time.Now(),
	}

	// Регистрируем клиента
	if !h.join(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

// readPump читает сообщения из WebSocket
func (c *Client) readPump() {
	defer func() {
		c.Hub.leave(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.LastPing = time.Now()
		return c.Conn.SetReadDeadline(c.LastPing.Add(pongWait))
	})

	for {
		var message WSMessage
		err := c.Conn.ReadJSON(&message)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn().Err(err).Str("client_id", c.ID).Msg("websocket error")
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump отправляет события клиенту и поддерживает соединение пингами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			if !ok {
				// Хаб закрыл канал: отключение или остановка сервера
				c.writeFrame(websocket.CloseMessage, nil)
				return
			}
			if err := c.writeFrame(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.writeFrame(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// writeFrame записывает один кадр с ограничением по времени
func (c *Client) writeFrame(frameType int, message interface{}) error {
	c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	if frameType == websocket.TextMessage {
		return c.Conn.WriteJSON(message)
	}
	return c.Conn.WriteMessage(frameType, []byte{})
}

// handleMessage обрабатывает входящие сообщения
func (c *Client) handleMessage(message WSMessage) {
	switch message.Type {
	case "ping":
		c.reply(WSMessage{
			Type: EventPong,
			Payload: map[string]interface{}{
				"timestamp": time.Now().Unix(),
			},
		})
	}
}

// reply отправляет сообщение только этому клиенту
func (c *Client) reply(message WSMessage) {
	c.Hub.mutex.RLock()
	defer c.Hub.mutex.RUnlock()
	if _, ok := c.Hub.clients[c]; !ok {
		return
	}
	select {
	case c.Send <- message:
	default:
	}
}
