package services

// Publisher рассылает события подключенным клиентам
type Publisher interface {
	Broadcast(message WSMessage)
}

type nopPublisher struct{}

func (nopPublisher) Broadcast(WSMessage) {}

// Типы событий, которые сервер отправляет клиентам
const (
	EventHighlight        = "item.highlight"
	EventHighlightExpired = "item.highlight.expired"
	EventInventoryChanged = "inventory.changed"
	EventInventoryWarning = "inventory.warning"
	EventPong             = "pong"
)
