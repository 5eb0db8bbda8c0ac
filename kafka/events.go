package kafka

import "time"

// ShopEvent is the wire form of a shop state mutation
type ShopEvent struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	SessionID   string    `json:"session_id"`
	ProductID   uint      `json:"product_id,omitempty"`
	Quantity    int       `json:"quantity,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Kafka topics
const (
	TopicShopEvents = "shop-events"
)
