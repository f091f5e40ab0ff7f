package models

// ContentEvent is published to Kafka after a marketing kit is generated
// and saved.
type ContentEvent struct {
	EventID     string `json:"event_id"`     // Unique event ID
	Timestamp   int64  `json:"timestamp"`    // Unix timestamp of the generation
	UserID      int64  `json:"user_id"`      // Owner of the generated kit
	ProductName string `json:"product_name"` // Product the kit was generated for
	Operation   string `json:"operation"`    // Operation type, e.g. "content_generated"
}
