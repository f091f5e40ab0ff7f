package models

import "time"

// ContentRecordDB represents a saved marketing kit in the database.
// Records are append-only: they are never updated or deleted.
type ContentRecordDB struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	UserID        int64     `json:"user_id" db:"user_id"`               // Owner of the record
	ProductName   string    `json:"product_name" db:"product_name"`     // Product the kit was generated for
	GeneratedText string    `json:"generated_text" db:"generated_text"` // Full markdown marketing kit
	Headline      string    `json:"headline" db:"headline"`             // Strategic headline shown above the kit
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Generation timestamp
}
