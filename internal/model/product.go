package model

import "time"

// Product represents a catalogue item. Products are immutable once listed;
// catalogue management happens outside this service.
type Product struct {
	ProductID   int64     `json:"product_id" db:"product_id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Brand       string    `json:"brand" db:"brand"`
	Model       string    `json:"model" db:"model"`
	Description string    `json:"description" db:"description"`
	Value       float64   `json:"value" db:"value"`
	Weight      int       `json:"weight" db:"weight"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
