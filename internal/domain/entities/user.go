package entities

import (
	"time"
)

// User represents a registered user of the assistant. Conditions holds the
// condition names the user chose to record on their profile; the pipeline
// reads them, it never writes them.
type User struct {
	ID                string    `json:"id" db:"id"`
	Name              string    `json:"name" db:"name"`
	Email             string    `json:"email" db:"email"`
	APIToken          string    `json:"-" db:"api_token"`
	PreferredLanguage string    `json:"preferred_language" db:"preferred_language"`
	Conditions        []string  `json:"conditions" db:"conditions"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
