package model

import (
	"time"

	"gorm.io/gorm"
)

// Event statuses. Stored as plain strings: membership is validated at the
// binding layer, transitions are deliberately unconstrained.
const (
	StatusPlanned    = "planned"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusCancelled  = "cancelled"
)

// DefaultMaxPlayers is the default event capacity (11 a side).
const DefaultMaxPlayers = 22

// Event represents a pelada: a scheduled informal soccer event that owns
// zero or more matches. Matches the events table schema.
type Event struct {
	ID            uint      `gorm:"primaryKey;column:id"                           json:"id"`
	Name          string    `gorm:"column:name;type:varchar(100);not null;index"   json:"name"`
	Description   *string   `gorm:"column:description;type:text"                   json:"description,omitempty"`
	Date          time.Time `gorm:"column:date;not null;index"                     json:"date"`
	Location      string    `gorm:"column:location;type:varchar(200);not null"     json:"location"`
	MaxPlayers    int       `gorm:"column:max_players;not null;default:22"         json:"max_players"`
	CostPerPlayer int       `gorm:"column:cost_per_player;not null;default:0"      json:"cost_per_player"`
	Status        string    `gorm:"column:status;type:varchar(20);not null"        json:"status"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"                     json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;not null"                     json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "events"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (e *Event) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().UTC()
	return nil
}
