package model

import "time"

// Team sides a goal can be attributed to.
const (
	TeamA = "A"
	TeamB = "B"
)

// Goal represents a goal scored by a player in a match, attributed to a
// team side. Matches the goals table schema.
type Goal struct {
	ID          uint      `gorm:"primaryKey;column:id"                        json:"id"`
	MatchID     uint      `gorm:"column:match_id;not null;index"              json:"match_id"`
	PlayerID    uint      `gorm:"column:player_id;not null;index"             json:"player_id"`
	Minute      int       `gorm:"column:minute;not null"                      json:"minute"`
	Team        string    `gorm:"column:team;type:varchar(1);not null"        json:"team"`
	Description *string   `gorm:"column:description;type:varchar(200)"        json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"                  json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Goal) TableName() string {
	return "goals"
}
