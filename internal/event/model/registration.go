package model

import "time"

// Registration links a player to an event, with optional presence
// confirmation and team assignment. Matches the registrations table schema.
type Registration struct {
	ID           uint      `gorm:"primaryKey;column:id"                                                             json:"id"`
	EventID      uint      `gorm:"column:event_id;not null;uniqueIndex:idx_registrations_event_player"             json:"event_id"`
	PlayerID     uint      `gorm:"column:player_id;not null;uniqueIndex:idx_registrations_event_player"            json:"player_id"`
	Confirmed    bool      `gorm:"column:confirmed;not null;default:false"                                         json:"confirmed"`
	Team         *string   `gorm:"column:team;type:varchar(1)"                                                     json:"team,omitempty"`
	RegisteredAt time.Time `gorm:"column:registered_at;not null"                                                   json:"registered_at"`
}

// TableName specifies the table name for GORM.
func (Registration) TableName() string {
	return "registrations"
}

// RegistrationInfo is a registration joined with the player directory,
// used in listing and match roster responses.
type RegistrationInfo struct {
	ID           uint      `json:"id"`
	EventID      uint      `json:"event_id"`
	PlayerID     uint      `json:"player_id"`
	PlayerName   string    `json:"player_name"`
	Confirmed    bool      `json:"confirmed"`
	Team         *string   `json:"team,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}
