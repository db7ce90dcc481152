package model

import "time"

// Player represents a registered player.
// Matches the players table schema.
type Player struct {
	ID                uint      `gorm:"primaryKey;column:id"                                    json:"id"`
	Name              string    `gorm:"column:name;type:varchar(100);not null"                  json:"name"`
	Email             string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null"     json:"email"`
	Phone             *string   `gorm:"column:phone;type:varchar(20)"                           json:"phone,omitempty"`
	PreferredPosition *string   `gorm:"column:preferred_position;type:varchar(50)"              json:"preferred_position,omitempty"`
	SkillLevel        int       `gorm:"column:skill_level;not null;default:5"                   json:"skill_level"`
	Active            bool      `gorm:"column:active;not null;default:true"                     json:"active"`
	CreatedAt         time.Time `gorm:"column:created_at;not null"                              json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}
