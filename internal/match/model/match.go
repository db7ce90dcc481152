package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Match statuses. Stored as plain strings: membership is validated at the
// binding layer, transitions are deliberately unconstrained.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in_progress"
	StatusFinished   = "finished"
	StatusCancelled  = "cancelled"
)

// Default team names for a new match.
const (
	DefaultTeamAName = "Team A"
	DefaultTeamBName = "Team B"
)

// Match represents a partida: an individual game within an event.
// The score counters are denormalized and kept in lockstep with the goals
// table by the goal repository. Matches the matches table schema.
type Match struct {
	ID            uint       `gorm:"primaryKey;column:id"                         json:"id"`
	EventID       uint       `gorm:"column:event_id;not null;index"               json:"event_id"`
	Name          *string    `gorm:"column:name;type:varchar(100)"                json:"name,omitempty"`
	ScheduledTime time.Time  `gorm:"column:scheduled_time;not null"               json:"scheduled_time"`
	StartedAt     *time.Time `gorm:"column:started_at"                            json:"started_at,omitempty"`
	EndedAt       *time.Time `gorm:"column:ended_at"                              json:"ended_at,omitempty"`
	TeamAName     string     `gorm:"column:team_a_name;type:varchar(50);not null" json:"team_a_name"`
	TeamBName     string     `gorm:"column:team_b_name;type:varchar(50);not null" json:"team_b_name"`
	ScoreA        int        `gorm:"column:score_a;not null;default:0"            json:"score_a"`
	ScoreB        int        `gorm:"column:score_b;not null;default:0"            json:"score_b"`
	Notes         *string    `gorm:"column:notes;type:text"                       json:"notes,omitempty"`
	Status        string     `gorm:"column:status;type:varchar(20);not null"      json:"status"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null"                   json:"created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"                   json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (m *Match) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// Score returns the formatted score string, e.g. "2 x 1".
func (m *Match) Score() string {
	return fmt.Sprintf("%d x %d", m.ScoreA, m.ScoreB)
}

// DurationMinutes returns the match duration in whole minutes,
// or 0 unless both start and end are stamped.
func (m *Match) DurationMinutes() int {
	if m.StartedAt == nil || m.EndedAt == nil {
		return 0
	}
	return int(m.EndedAt.Sub(*m.StartedAt).Minutes())
}
