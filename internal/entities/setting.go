package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	SettingKeyYearlyGoal = "stats_yearly_goal"

	// Enrichment sync bookkeeping
	SettingKeyEnrichSyncLastAt      = "enrich_sync_last_at"
	SettingKeyEnrichSyncLastStatus  = "enrich_sync_last_status"
	SettingKeyEnrichSyncLastMessage = "enrich_sync_last_message"
)
