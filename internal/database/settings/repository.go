// Package settings provides database operations for application settings,
// including the persisted yearly reading goal.
//
//	repo := settings.NewRepository(db)
//	goal, err := repo.GetYearlyGoal()
package settings

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"goodshelf/internal/entities"
	"goodshelf/internal/stats"
)

// Repository handles all settings database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetSetting retrieves a setting by key.
func (r *Repository) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// SetSetting creates or updates a setting.
func (r *Repository) SetSetting(key, value string) error {
	var setting entities.Setting
	result := r.db.Where("key = ?", key).First(&setting)

	if result.Error == gorm.ErrRecordNotFound {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return r.db.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return r.db.Save(&setting).Error
}

// DeleteSetting removes a setting by key.
func (r *Repository) DeleteSetting(key string) error {
	return r.db.Where("key = ?", key).Delete(&entities.Setting{}).Error
}

// GetYearlyGoal returns the stored yearly reading goal, falling back to
// the default when unset or unreadable.
func (r *Repository) GetYearlyGoal() (int, error) {
	setting, err := r.GetSetting(entities.SettingKeyYearlyGoal)
	if err == gorm.ErrRecordNotFound {
		return stats.DefaultYearlyGoal, nil
	}
	if err != nil {
		return stats.DefaultYearlyGoal, err
	}
	goal, err := strconv.Atoi(setting.Value)
	if err != nil || goal <= 0 {
		return stats.DefaultYearlyGoal, nil
	}
	return goal, nil
}

// SetYearlyGoal persists the yearly reading goal. Non-positive goals are
// rejected.
func (r *Repository) SetYearlyGoal(goal int) error {
	if goal <= 0 {
		return fmt.Errorf("yearly goal must be positive, got %d", goal)
	}
	return r.SetSetting(entities.SettingKeyYearlyGoal, strconv.Itoa(goal))
}
