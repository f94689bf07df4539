package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Setting is a per-user key-value row. It backs the persisted digest
// cache tier and the simulation draft autosave.
type Setting struct {
	Timestamps
	UserID uuid.UUID `gorm:"primaryKey"`
	Key    string    `gorm:"primaryKey"`
	Value  string
}

func (s *Setting) BeforeSave(_ *gorm.DB) error {
	if s.Key == "" {
		return ErrSettingKeyEmpty
	}

	return nil
}

// GetSetting reads a setting value. The second return value reports
// whether the key exists.
func GetSetting(db *gorm.DB, userID uuid.UUID, key string) (string, bool, error) {
	var setting Setting

	// Explicit conditions: struct conditions would drop the nil UUID
	// used for guest-scoped settings.
	err := db.Where("user_id = ? AND key = ?", userID, key).First(&setting).Error
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}

		return "", false, err
	}

	return setting.Value, true, nil
}

// SetSetting upserts a setting value.
func SetSetting(db *gorm.DB, userID uuid.UUID, key, value string) error {
	setting := Setting{UserID: userID, Key: key, Value: value}

	err := db.Where("user_id = ? AND key = ?", userID, key).First(&Setting{}).Error
	if err == nil {
		// The populated model keeps the BeforeSave hook working, a
		// blank one would fail the key check.
		return db.Model(&setting).
			Where("user_id = ? AND key = ?", userID, key).
			Update("value", value).Error
	}

	return db.Create(&setting).Error
}

// DeleteSetting removes a setting. Deleting a key that does not exist is
// not an error.
func DeleteSetting(db *gorm.DB, userID uuid.UUID, key string) error {
	return db.Unscoped().Where("user_id = ? AND key = ?", userID, key).Delete(&Setting{}).Error
}
