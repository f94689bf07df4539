package simulation

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hematwoi/backend/internal/models"
	"github.com/hematwoi/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// draftKey is the settings key the in-progress scenario is stored under.
const draftKey = "simulation-draft"

// Draft is the unsaved, in-progress scenario of a user. It is a
// convenience cache so a page reload does not lose work; a saved
// scenario record stays authoritative.
type Draft struct {
	Title        string          `json:"title"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
	Month        types.Month     `json:"month"`
	Note         string          `json:"note,omitempty"`
	Items        []DraftItem     `json:"items"`
}

// SaveDraft persists the draft to the user's settings. The returned
// error may deliberately be ignored by the caller: losing a draft only
// loses convenience, never data.
func SaveDraft(db *gorm.DB, userID uuid.UUID, draft Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	return models.SetSetting(db, userID, draftKey, string(raw))
}

// LoadDraft reads the user's draft. The second return value reports
// whether a draft exists.
func LoadDraft(db *gorm.DB, userID uuid.UUID) (Draft, bool, error) {
	value, ok, err := models.GetSetting(db, userID, draftKey)
	if err != nil || !ok {
		return Draft{}, false, err
	}

	var draft Draft
	if err := json.Unmarshal([]byte(value), &draft); err != nil {
		return Draft{}, false, err
	}

	return draft, true, nil
}

// ClearDraft removes the user's draft, usually after a successful save.
func ClearDraft(db *gorm.DB, userID uuid.UUID) error {
	return models.DeleteSetting(db, userID, draftKey)
}
