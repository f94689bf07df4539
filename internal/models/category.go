package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NoCategoryName is the label used when a transaction has no category.
const NoCategoryName = "Tanpa Kategori"

// Category groups transactions and budgets.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"index;uniqueIndex:category_user_id_name"`
	Name   string    `gorm:"uniqueIndex:category_user_id_name"`
	Note   string
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	return nil
}
