package model

// DefaultColor is the color token assigned when a category is created
// without one.
const DefaultColor = "#6366f1"

// Category groups events by area (work, personal, health, etc.) and carries
// the color token used by presentation.
type Category struct {
	ID     uint    `gorm:"primaryKey"`
	Name   string  `gorm:"not null"`
	Color  string  `gorm:"not null"`
	Events []Event `gorm:"foreignKey:CategoryID"`
}
