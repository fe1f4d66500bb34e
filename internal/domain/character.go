package domain

// Character Model
type Character struct {
	ID        uint        `gorm:"primaryKey" json:"id"`                   // Primary key
	UserID    uint        `gorm:"index;not null" json:"user_id"`          // Foreign key to the owning User
	Name      string      `gorm:"not null" json:"name"`                   // Character name
	Level     int         `gorm:"default:1" json:"level"`                 // Character level
	Deck      []Card      `gorm:"constraint:OnDelete:CASCADE;" json:"deck"`      // Cards in this character's deck
	Equipment []Equipment `gorm:"constraint:OnDelete:CASCADE;" json:"equipment"` // Equipped items
	CreatedAt int64       `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
