package domain

// Equipment Model
type Equipment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`               // Primary key
	CharacterID uint   `gorm:"index;not null" json:"character_id"` // Foreign key to the owning Character
	Name        string `gorm:"not null" json:"name"`               // Item name
	Slot        string `json:"slot"`                               // Slot: weapon, armor or trinket
	Bonus       int    `json:"bonus"`                              // Flat stat bonus granted while equipped
}
