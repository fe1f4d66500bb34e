package domain

// Card Model
type Card struct {
	ID          uint   `gorm:"primaryKey" json:"id"`               // Primary key
	CharacterID uint   `gorm:"index;not null" json:"character_id"` // Foreign key to the owning Character
	Name        string `gorm:"not null" json:"name"`               // Card name
	Cost        int    `json:"cost"`                               // Energy cost to play
	Attack      int    `json:"attack"`                             // Damage dealt when played
	Defense     int    `json:"defense"`                            // Block granted when played
}
