package domain

// Battle Model
//
// One row per character stands in for the "at most one active battle per
// character" rule, since MySQL has no partial unique indexes. Saves upsert
// the whole row keyed on CharacterID, last write wins.
type Battle struct {
	ID          uint   `gorm:"primaryKey" json:"id"`                     // Primary key
	CharacterID uint   `gorm:"uniqueIndex;not null" json:"character_id"` // Foreign key to the Character, one battle row each
	Active      bool   `gorm:"default:true" json:"active"`               // Whether the battle is in progress
	State       string `json:"state"`                                    // Serialized battle state blob
	EnemyID     uint   `json:"enemy_id"`                                 // Enemy template the encounter was scaled from
	Turn        int    `json:"turn"`                                     // Current turn counter
	Deck        []uint `gorm:"serializer:json" json:"deck"`              // Card ids remaining in the draw pile
	Hand        []uint `gorm:"serializer:json" json:"hand"`              // Card ids currently in hand
	Discard     []uint `gorm:"serializer:json" json:"discard"`           // Card ids in the discard pile
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli" json:"updated_at"`   // Timestamp of last save in milliseconds
}
