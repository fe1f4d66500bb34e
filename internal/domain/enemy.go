package domain

// EnemyMove is one attack in an enemy's move list
type EnemyMove struct {
	Name  string `json:"name"`  // Move name
	Power int    `json:"power"` // Base damage of the move
}

// Enemy Model (template; scaling never mutates rows of this table)
type Enemy struct {
	ID        uint        `gorm:"primaryKey" json:"id"`                // Primary key
	Name      string      `gorm:"not null" json:"name"`                // Enemy name
	Health    int         `gorm:"not null" json:"health"`              // Base health at level 1
	MaxHealth int         `gorm:"not null" json:"max_health"`          // Base max health at level 1
	Level     int         `gorm:"default:1" json:"level"`              // Template level
	ExpMin    int         `json:"exp_min"`                             // Minimum experience reward
	ExpMax    int         `json:"exp_max"`                             // Maximum experience reward
	GoldMin   int         `json:"gold_min"`                            // Minimum gold reward
	GoldMax   int         `json:"gold_max"`                            // Maximum gold reward
	Moves     []EnemyMove `gorm:"serializer:json" json:"moves"`        // Move list, stored as JSON
	CreatedAt int64       `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
