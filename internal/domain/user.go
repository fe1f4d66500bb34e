package domain

// User Model
type User struct {
	ID            uint        `gorm:"primaryKey" json:"id"`                   // Primary key
	Email         string      `gorm:"unique;not null" json:"email"`           // Unique login email
	Password      string      `gorm:"not null" json:"-"`                      // Hashed password, never serialized
	Role          string      `gorm:"default:user" json:"role"`               // Role: user or admin
	WalletAddress *string     `gorm:"uniqueIndex" json:"wallet_address"`      // Connected wallet address, unique across users when set
	WalletType    string      `json:"wallet_type"`                            // Wallet type, e.g. metamask or phantom
	BattleBlocked bool        `gorm:"default:false" json:"battle_blocked"`    // Blocked from saving battles
	Characters    []Character `gorm:"constraint:OnDelete:CASCADE;" json:"-"`  // Characters owned by this user
	CreatedAt     int64       `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}
