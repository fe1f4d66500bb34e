package repo

import (
	"errors" // Error inspection

	"deckquest/internal/domain" // Importing domain models

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clause support
)

// Battles wraps persistence for the single active battle row per character
type Battles struct {
	db *gorm.DB // Database handle
}

// NewBattles creates a battle repository
func NewBattles(db *gorm.DB) *Battles {
	return &Battles{db: db}
}

// Save upserts the active battle for a character. Keyed on character_id, so
// repeated identical calls are idempotent and concurrent saves for the same
// character resolve last-write-wins. Ownership must already be verified via
// SaveForOwner; this is the raw write.
func (r *Battles) Save(characterID uint, state string, enemyID uint, turn int, deck, hand, discard []uint) (*domain.Battle, error) {
	battle := domain.Battle{
		CharacterID: characterID,
		Active:      true,
		State:       state,
		EnemyID:     enemyID,
		Turn:        turn,
		Deck:        deck,
		Hand:        hand,
		Discard:     discard,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "character_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"active", "state", "enemy_id", "turn", "deck", "hand", "discard", "updated_at",
		}),
	}).Create(&battle).Error
	if err != nil {
		return nil, err
	}
	// Re-read so the caller sees the row as stored, id included
	var saved domain.Battle
	if err := r.db.Where("character_id = ?", characterID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// SaveForOwner verifies the character belongs to userID, then upserts
func (r *Battles) SaveForOwner(userID, characterID uint, state string, enemyID uint, turn int, deck, hand, discard []uint) (*domain.Battle, error) {
	var character domain.Character
	if err := r.db.Where("id = ? AND user_id = ?", characterID, userID).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r.Save(characterID, state, enemyID, turn, deck, hand, discard)
}

// ActiveForOwner loads the active battle of one of userID's characters
func (r *Battles) ActiveForOwner(userID, characterID uint) (*domain.Battle, error) {
	var character domain.Character
	if err := r.db.Where("id = ? AND user_id = ?", characterID, userID).First(&character).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var battle domain.Battle
	if err := r.db.Where("character_id = ? AND active = ?", characterID, true).First(&battle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &battle, nil
}
