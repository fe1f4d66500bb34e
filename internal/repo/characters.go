package repo

import (
	"errors" // Error inspection

	"deckquest/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Characters wraps all persistence for characters and their decks. Every
// method takes the calling user's id and scopes the query by it, so a
// character is only ever visible to its owner.
type Characters struct {
	db *gorm.DB // Database handle
}

// NewCharacters creates a character repository
func NewCharacters(db *gorm.DB) *Characters {
	return &Characters{db: db}
}

// ListByOwner returns all characters owned by userID, newest first, with
// deck and equipment attached
func (r *Characters) ListByOwner(userID uint) ([]domain.Character, error) {
	var characters []domain.Character
	err := r.db.Preload("Deck").Preload("Equipment").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&characters).Error
	if err != nil {
		return nil, err
	}
	return characters, nil
}

// GetOwned loads a single character after verifying ownership
func (r *Characters) GetOwned(userID, characterID uint) (*domain.Character, error) {
	var character domain.Character
	err := r.db.Preload("Deck").Preload("Equipment").
		Where("id = ? AND user_id = ?", characterID, userID).
		First(&character).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &character, nil
}

// RemoveCard deletes a card from a character's deck. Ownership is verified
// transitively: the character must belong to userID and the card to the
// character. The check and the delete run in one transaction so a concurrent
// removal of the same card surfaces as ErrNotFound, never a corrupt re-read.
func (r *Characters) RemoveCard(userID, characterID, cardID uint) (*domain.Character, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var character domain.Character
		if err := tx.Where("id = ? AND user_id = ?", characterID, userID).First(&character).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		var card domain.Card
		if err := tx.Where("id = ? AND character_id = ?", cardID, characterID).First(&card).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Delete(&card).Error
	})
	if err != nil {
		return nil, err
	}
	// Return the refreshed character with deck and equipment
	return r.GetOwned(userID, characterID)
}
