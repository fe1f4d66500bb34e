package repo

import (
	"math/rand" // Uniform template selection

	"deckquest/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Enemies wraps persistence for enemy templates
type Enemies struct {
	db *gorm.DB // Database handle
}

// NewEnemies creates an enemy template repository
func NewEnemies(db *gorm.DB) *Enemies {
	return &Enemies{db: db}
}

// Create inserts a single enemy template
func (r *Enemies) Create(enemy *domain.Enemy) error {
	return r.db.Create(enemy).Error
}

// Seed replaces all templates with the given set, in one transaction, so a
// reseed always leaves exactly one copy of the table
func (r *Enemies) Seed(templates []domain.Enemy) (int, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&domain.Enemy{}).Error; err != nil {
			return err
		}
		for i := range templates {
			enemy := templates[i] // Copy so seeding never writes ids back into the source table
			enemy.ID = 0
			if err := tx.Create(&enemy).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(templates), nil
}

// Random returns one template chosen uniformly over all seeded templates.
// Count plus offset keeps the query portable across MySQL and SQLite.
func (r *Enemies) Random() (*domain.Enemy, error) {
	var count int64
	if err := r.db.Model(&domain.Enemy{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, ErrNotFound // Nothing seeded yet
	}
	var enemy domain.Enemy
	offset := rand.Intn(int(count))
	if err := r.db.Order("id").Offset(offset).First(&enemy).Error; err != nil {
		return nil, err
	}
	return &enemy, nil
}
