package repo

import (
	"testing"

	"deckquest/internal/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupDB opens a fresh in-memory database with the full schema
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Card{},
		&domain.Equipment{},
		&domain.Enemy{},
		&domain.Battle{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	user := domain.User{Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createCharacter(t *testing.T, db *gorm.DB, userID uint, name string, createdAt int64) *domain.Character {
	t.Helper()
	character := domain.Character{UserID: userID, Name: name, Level: 1, CreatedAt: createdAt}
	require.NoError(t, db.Create(&character).Error)
	return &character
}

func createCard(t *testing.T, db *gorm.DB, characterID uint, name string) *domain.Card {
	t.Helper()
	card := domain.Card{CharacterID: characterID, Name: name, Cost: 1, Attack: 2, Defense: 1}
	require.NoError(t, db.Create(&card).Error)
	return &card
}
