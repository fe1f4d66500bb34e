package repo

import (
	"testing"

	"deckquest/internal/db"
	"deckquest/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemiesRandomEmptyTable(t *testing.T) {
	conn := setupDB(t)
	enemies := NewEnemies(conn)

	_, err := enemies.Random()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnemiesSeedAndRandom(t *testing.T) {
	conn := setupDB(t)
	enemies := NewEnemies(conn)

	count, err := enemies.Seed(db.EnemyTemplates)
	require.NoError(t, err)
	assert.Equal(t, len(db.EnemyTemplates), count)

	// Reseeding leaves exactly one copy of the table
	_, err = enemies.Seed(db.EnemyTemplates)
	require.NoError(t, err)
	var rows int64
	require.NoError(t, conn.Model(&domain.Enemy{}).Count(&rows).Error)
	assert.EqualValues(t, len(db.EnemyTemplates), rows)

	names := make(map[string]bool, len(db.EnemyTemplates))
	for _, tmpl := range db.EnemyTemplates {
		names[tmpl.Name] = true
	}
	for i := 0; i < 20; i++ {
		enemy, err := enemies.Random()
		require.NoError(t, err)
		assert.True(t, names[enemy.Name], "random pick %q is a seeded template", enemy.Name)
		assert.NotEmpty(t, enemy.Moves, "move list survives the JSON round trip")
	}
}

func TestEnemiesCreate(t *testing.T) {
	conn := setupDB(t)
	enemies := NewEnemies(conn)

	enemy := domain.Enemy{
		Name: "Test Wisp", Health: 5, MaxHealth: 5, Level: 1,
		Moves: []domain.EnemyMove{{Name: "Spark", Power: 1}},
	}
	require.NoError(t, enemies.Create(&enemy))
	assert.NotZero(t, enemy.ID)

	got, err := enemies.Random()
	require.NoError(t, err)
	assert.Equal(t, "Test Wisp", got.Name)
}
