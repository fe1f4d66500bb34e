package db

import "deckquest/internal/domain" // Importing domain models

// EnemyTemplates is the static enemy table loaded by the seed command and the
// reseed endpoint. Stats are level-1 bases; encounters are scaled at read time.
var EnemyTemplates = []domain.Enemy{
	{
		Name: "Gutter Rat", Health: 14, MaxHealth: 14, Level: 1,
		ExpMin: 4, ExpMax: 8, GoldMin: 2, GoldMax: 6,
		Moves: []domain.EnemyMove{
			{Name: "Gnaw", Power: 3},
			{Name: "Tail Whip", Power: 2},
		},
	},
	{
		Name: "Crypt Bat", Health: 10, MaxHealth: 10, Level: 1,
		ExpMin: 5, ExpMax: 9, GoldMin: 3, GoldMax: 7,
		Moves: []domain.EnemyMove{
			{Name: "Dive", Power: 4},
			{Name: "Screech", Power: 1},
		},
	},
	{
		Name: "Bone Soldier", Health: 22, MaxHealth: 22, Level: 1,
		ExpMin: 8, ExpMax: 14, GoldMin: 6, GoldMax: 12,
		Moves: []domain.EnemyMove{
			{Name: "Rusty Slash", Power: 5},
			{Name: "Shield Bash", Power: 3},
		},
	},
	{
		Name: "Marsh Witch", Health: 18, MaxHealth: 18, Level: 1,
		ExpMin: 10, ExpMax: 16, GoldMin: 8, GoldMax: 15,
		Moves: []domain.EnemyMove{
			{Name: "Hex Bolt", Power: 6},
			{Name: "Curse", Power: 2},
			{Name: "Cackle", Power: 0},
		},
	},
	{
		Name: "Vault Golem", Health: 40, MaxHealth: 40, Level: 1,
		ExpMin: 18, ExpMax: 26, GoldMin: 14, GoldMax: 24,
		Moves: []domain.EnemyMove{
			{Name: "Slam", Power: 8},
			{Name: "Quake", Power: 6},
		},
	},
}
