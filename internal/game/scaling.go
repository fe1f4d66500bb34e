package game

import "deckquest/internal/domain" // Importing domain models

// ScalingConfig holds the per-level increment for each scaled stat.
// The curve is linear: stat = base + perLevel * (level - 1).
type ScalingConfig struct {
	HealthPerLevel    int     // Added to health and max health per level
	ExpPerLevel       int     // Added to both ends of the experience range per level
	GoldPerLevel      int     // Added to both ends of the gold range per level
	MovePowerPerLevel float64 // Added to each move's power per level, truncated
}

// DefaultScaling is the curve used by the enemy endpoint
var DefaultScaling = ScalingConfig{
	HealthPerLevel:    6,
	ExpPerLevel:       3,
	GoldPerLevel:      2,
	MovePowerPerLevel: 1.5,
}

// ScaleEnemy derives a level-adjusted copy of an enemy template. The template
// itself is never mutated. Every scaled stat is non-decreasing in level.
func ScaleEnemy(template domain.Enemy, level int, cfg ScalingConfig) domain.Enemy {
	if level < 1 {
		level = 1 // Levels below 1 are treated as 1
	}
	steps := level - 1 // Number of increments above the base stats

	scaled := template // Copy the template
	scaled.Level = level
	scaled.Health = template.Health + cfg.HealthPerLevel*steps
	scaled.MaxHealth = template.MaxHealth + cfg.HealthPerLevel*steps
	scaled.ExpMin = template.ExpMin + cfg.ExpPerLevel*steps
	scaled.ExpMax = template.ExpMax + cfg.ExpPerLevel*steps
	scaled.GoldMin = template.GoldMin + cfg.GoldPerLevel*steps
	scaled.GoldMax = template.GoldMax + cfg.GoldPerLevel*steps

	// Copy the move list so the template's slice is left untouched
	scaled.Moves = make([]domain.EnemyMove, len(template.Moves))
	for i, m := range template.Moves {
		m.Power += int(cfg.MovePowerPerLevel * float64(steps))
		scaled.Moves[i] = m
	}
	return scaled
}
