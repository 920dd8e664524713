package config

import "fmt"

// Validate checks every cross reference and range the engine relies on.
// Callers run it once before handing the config to an engine.
func (c *Config) Validate() error {
	if err := c.validatePlayer(); err != nil {
		return err
	}

	for name, e := range c.Enemies {
		if e.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be > 0, got %v", name, e.Health)
		}
		if e.Speed < 0 {
			return fmt.Errorf("enemy %q: speed must be >= 0, got %v", name, e.Speed)
		}
	}

	for id, b := range c.Bosses {
		if b.Health <= 0 {
			return fmt.Errorf("boss %q: health must be > 0, got %v", id, b.Health)
		}
		if b.Scale <= 0 {
			return fmt.Errorf("boss %q: scale must be > 0, got %v", id, b.Scale)
		}
		if err := validatePattern(b.Pattern); err != nil {
			return fmt.Errorf("boss %q: %w", id, err)
		}
	}

	if len(c.Levels) == 0 {
		return fmt.Errorf("levels cannot be empty")
	}
	for i, l := range c.Levels {
		if _, err := c.Boss(l.Boss); err != nil {
			return fmt.Errorf("level %d (%s): %w", i, l.Name, err)
		}
		if l.EnemyCount < 0 {
			return fmt.Errorf("level %d (%s): enemyCount must be >= 0, got %d", i, l.Name, l.EnemyCount)
		}
		if l.EnemyCount > 0 {
			if len(l.Spawns) == 0 {
				return fmt.Errorf("level %d (%s): %d enemies: %w", i, l.Name, l.EnemyCount, ErrNoSpawnPoints)
			}
			if _, err := c.EnemyType(l.EnemyType); err != nil {
				return fmt.Errorf("level %d (%s): %w", i, l.Name, err)
			}
		}
	}

	if _, err := c.EnemyType(c.Survival.EnemyType); err != nil {
		return fmt.Errorf("survival: %w", err)
	}
	if c.Survival.WaveInterval <= 0 {
		return fmt.Errorf("survival: waveInterval must be > 0, got %v", c.Survival.WaveInterval)
	}
	if c.Survival.SpawnMinDistance > c.Survival.SpawnMaxDistance {
		return fmt.Errorf("survival: spawnMinDistance %v exceeds spawnMaxDistance %v",
			c.Survival.SpawnMinDistance, c.Survival.SpawnMaxDistance)
	}

	if c.Physics.CellSize <= 0 || c.Physics.Extent <= 0 {
		return fmt.Errorf("physics: extent and cellSize must be > 0")
	}

	return nil
}

func (c *Config) validatePlayer() error {
	p := c.Player
	if p.MagazineSize <= 0 {
		return fmt.Errorf("player: magazineSize must be > 0, got %d", p.MagazineSize)
	}
	if p.ReloadDuration < 0 {
		return fmt.Errorf("player: reloadDuration must be >= 0, got %v", p.ReloadDuration)
	}
	for _, el := range Elements {
		if _, ok := p.ElementDamage[el]; !ok {
			return fmt.Errorf("player: missing elementDamage for %q", el)
		}
	}
	return nil
}

func validatePattern(p PatternSpec) error {
	switch p.Family {
	case PatternComposite:
		if len(p.Parts) == 0 {
			return fmt.Errorf("composite pattern needs parts")
		}
		for _, part := range p.Parts {
			if part.Family == PatternComposite {
				return fmt.Errorf("composite patterns cannot nest")
			}
			if err := validatePattern(part); err != nil {
				return err
			}
		}
		return nil
	case PatternSingle, PatternSpread, PatternCone, PatternRing, PatternSpiral, PatternRandom:
		if p.Count < 1 {
			return fmt.Errorf("%s pattern: count must be >= 1, got %d", p.Family, p.Count)
		}
		return nil
	default:
		return fmt.Errorf("unknown pattern family %q", p.Family)
	}
}
