package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX map into a level. One tile is one world unit and the
// map is centred on the origin, so map pixel (x, y) becomes world (X, Z).
// enemyCount defaults to the number of spawn objects when the map omits it.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*config.LevelConfig, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size must be > 0", tmxPath)
	}

	stem := strings.TrimSuffix(path.Base(tmxPath), ".tmx")
	level := &config.LevelConfig{
		Name:      levelMap.Properties.GetString(PropName),
		Theme:     levelMap.Properties.GetString(PropTheme),
		Boss:      levelMap.Properties.GetString(PropBoss),
		EnemyType: levelMap.Properties.GetString(PropEnemyType),
	}
	if level.Name == "" {
		level.Name = stem
	}
	if level.Boss == "" {
		return nil, fmt.Errorf("load TMX %s: missing %q map property", tmxPath, PropBoss)
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	halfW := float64(levelMap.Width) / 2
	halfH := float64(levelMap.Height) / 2

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			level.Spawns = append(level.Spawns, gamemath.Vec3{
				X: o.X/tileW - halfW,
				Z: o.Y/tileH - halfH,
			})
		}
	}

	if levelMap.Properties.GetString(PropEnemyCount) == "" {
		level.EnemyCount = len(level.Spawns)
	} else {
		level.EnemyCount = levelMap.Properties.GetInt(PropEnemyCount)
	}

	return level, nil
}

// LoadAllLevels loads every .tmx file in levelsDir, ordered by file name.
func LoadAllLevels(fsys fs.FS, levelsDir string) ([]config.LevelConfig, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)

	levels := make([]config.LevelConfig, 0, len(matches))
	for _, p := range matches {
		level, err := LoadLevel(fsys, p)
		if err != nil {
			return nil, err
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

// Apply replaces the level table of cfg with levels loaded from levelsDir and
// validates the result.
func Apply(cfg *config.Config, fsys fs.FS, levelsDir string) error {
	levels, err := LoadAllLevels(fsys, levelsDir)
	if err != nil {
		return err
	}
	cfg.Levels = levels
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("levels from %s: %w", levelsDir, err)
	}
	return nil
}
