package config

import (
	"errors"
	"fmt"

	"github.com/automoto/knightfall/shared/gamemath"
)

var (
	ErrUnknownBoss      = errors.New("unknown boss type")
	ErrUnknownEnemyType = errors.New("unknown enemy type")
	ErrLevelOutOfRange  = errors.New("level index out of range")
	ErrNoSpawnPoints    = errors.New("no spawn points")
)

// Element tags an ammo type. It selects projectile damage and the reserve pool a
// reload draws from.
type Element string

const (
	ElementBasic     Element = "basic"
	ElementFire      Element = "fire"
	ElementIce       Element = "ice"
	ElementLightning Element = "lightning"
)

// Elements lists every element in selection order.
var Elements = []Element{ElementBasic, ElementFire, ElementIce, ElementLightning}

// PatternFamily names a boss special-attack geometry.
type PatternFamily string

const (
	PatternSingle    PatternFamily = "single"
	PatternSpread    PatternFamily = "spread"
	PatternCone      PatternFamily = "cone"
	PatternRing      PatternFamily = "ring"
	PatternSpiral    PatternFamily = "spiral"
	PatternRandom    PatternFamily = "random"
	PatternComposite PatternFamily = "composite"
)

// PatternSpec parameterizes one attack pattern. Composite patterns fire every
// part in order and ignore their own Count, Step and Jitter.
type PatternSpec struct {
	Family PatternFamily `yaml:"family"`
	Count  int           `yaml:"count"`
	Step   float64       `yaml:"step"`   // spread offset in units, cone fan in radians
	Jitter float64       `yaml:"jitter"` // random family only
	Parts  []PatternSpec `yaml:"parts"`
}

// HitProfile describes how projectiles connect with one class of target.
// Boss profiles are multiplied by the boss visual scale.
type HitProfile struct {
	Radius     float64 `yaml:"radius"`
	HeadOffset float64 `yaml:"headOffset"` // head height above the body origin
	HeadBand   float64 `yaml:"headBand"`   // max vertical distance from the head that counts as a headshot
}

// Scaled returns the profile multiplied by a visual scale.
func (h HitProfile) Scaled(scale float64) HitProfile {
	return HitProfile{
		Radius:     h.Radius * scale,
		HeadOffset: h.HeadOffset * scale,
		HeadBand:   h.HeadBand * scale,
	}
}

// PlayerCombatConfig contains the player's weapon tuning
type PlayerCombatConfig struct {
	// Sword
	SwordCooldown       float64 `yaml:"swordCooldown"`
	SwordDamage         float64 `yaml:"swordDamage"`
	SwordRange          float64 `yaml:"swordRange"`
	SwordBossBonusRange float64 `yaml:"swordBossBonusRange"`
	SwordConeDot        float64 `yaml:"swordConeDot"` // min dot(forward, toTarget) on the ground plane

	// Gun
	GunCooldown        float64             `yaml:"gunCooldown"`
	MagazineSize       int                 `yaml:"magazineSize"`
	ReloadDuration     float64             `yaml:"reloadDuration"`
	StartingAmmo       map[Element]int     `yaml:"startingAmmo"`
	ElementDamage      map[Element]float64 `yaml:"elementDamage"`
	ProjectileSpeed    float64             `yaml:"projectileSpeed"`
	ProjectileLifetime float64             `yaml:"projectileLifetime"`

	// Aim
	EyeHeight    float64 `yaml:"eyeHeight"`    // above the player's body origin
	MuzzleOffset float64 `yaml:"muzzleOffset"` // distance in front of the eye
	AimDistance  float64 `yaml:"aimDistance"`  // far point used when the pick misses

	// Multipliers
	HeadshotMultiplier float64 `yaml:"headshotMultiplier"`
	StealthMultiplier  float64 `yaml:"stealthMultiplier"`

	EnemyHit HitProfile `yaml:"enemyHit"`
	BossHit  HitProfile `yaml:"bossHit"`
}

// EnemyTypeConfig contains configuration for regular enemy types
type EnemyTypeConfig struct {
	Name            string  `yaml:"name"`
	Health          float64 `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	DetectionRadius float64 `yaml:"detectionRadius"`
	AttackRange     float64 `yaml:"attackRange"`
	AttackCooldown  float64 `yaml:"attackCooldown"`
	Damage          float64 `yaml:"damage"`
}

// BossTypeConfig is the static table entry for one boss type
type BossTypeConfig struct {
	Name               string      `yaml:"name"`
	Health             float64     `yaml:"health"`
	Speed              float64     `yaml:"speed"`
	KillThreshold      int         `yaml:"killThreshold"` // carried for the HUD, not read by the engine
	AttackCooldownBase float64     `yaml:"attackCooldownBase"`
	Damage             float64     `yaml:"damage"`
	Scale              float64     `yaml:"scale"`
	Pattern            PatternSpec `yaml:"pattern"`
}

// BossRulesConfig holds behavior shared by every boss type
type BossRulesConfig struct {
	AwarenessRadius         float64 `yaml:"awarenessRadius"`
	MeleeRange              float64 `yaml:"meleeRange"`
	MeleeCooldown           float64 `yaml:"meleeCooldown"`
	SpecialRange            float64 `yaml:"specialRange"`
	PhaseThreshold          float64 `yaml:"phaseThreshold"` // fraction of max health
	PhaseSpeedMultiplier    float64 `yaml:"phaseSpeedMultiplier"`
	PhaseCooldownMultiplier float64 `yaml:"phaseCooldownMultiplier"`

	ProjectileSpeed     float64 `yaml:"projectileSpeed"`
	ProjectileLifetime  float64 `yaml:"projectileLifetime"`
	ProjectileHitRadius float64 `yaml:"projectileHitRadius"`

	SpawnOffset gamemath.Vec3 `yaml:"spawnOffset"` // from the player's position
	LootDrops   int           `yaml:"lootDrops"`
	LootScatter float64       `yaml:"lootScatter"`

	// Arena ring pulse
	ArenaRadius      float64 `yaml:"arenaRadius"`
	ArenaPulse       float64 `yaml:"arenaPulse"`
	ArenaPulsePeriod float64 `yaml:"arenaPulsePeriod"`
}

// LevelConfig describes one wave and its boss
type LevelConfig struct {
	Name       string          `yaml:"name"`
	Theme      string          `yaml:"theme"`
	EnemyCount int             `yaml:"enemyCount"`
	EnemyType  string          `yaml:"enemyType"`
	Spawns     []gamemath.Vec3 `yaml:"spawns"`
	Boss       string          `yaml:"boss"`
}

// EncounterConfig contains wave director tuning
type EncounterConfig struct {
	AlertThreshold int     `yaml:"alertThreshold"` // alive regulars at or below this get alerted
	SpawnJitter    float64 `yaml:"spawnJitter"`    // applied when spawn points are reused
}

// SurvivalConfig contains the continuous-spawn mode tuning
type SurvivalConfig struct {
	EnemyType        string  `yaml:"enemyType"`
	InitialCount     int     `yaml:"initialCount"`
	WaveInterval     float64 `yaml:"waveInterval"`
	WaveSize         int     `yaml:"waveSize"`
	SpawnMinDistance float64 `yaml:"spawnMinDistance"`
	SpawnMaxDistance float64 `yaml:"spawnMaxDistance"`
	StaggerMax       float64 `yaml:"staggerMax"` // max randomized initial attack cooldown
	Duration         float64 `yaml:"duration"`   // seconds to survive, read by the session
}

// PhysicsConfig sizes the reference physics world
type PhysicsConfig struct {
	Extent         float64 `yaml:"extent"` // world spans [-Extent/2, Extent/2] on X and Z
	CellSize       int     `yaml:"cellSize"`
	BodyRadius     float64 `yaml:"bodyRadius"`
	BossBodyRadius float64 `yaml:"bossBodyRadius"`
	PlayerRadius   float64 `yaml:"playerRadius"`
}

// Config is the complete, immutable tuning table for one engine instance.
type Config struct {
	Player    PlayerCombatConfig         `yaml:"player"`
	Enemies   map[string]EnemyTypeConfig `yaml:"enemies"`
	Bosses    map[string]BossTypeConfig  `yaml:"bosses"`
	BossRules BossRulesConfig            `yaml:"bossRules"`
	Levels    []LevelConfig              `yaml:"levels"`
	Encounter EncounterConfig            `yaml:"encounter"`
	Survival  SurvivalConfig             `yaml:"survival"`
	Physics   PhysicsConfig              `yaml:"physics"`
}

// Level returns the level at index.
func (c *Config) Level(index int) (*LevelConfig, error) {
	if index < 0 || index >= len(c.Levels) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, index, len(c.Levels))
	}
	return &c.Levels[index], nil
}

// Boss returns the boss type registered under id.
func (c *Config) Boss(id string) (*BossTypeConfig, error) {
	b, ok := c.Bosses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoss, id)
	}
	return &b, nil
}

// EnemyType returns the regular enemy type registered under name.
func (c *Config) EnemyType(name string) (*EnemyTypeConfig, error) {
	e, ok := c.Enemies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyType, name)
	}
	return &e, nil
}
