package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b+3*math.Pi, 2*math.Pi) - math.Pi
	return math.Abs(d)
}

func TestPatternGeometry(t *testing.T) {
	from := gamemath.V3(0, 0, 0)
	target := gamemath.V3(0, 0, 10)
	bearing := math.Pi / 2
	rng := rand.New(rand.NewSource(1))

	t.Run("single", func(t *testing.T) {
		dirs := Volley(from, target, config.PatternSpec{Family: config.PatternSingle, Count: 1}, rng)
		require.Len(t, dirs, 1)
		assert.InDelta(t, 1, dirs[0].Z, 1e-9)
	})

	t.Run("spread", func(t *testing.T) {
		dirs := Volley(from, target, config.PatternSpec{Family: config.PatternSpread, Count: 3, Step: 1}, rng)
		require.Len(t, dirs, 3)
		for i, offset := range []float64{-1, 0, 1} {
			want := gamemath.V3(offset, 0, 10).Normalized()
			assert.InDelta(t, want.X, dirs[i].X, 1e-9)
			assert.InDelta(t, want.Z, dirs[i].Z, 1e-9)
		}
	})

	t.Run("cone", func(t *testing.T) {
		dirs := Volley(from, target, config.PatternSpec{Family: config.PatternCone, Count: 5, Step: 0.2}, rng)
		require.Len(t, dirs, 5)
		for i, d := range dirs {
			want := bearing + float64(i-2)*0.2
			assert.InDelta(t, 0, angleDiff(gamemath.Yaw(d), want), 1e-9)
			assert.InDelta(t, 1, d.Length(), 1e-9)
		}
	})

	t.Run("ring", func(t *testing.T) {
		dirs := Volley(from, target, config.PatternSpec{Family: config.PatternRing, Count: 8}, rng)
		require.Len(t, dirs, 8)
		assert.InDelta(t, 0, gamemath.Yaw(dirs[0]), 1e-9, "starts on +X")
		var sum gamemath.Vec3
		for i, d := range dirs {
			sum = sum.Add(d)
			if i > 0 {
				assert.InDelta(t, 2*math.Pi/8, angleDiff(gamemath.Yaw(d), gamemath.Yaw(dirs[i-1])), 1e-9)
			}
		}
		assert.InDelta(t, 0, sum.Length(), 1e-9, "evenly spaced")
	})

	t.Run("spiral", func(t *testing.T) {
		dirs := Volley(from, target, config.PatternSpec{Family: config.PatternSpiral, Count: 12}, rng)
		require.Len(t, dirs, 12)
		assert.InDelta(t, 0, angleDiff(gamemath.Yaw(dirs[0]), bearing), 1e-9, "first shot at the player")
		assert.InDelta(t, 0, angleDiff(gamemath.Yaw(dirs[3]), bearing+math.Pi/2), 1e-9)
	})

	t.Run("random", func(t *testing.T) {
		far := gamemath.V3(0, 0, 100)
		spec := config.PatternSpec{Family: config.PatternRandom, Count: 6, Jitter: 8}
		dirs := Volley(from, far, spec, rand.New(rand.NewSource(3)))
		require.Len(t, dirs, 6)
		limit := math.Atan2(8, 92)
		for _, d := range dirs {
			assert.LessOrEqual(t, angleDiff(gamemath.Yaw(d), bearing), limit)
		}
		again := Volley(from, far, spec, rand.New(rand.NewSource(3)))
		assert.Equal(t, dirs, again, "seeded volleys repeat")
	})

	t.Run("unknown family fires nothing", func(t *testing.T) {
		assert.Empty(t, Volley(from, target, config.PatternSpec{Family: "laser", Count: 3}, rng))
	})
}

func TestBossVolleySizes(t *testing.T) {
	want := map[string]int{
		"troll":   1,
		"witch":   3,
		"wyrm":    5,
		"giant":   8,
		"golem":   6,
		"lich":    12,
		"drake":   11,
		"shade":   10,
		"knight":  20,
		"emperor": 26,
	}
	cfg := config.Default()
	rng := rand.New(rand.NewSource(9))
	for id, n := range want {
		boss, err := cfg.Boss(id)
		require.NoError(t, err)
		dirs := Volley(gamemath.V3(5, 0, 5), gamemath.V3(-10, 0, 20), boss.Pattern, rng)
		assert.Len(t, dirs, n, id)
		for _, d := range dirs {
			assert.InDelta(t, 1, d.Length(), 1e-9, id)
		}
	}
}
