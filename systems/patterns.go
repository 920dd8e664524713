package systems

import (
	"math"
	"math/rand"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
)

// Pattern computes the unit headings of one boss volley fired from `from`
// at a player standing at `target`.
type Pattern func(from, target gamemath.Vec3, spec config.PatternSpec, rng *rand.Rand) []gamemath.Vec3

var patterns map[config.PatternFamily]Pattern

func init() {
	patterns = map[config.PatternFamily]Pattern{
		config.PatternSingle:    singlePattern,
		config.PatternSpread:    spreadPattern,
		config.PatternCone:      conePattern,
		config.PatternRing:      ringPattern,
		config.PatternSpiral:    spiralPattern,
		config.PatternRandom:    randomPattern,
		config.PatternComposite: compositePattern,
	}
}

// Volley looks up the family of spec and returns its headings. Unknown
// families fire nothing.
func Volley(from, target gamemath.Vec3, spec config.PatternSpec, rng *rand.Rand) []gamemath.Vec3 {
	fn, ok := patterns[spec.Family]
	if !ok {
		return nil
	}
	return fn(from, target, spec, rng)
}

// towards appends the heading from `from` to p, skipping degenerate points.
func towards(out []gamemath.Vec3, from, p gamemath.Vec3) []gamemath.Vec3 {
	dir := p.Sub(from).Normalized()
	if dir == (gamemath.Vec3{}) {
		return out
	}
	return append(out, dir)
}

// centered returns the offset of slot i when n slots are centred on zero.
func centered(i, n int) float64 {
	return float64(i) - float64(n-1)/2
}

func singlePattern(from, target gamemath.Vec3, _ config.PatternSpec, _ *rand.Rand) []gamemath.Vec3 {
	return towards(nil, from, target)
}

func spreadPattern(from, target gamemath.Vec3, spec config.PatternSpec, _ *rand.Rand) []gamemath.Vec3 {
	out := make([]gamemath.Vec3, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		p := target
		p.X += centered(i, spec.Count) * spec.Step
		out = towards(out, from, p)
	}
	return out
}

func conePattern(from, target gamemath.Vec3, spec config.PatternSpec, _ *rand.Rand) []gamemath.Vec3 {
	bearing := gamemath.Bearing(from, target)
	out := make([]gamemath.Vec3, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		out = append(out, gamemath.Heading(bearing+centered(i, spec.Count)*spec.Step))
	}
	return out
}

func ringFrom(start float64, count int) []gamemath.Vec3 {
	out := make([]gamemath.Vec3, 0, count)
	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		out = append(out, gamemath.Heading(start+float64(i)*step))
	}
	return out
}

func ringPattern(_, _ gamemath.Vec3, spec config.PatternSpec, _ *rand.Rand) []gamemath.Vec3 {
	return ringFrom(0, spec.Count)
}

func spiralPattern(from, target gamemath.Vec3, spec config.PatternSpec, _ *rand.Rand) []gamemath.Vec3 {
	return ringFrom(gamemath.Bearing(from, target), spec.Count)
}

func randomPattern(from, target gamemath.Vec3, spec config.PatternSpec, rng *rand.Rand) []gamemath.Vec3 {
	out := make([]gamemath.Vec3, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		p := target
		p.X += (rng.Float64()*2 - 1) * spec.Jitter
		p.Z += (rng.Float64()*2 - 1) * spec.Jitter
		out = towards(out, from, p)
	}
	return out
}

func compositePattern(from, target gamemath.Vec3, spec config.PatternSpec, rng *rand.Rand) []gamemath.Vec3 {
	var out []gamemath.Vec3
	for _, part := range spec.Parts {
		if part.Family == config.PatternComposite {
			continue
		}
		out = append(out, Volley(from, target, part, rng)...)
	}
	return out
}
