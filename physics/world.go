package physics

import (
	"math"

	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/solarlune/resolv"
)

// BodyID is a handle to a body owned by a Provider. The zero value is never issued.
type BodyID uint32

// Resolv tags used to classify bodies
const (
	TagPlayer = "Player"
	TagEnemy  = "Enemy"
	TagBoss   = "Boss"
)

// AimResolver answers "what does this ray hit first".
type AimResolver interface {
	Pick(origin, dir gamemath.Vec3, maxDist float64) (gamemath.Vec3, bool)
}

// Provider owns positions and movement for the player and every combatant.
// Calls with a released or unknown BodyID report false and change nothing.
type Provider interface {
	AimResolver
	Spawn(pos gamemath.Vec3, radius float64, tags ...string) BodyID
	Release(id BodyID)
	Position(id BodyID) (gamemath.Vec3, bool)
	SetPosition(id BodyID, pos gamemath.Vec3) bool
	SetHorizontalVelocity(id BodyID, x, z float64) bool
}

// Stepper is implemented by providers that integrate velocity themselves.
type Stepper interface {
	Step(dt float64)
}

type body struct {
	obj    *resolv.Object
	pos    gamemath.Vec3
	velX   float64
	velZ   float64
	radius float64
}

// World is the reference Provider: bodies are circles on the XZ plane,
// stored in a resolv spatial hash for proximity and aim queries. Resolv has
// no negative coordinates, so the world is shifted by half its extent.
type World struct {
	space    *resolv.Space
	bodies   map[BodyID]*body
	next     BodyID
	offset   float64
	pickTags []string
}

// NewWorld creates a world spanning [-extent/2, extent/2] on X and Z.
func NewWorld(extent float64, cellSize int) *World {
	size := int(math.Ceil(extent))
	return &World{
		space:    resolv.NewSpace(size, size, cellSize, cellSize),
		bodies:   make(map[BodyID]*body),
		offset:   extent / 2,
		pickTags: []string{TagEnemy, TagBoss},
	}
}

func (w *World) Spawn(pos gamemath.Vec3, radius float64, tags ...string) BodyID {
	w.next++
	id := w.next

	obj := resolv.NewObject(0, 0, radius*2, radius*2, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	obj.Data = id
	b := &body{obj: obj, pos: pos, radius: radius}
	w.place(b)
	w.space.Add(obj)

	w.bodies[id] = b
	return id
}

func (w *World) Release(id BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.Remove(b.obj)
	delete(w.bodies, id)
}

func (w *World) Position(id BodyID) (gamemath.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return gamemath.Vec3{}, false
	}
	return b.pos, true
}

func (w *World) SetPosition(id BodyID, pos gamemath.Vec3) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.pos = pos
	w.place(b)
	return true
}

func (w *World) SetHorizontalVelocity(id BodyID, x, z float64) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.velX, b.velZ = x, z
	return true
}

// Velocity returns the horizontal velocity last set on a body.
func (w *World) Velocity(id BodyID) (x, z float64, ok bool) {
	b, ok := w.bodies[id]
	if !ok {
		return 0, 0, false
	}
	return b.velX, b.velZ, true
}

// Step integrates horizontal velocity. Vertical position is left alone.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.velX == 0 && b.velZ == 0 {
			continue
		}
		b.pos.X += b.velX * dt
		b.pos.Z += b.velZ * dt
		w.place(b)
	}
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Near returns every body carrying one of tags whose centre lies within
// radius of pos on the ground plane.
func (w *World) Near(pos gamemath.Vec3, radius float64, tags ...string) []BodyID {
	var found []BodyID
	w.query(pos.X-radius, pos.Z-radius, radius*2, radius*2, tags, func(id BodyID, b *body) {
		if gamemath.HorizontalDistance(pos, b.pos) <= radius {
			found = append(found, id)
		}
	})
	return found
}

// Pick casts a ray against enemy and boss bodies. Bodies are treated as
// upright cylinders reaching from one radius below their origin to three
// radii above it.
func (w *World) Pick(origin, dir gamemath.Vec3, maxDist float64) (gamemath.Vec3, bool) {
	dir = dir.Normalized()
	if dir == (gamemath.Vec3{}) || maxDist <= 0 {
		return gamemath.Vec3{}, false
	}
	end := origin.Add(dir.Scale(maxDist))
	minX, maxX := math.Min(origin.X, end.X), math.Max(origin.X, end.X)
	minZ, maxZ := math.Min(origin.Z, end.Z), math.Max(origin.Z, end.Z)

	best := math.Inf(1)
	w.query(minX, minZ, maxX-minX, maxZ-minZ, w.pickTags, func(_ BodyID, b *body) {
		t, ok := rayCylinder(origin, dir, b)
		if ok && t <= maxDist && t < best {
			best = t
		}
	})
	if math.IsInf(best, 1) {
		return gamemath.Vec3{}, false
	}
	return origin.Add(dir.Scale(best)), true
}

// query runs fn for every body whose cell overlaps the given ground-plane
// rectangle. A temporary probe object does the broadphase.
func (w *World) query(x, z, width, depth float64, tags []string, fn func(BodyID, *body)) {
	const pad = 1
	probe := resolv.NewObject(x+w.offset-pad, z+w.offset-pad, width+pad*2, depth+pad*2)
	w.space.Add(probe)
	defer w.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return
	}
	seen := make(map[BodyID]struct{}, len(check.Objects))
	for _, obj := range check.Objects {
		id, ok := obj.Data.(BodyID)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if b, live := w.bodies[id]; live {
			fn(id, b)
		}
	}
}

func (w *World) place(b *body) {
	b.obj.X = b.pos.X + w.offset - b.radius
	b.obj.Y = b.pos.Z + w.offset - b.radius
	b.obj.Update()
}

// rayCylinder returns the distance along a normalized ray to the first point
// inside the body's cylinder.
func rayCylinder(origin, dir gamemath.Vec3, b *body) (float64, bool) {
	fx := origin.X - b.pos.X
	fz := origin.Z - b.pos.Z
	a := dir.X*dir.X + dir.Z*dir.Z
	c := fx*fx + fz*fz - b.radius*b.radius

	var t float64
	switch {
	case c <= 0:
		t = 0
	case a == 0:
		return 0, false
	default:
		half := fx*dir.X + fz*dir.Z
		disc := half*half - a*c
		if disc < 0 {
			return 0, false
		}
		t = (-half - math.Sqrt(disc)) / a
		if t < 0 {
			return 0, false
		}
	}

	y := origin.Y + dir.Y*t
	if y < b.pos.Y-b.radius || y > b.pos.Y+b.radius*3 {
		return 0, false
	}
	return t, true
}
