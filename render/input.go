package render

import (
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var elementKeys = map[ebiten.Key]config.Element{
	ebiten.Key1: config.ElementBasic,
	ebiten.Key2: config.ElementFire,
	ebiten.Key3: config.ElementIce,
	ebiten.Key4: config.ElementLightning,
}

// Keyboard implements components.Controls and components.AimProvider from
// keyboard and mouse state. WASD moves, the mouse aims, left click fires,
// space swings and R reloads.
type Keyboard struct {
	engine *game.Engine
	camera *Camera
	Speed  float64
}

func NewKeyboard(camera *Camera) *Keyboard {
	return &Keyboard{camera: camera, Speed: 7}
}

// Bind attaches the engine once it exists. The engine needs the keyboard at
// construction, so the two are wired in two steps.
func (k *Keyboard) Bind(engine *game.Engine) {
	k.engine = engine
}

// Update moves the player body and handles element selection. It runs
// before the engine tick.
func (k *Keyboard) Update() {
	if k.engine == nil {
		return
	}
	var dx, dz float64
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dz++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dz--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx--
	}
	dir := gamemath.V3(dx, 0, dz).Normalized()
	k.engine.Provider().SetHorizontalVelocity(k.engine.PlayerBody(), dir.X*k.Speed, dir.Z*k.Speed)

	for key, el := range elementKeys {
		if inpututil.IsKeyJustPressed(key) {
			k.engine.SelectElement(el)
		}
	}
}

func (k *Keyboard) MeleeDown() bool  { return ebiten.IsKeyPressed(ebiten.KeySpace) }
func (k *Keyboard) FireDown() bool   { return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) }
func (k *Keyboard) ReloadDown() bool { return ebiten.IsKeyPressed(ebiten.KeyR) }

// AimRay aims level from the eye toward the cursor on the ground plane.
func (k *Keyboard) AimRay() (gamemath.Vec3, gamemath.Vec3, bool) {
	if k.engine == nil {
		return gamemath.Vec3{}, gamemath.Vec3{}, false
	}
	pos, ok := k.engine.PlayerPosition()
	if !ok {
		return gamemath.Vec3{}, gamemath.Vec3{}, false
	}
	eye := k.engine.Config().Player.EyeHeight
	origin := pos.Add(gamemath.V3(0, eye, 0))

	cursor := k.camera.ScreenToWorld(ebiten.CursorPosition())
	cursor.Y = origin.Y
	dir := cursor.Sub(origin).Normalized()
	if dir == (gamemath.Vec3{}) {
		return gamemath.Vec3{}, gamemath.Vec3{}, false
	}
	return origin, dir, true
}
