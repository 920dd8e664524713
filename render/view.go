package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/session"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var (
	background   = color.RGBA{0x14, 0x16, 0x1c, 0xff}
	gridColor    = color.RGBA{0x24, 0x28, 0x30, 0xff}
	playerColor  = color.RGBA{0x4a, 0x9e, 0xff, 0xff}
	unawareColor = color.RGBA{0x8a, 0x8a, 0x8a, 0xff}
	awareColor   = color.RGBA{0xe0, 0xa0, 0x30, 0xff}
	alertedColor = color.RGBA{0xff, 0x40, 0x40, 0xff}
	bossColor    = color.RGBA{0xb0, 0x40, 0xff, 0xff}
	arenaColor   = color.RGBA{0xb0, 0x40, 0xff, 0x80}
	shotColor    = color.RGBA{0xff, 0xff, 0xa0, 0xff}
	bossShot     = color.RGBA{0xff, 0x60, 0xd0, 0xff}
	lootColor    = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	barBack      = color.RGBA{0x60, 0x10, 0x10, 0xff}
	barFront     = color.RGBA{0x30, 0xd0, 0x50, 0xff}
	hudColor     = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	bannerColor  = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

const gridStep = 10.0

// View draws the encounter from above with a debug HUD.
type View struct {
	Camera *Camera
}

func NewView(camera *Camera) *View {
	return &View{Camera: camera}
}

func (v *View) Draw(screen *ebiten.Image, engine *game.Engine, ledger *session.Ledger) {
	screen.Fill(background)
	if pos, ok := engine.PlayerPosition(); ok {
		v.Camera.Follow(pos, 0.15)
	}
	v.drawGrid(screen)

	w := engine.World()
	provider := engine.Provider()
	scale := float32(v.Camera.Scale)

	for _, p := range ledger.Loot {
		x, y := v.Camera.WorldToScreen(p)
		vector.FillCircle(screen, x, y, 0.4*scale, lootColor, true)
	}

	components.Arena.Each(w, func(e *donburi.Entry) {
		a := components.Arena.Get(e)
		if !w.Valid(a.Owner) {
			return
		}
		owner := w.Entry(a.Owner)
		pos, ok := provider.Position(components.Body.Get(owner).ID)
		if !ok {
			return
		}
		x, y := v.Camera.WorldToScreen(pos)
		vector.StrokeCircle(screen, x, y, float32(a.Radius)*scale, 2, arenaColor, true)
	})

	components.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Dead {
			return
		}
		pos, ok := provider.Position(components.Body.Get(e).ID)
		if !ok {
			return
		}
		x, y := v.Camera.WorldToScreen(pos)
		radius := float32(engine.Config().Physics.BodyRadius)
		clr := awarenessColor(c.Awareness)
		if e.HasComponent(components.Boss) {
			b := components.Boss.Get(e)
			radius = float32(engine.Config().Physics.BossBodyRadius * b.Type.Scale)
			clr = bossColor
		}
		vector.FillCircle(screen, x, y, radius*scale, clr, true)
		v.drawHealthBar(screen, x, y-radius*scale-6, radius*scale*2, c.Health/c.MaxHealth)
	})

	components.Projectile.Each(w, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		x, y := v.Camera.WorldToScreen(p.Position)
		clr := shotColor
		if p.Side == components.SideEnemy {
			clr = bossShot
		}
		vector.FillCircle(screen, x, y, 3, clr, true)
	})

	if pos, ok := engine.PlayerPosition(); ok {
		x, y := v.Camera.WorldToScreen(pos)
		vector.FillCircle(screen, x, y, float32(engine.Config().Physics.PlayerRadius)*scale, playerColor, true)
		fwd := engine.Arsenal().Forward
		tx, ty := v.Camera.WorldToScreen(pos.Add(gamemath.V3(fwd.X, 0, fwd.Z).Normalized().Scale(3)))
		vector.StrokeLine(screen, x, y, tx, ty, 1, playerColor, true)
	}

	v.drawHUD(screen, engine, ledger)
}

func awarenessColor(a components.Awareness) color.Color {
	switch a {
	case components.Aware:
		return awareColor
	case components.Alerted:
		return alertedColor
	default:
		return unawareColor
	}
}

func (v *View) drawGrid(screen *ebiten.Image) {
	tl := v.Camera.ScreenToWorld(0, 0)
	br := v.Camera.ScreenToWorld(v.Camera.Width, v.Camera.Height)
	w, h := float32(v.Camera.Width), float32(v.Camera.Height)

	for gx := float64(int(tl.X/gridStep)) * gridStep; gx <= br.X; gx += gridStep {
		x, _ := v.Camera.WorldToScreen(gamemath.V3(gx, 0, 0))
		vector.FillRect(screen, x, 0, 1, h, gridColor, false)
	}
	for gz := float64(int(br.Z/gridStep)) * gridStep; gz <= tl.Z; gz += gridStep {
		_, y := v.Camera.WorldToScreen(gamemath.V3(0, 0, gz))
		vector.FillRect(screen, 0, y, w, 1, gridColor, false)
	}
}

func (v *View) drawHealthBar(screen *ebiten.Image, cx, y, width float32, pct float64) {
	x := cx - width/2
	vector.FillRect(screen, x, y, width, 3, barBack, false)
	vector.FillRect(screen, x, y, width*float32(pct), 3, barFront, false)
}

func (v *View) drawHUD(screen *ebiten.Image, engine *game.Engine, ledger *session.Ledger) {
	st := engine.Status()
	ars := engine.Arsenal()

	lines := []string{
		fmt.Sprintf("%s  [%s]", levelLabel(st), st.State),
		fmt.Sprintf("Score %d  Coins %d  Rank %s", ledger.Score, ledger.Coins, ledger.Rank()),
		fmt.Sprintf("Health %.0f/%.0f  Kills %d  Alive %d", ledger.Health, ledger.MaxHealth, st.Kills, st.AliveRegulars),
		fmt.Sprintf("Ammo %d/%d %s  next %s x%d", ars.CurrentMagazine, ars.MagazineSize, ars.Loaded, ars.Selected, ars.Reserve[ars.Selected]),
	}
	if ars.IsReloading {
		lines = append(lines, fmt.Sprintf("Reloading %.1fs", ars.ReloadTimer))
	}
	if st.Boss != nil {
		lines = append(lines, fmt.Sprintf("%s  %.0f/%.0f  phase %d", st.Boss.Name, st.Boss.Health, st.Boss.MaxHealth, st.Boss.Phase))
	}
	for i, l := range lines {
		drawText(screen, l, HUD, 8, float64(8+i*16), hudColor)
	}

	if n := len(ledger.Narration); n > 0 {
		drawText(screen, ledger.Narration[n-1], Banner, 8, float64(v.Camera.Height-40), bannerColor)
	}
}

func levelLabel(st game.Status) string {
	if st.Survival {
		return fmt.Sprintf("Survival %.0fs  wave %d", st.SurvivalElapsed, st.SurvivalWaves)
	}
	if st.LevelIndex < 0 {
		return "Idle"
	}
	return fmt.Sprintf("Level %d %s", st.LevelIndex+1, st.LevelName)
}
