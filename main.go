package main

import (
	"flag"
	"log"
	"os"

	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/render"
	"github.com/automoto/knightfall/session"
	"github.com/automoto/knightfall/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	screenWidth  = 960
	screenHeight = 640
	lootPickup   = 1.5
)

type Game struct {
	engine   *game.Engine
	ledger   *session.Ledger
	campaign *session.Campaign
	keys     *render.Keyboard
	view     *render.View
	paused   bool
}

func NewGame(cfg *config.Config, records *session.Records, level int, survival bool, seed int64) (*Game, error) {
	camera := render.NewCamera(screenWidth, screenHeight)
	keys := render.NewKeyboard(camera)
	ledger := session.NewLedger(session.DefaultRewards(), 100)

	engine, err := game.New(game.Options{
		Config:   cfg,
		Hooks:    ledger,
		Controls: keys,
		Aim:      keys,
		Seed:     seed,
	})
	if err != nil {
		return nil, err
	}
	keys.Bind(engine)

	g := &Game{
		engine:   engine,
		ledger:   ledger,
		campaign: session.NewCampaign(engine, ledger, records),
		keys:     keys,
		view:     render.NewView(camera),
	}
	if err := g.campaign.Start(level, survival); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
		g.engine.SetPaused(g.paused)
	}
	if g.paused {
		return nil
	}

	g.keys.Update()
	g.engine.Tick(1/float64(ebiten.TPS()), false)
	g.campaign.Update()

	if pos, ok := g.engine.PlayerPosition(); ok {
		g.ledger.CollectLoot(pos, lootPickup)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen, g.engine, g.ledger)
}

func (g *Game) Layout(width, height int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	configPath := flag.String("config", "", "YAML tuning overrides")
	levelsDir := flag.String("levels", "", "Directory of .tmx level maps replacing the built-in levels")
	level := flag.Int("level", 0, "Level index to start on")
	survival := flag.Bool("survival", false, "Start in survival mode")
	seed := flag.Int64("seed", 1, "Random seed")
	fontPath := flag.String("font", "", "TrueType font for the HUD (default: built-in bitmap font)")
	flag.Parse()

	var ttf []byte
	if *fontPath != "" {
		var err error
		if ttf, err = os.ReadFile(*fontPath); err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}
	if err := render.LoadFonts(ttf); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *levelsDir != "" {
		if err := leveldata.Apply(cfg, os.DirFS(*levelsDir), "."); err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
	}

	records, err := session.OpenRecords("knightfall")
	if err != nil {
		log.Printf("Warning: best runs will not be saved: %v", err)
	}
	if best, err := records.Best(); err == nil && best != nil {
		log.Printf("Best run: score %d, rank %s", best.Score, best.Rank)
	}

	g, err := NewGame(cfg, records, *level, *survival, *seed)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Knightfall")

	err = ebiten.RunGame(g)
	g.campaign.Submit()
	if err != nil {
		log.Fatal(err)
	}
}
