package session

import (
	"fmt"
	"log"

	"github.com/automoto/knightfall/game"
)

// Campaign drives a run across levels: it revives the knight on defeat,
// advances when a level completes, moves to survival after the last level
// and ends the run once the survival timer is met.
type Campaign struct {
	engine  *game.Engine
	ledger  *Ledger
	records *Records

	finished bool
}

// NewCampaign pairs an engine with the ledger registered as its hooks.
// records may be nil.
func NewCampaign(engine *game.Engine, ledger *Ledger, records *Records) *Campaign {
	return &Campaign{engine: engine, ledger: ledger, records: records}
}

// Start begins the run on level, or in survival mode.
func (c *Campaign) Start(level int, survival bool) error {
	c.finished = false
	c.ledger.levelDone = false
	if survival {
		if err := c.engine.StartSurvival(); err != nil {
			return fmt.Errorf("campaign: %w", err)
		}
		return nil
	}
	if err := c.engine.StartLevel(level); err != nil {
		return fmt.Errorf("campaign: %w", err)
	}
	c.ledger.Level = level
	return nil
}

// Update applies the outcome of the last engine tick.
func (c *Campaign) Update() {
	if c.finished {
		return
	}
	st := c.engine.Status()

	if c.ledger.Defeated() {
		log.Printf("[session] knight fell, restarting")
		c.ledger.Revive()
		if err := c.Start(c.ledger.Level, st.Survival); err != nil {
			log.Printf("[session] %v", err)
			c.Finish()
		}
		return
	}

	if st.Survival {
		if c.ledger.FinishSurvival(st.SurvivalElapsed, c.engine.Config().Survival.Duration) {
			c.Finish()
		}
		return
	}

	if !c.engine.IsLevelComplete() {
		return
	}
	next, ok := c.ledger.AdvanceLevel(len(c.engine.Config().Levels))
	if !ok {
		log.Printf("[session] campaign complete, starting survival")
		if err := c.Start(0, true); err != nil {
			log.Printf("[session] %v", err)
			c.Finish()
		}
		return
	}
	if err := c.Start(next, false); err != nil {
		log.Printf("[session] %v", err)
		c.Finish()
	}
}

// Finish clears the world and records the run. Later calls do nothing.
func (c *Campaign) Finish() {
	if c.finished {
		return
	}
	c.finished = true
	c.engine.Clear()
	c.Submit()
	log.Printf("[session] run over: score %d rank %s", c.ledger.Score, c.ledger.Rank())
}

// Submit offers the run to the records store.
func (c *Campaign) Submit() {
	if c.records == nil {
		return
	}
	rec := c.ledger.Record(c.engine.Status().SurvivalElapsed)
	if _, err := c.records.Submit(rec); err != nil {
		log.Printf("[session] %v", err)
	}
}

func (c *Campaign) Finished() bool { return c.finished }
