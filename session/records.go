package session

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const bestRunKey = "best_run"

// Record is one finished run as stored on disk.
type Record struct {
	Score    int     `json:"score"`
	Coins    int     `json:"coins"`
	Kills    int     `json:"kills"`
	Level    int     `json:"level"`
	Rank     string  `json:"rank"`
	Survival float64 `json:"survival"` // seconds survived, 0 for campaign runs
}

// Better reports whether r beats other.
func (r Record) Better(other Record) bool {
	if r.Score != other.Score {
		return r.Score > other.Score
	}
	return r.Survival > other.Survival
}

// Storage is the item store behind Records. *gdata.Manager satisfies it.
type Storage interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Records keeps the best run. A nil store turns every call into a no-op.
type Records struct {
	store Storage
}

// OpenRecords opens the gdata store for appName.
func OpenRecords(appName string) (*Records, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[session] could not initialize persistence: %v", err)
		return &Records{}, fmt.Errorf("open records: %w", err)
	}
	return &Records{store: m}, nil
}

func NewRecords(store Storage) *Records {
	return &Records{store: store}
}

// Best returns the stored best run, or nil when none is saved yet.
func (r *Records) Best() (*Record, error) {
	if r.store == nil {
		return nil, nil
	}

	data, err := r.store.LoadItem(bestRunKey)
	if err != nil {
		log.Printf("[session] could not load best run: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse best run: %w", err)
	}
	return &rec, nil
}

// Submit stores rec if it beats the saved best and reports whether it did.
func (r *Records) Submit(rec Record) (bool, error) {
	if r.store == nil {
		return false, nil
	}

	best, err := r.Best()
	if err != nil {
		log.Printf("[session] replacing unreadable best run: %v", err)
	}
	if best != nil && !rec.Better(*best) {
		return false, nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("encode best run: %w", err)
	}
	if err := r.store.SaveItem(bestRunKey, data); err != nil {
		return false, fmt.Errorf("save best run: %w", err)
	}
	log.Printf("[session] new best run: score %d rank %s", rec.Score, rec.Rank)
	return true, nil
}
