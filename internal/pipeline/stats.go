package pipeline

import (
	"time"

	"endcard/internal/catalog"
)

// ItemStatus classifies the outcome of one specific clip.
type ItemStatus string

const (
	ItemRendered ItemStatus = "rendered"
	ItemSkipped  ItemStatus = "skipped"
	ItemFailed   ItemStatus = "failed"
)

// Item records the outcome of one specific clip for the run summary.
type Item struct {
	Clip       catalog.Clip
	Background string
	Output     string
	Status     ItemStatus
	Reason     string
	Elapsed    time.Duration
}

// Stats aggregates a batch run. Rendered+Skipped+Failed never exceeds Total;
// it falls short only when a run is interrupted.
type Stats struct {
	Total    int
	Rendered int
	Skipped  int
	Failed   int
	Items    []Item
}

func (s *Stats) record(item Item) {
	s.Items = append(s.Items, item)
	switch item.Status {
	case ItemRendered:
		s.Rendered++
	case ItemSkipped:
		s.Skipped++
	case ItemFailed:
		s.Failed++
	}
}
