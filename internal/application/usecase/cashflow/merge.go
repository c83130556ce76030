// Package cashflow contains the cashflow projection, merge and summary logic.
package cashflow

import (
	"sort"

	"github.com/cashflowd/backend/internal/domain/entity"
)

// MergeTimeline unions projected, actual and persisted events into one
// chronologically sorted timeline.
//
// An override whose (sourceKind, sourceID, eventDate) slot matches a
// projected occurrence replaces it; a suppressed override removes the
// occurrence entirely. An override matching an actual event applies only its
// cosmetic name: the posted amount, date and processed state always win, and
// actual events can never be suppressed. Persisted one-offs and orphaned
// overrides (whose parent rule is gone) are kept as standalone entries. Two events may legitimately share a date, or even a
// date and amount, when an actual transaction coincides with an unrelated
// projection; no deduplication happens across source kinds.
//
// Ordering is deterministic: date ascending, actual events before projected
// and persisted ones on the same date, then source kind name, then original
// insertion order. Reproducible output is required for stable pagination and
// testing downstream.
func MergeTimeline(projected, actual, overrides []*entity.CashflowEvent) []*entity.CashflowEvent {
	bySlot := make(map[entity.EventSlot]*entity.CashflowEvent, len(overrides))
	for _, o := range overrides {
		if slot, ok := o.SlotKey(); ok {
			bySlot[slot] = o
		}
	}

	merged := make([]*entity.CashflowEvent, 0, len(projected)+len(actual)+len(overrides))
	consumed := make(map[entity.EventSlot]bool, len(bySlot))

	for _, p := range projected {
		slot, ok := p.SlotKey()
		if !ok {
			merged = append(merged, p)
			continue
		}
		override, exists := bySlot[slot]
		if !exists {
			merged = append(merged, p)
			continue
		}
		consumed[slot] = true
		if override.Suppressed {
			continue
		}
		merged = append(merged, override)
	}

	for _, a := range actual {
		if slot, ok := a.SlotKey(); ok {
			if override, exists := bySlot[slot]; exists {
				consumed[slot] = true
				if !override.Suppressed {
					renamed := *a
					renamed.Name = override.Name
					merged = append(merged, &renamed)
					continue
				}
			}
		}
		merged = append(merged, a)
	}

	for _, o := range overrides {
		if o.Suppressed {
			continue
		}
		if slot, ok := o.SlotKey(); ok && consumed[slot] {
			continue
		}
		merged = append(merged, o)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		a, b := merged[i], merged[j]
		if !a.EventDate.Equal(b.EventDate) {
			return a.EventDate.Before(b.EventDate)
		}
		if a.Processed != b.Processed {
			return a.Processed
		}
		return a.SourceKind < b.SourceKind
	})

	return merged
}
