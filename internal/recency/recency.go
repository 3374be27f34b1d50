// Package recency picks the pane a user most likely wants to jump to.
package recency

import "github.com/timvw/pane-pick/internal/model"

// Best returns the index of the best pane other than currentID.
//
// Panes are scanned in order. A pane becomes the running best when it is
// active or strictly more recent than the current best; the active flag
// skips the time comparison, so a later active pane always overwrites an
// earlier choice and resets the bar to its own timestamp. When no pane
// qualifies, the first pane that is not currentID is returned. ok is false
// only when every pane is currentID (or the list is empty).
func Best(panes []model.Pane, currentID string) (idx int, ok bool) {
	best := -1
	var bestTime uint64

	for i, p := range panes {
		if p.FullID == currentID {
			continue
		}
		if p.IsActive || p.LastUsed > bestTime {
			bestTime = p.LastUsed
			best = i
		}
	}
	if best >= 0 {
		return best, true
	}

	for i, p := range panes {
		if p.FullID != currentID {
			return i, true
		}
	}
	return 0, false
}
