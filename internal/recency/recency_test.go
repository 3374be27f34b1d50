package recency

import (
	"testing"

	"github.com/timvw/pane-pick/internal/model"
)

func pane(id string, active bool, lastUsed uint64) model.Pane {
	return model.Pane{FullID: id, IsActive: active, LastUsed: lastUsed}
}

func TestBest(t *testing.T) {
	tests := []struct {
		name    string
		panes   []model.Pane
		current string
		want    int
		wantOK  bool
	}{
		{
			name:    "empty list",
			panes:   nil,
			current: "a:0.0",
			wantOK:  false,
		},
		{
			name:    "only the current pane",
			panes:   []model.Pane{pane("a:0.0", true, 10)},
			current: "a:0.0",
			wantOK:  false,
		},
		{
			name: "tie on timestamp keeps the first",
			panes: []model.Pane{
				pane("A", false, 5),
				pane("B", false, 5),
				pane("C", false, 3),
			},
			current: "X",
			want:    0,
			wantOK:  true,
		},
		{
			name: "active overrides a higher timestamp",
			panes: []model.Pane{
				pane("A", false, 100),
				pane("B", true, 1),
			},
			current: "X",
			want:    1,
			wantOK:  true,
		},
		{
			name: "later active overwrites earlier active",
			panes: []model.Pane{
				pane("A", true, 50),
				pane("B", true, 0),
			},
			current: "X",
			want:    1,
			wantOK:  true,
		},
		{
			name: "active resets the bar for later inactive panes",
			panes: []model.Pane{
				pane("A", false, 100),
				pane("B", true, 1),
				pane("C", false, 2),
			},
			current: "X",
			want:    2,
			wantOK:  true,
		},
		{
			name: "current pane excluded even when it would win",
			panes: []model.Pane{
				pane("A", false, 1),
				pane("CUR", true, 999),
				pane("B", false, 2),
			},
			current: "CUR",
			want:    2,
			wantOK:  true,
		},
		{
			name: "fallback to first non-current pane",
			panes: []model.Pane{
				pane("CUR", true, 10),
				pane("A", false, 0),
				pane("B", false, 0),
			},
			current: "CUR",
			want:    1,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Best(tt.panes, tt.current)
			if ok != tt.wantOK {
				t.Fatalf("Best() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Best() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBest_NeverReturnsCurrent(t *testing.T) {
	panes := []model.Pane{
		pane("A", true, 7),
		pane("B", true, 8),
		pane("C", false, 9),
	}
	for _, p := range panes {
		idx, ok := Best(panes, p.FullID)
		if !ok {
			t.Fatalf("expected a candidate when current=%s", p.FullID)
		}
		if panes[idx].FullID == p.FullID {
			t.Errorf("Best returned the current pane %s", p.FullID)
		}
	}
}
