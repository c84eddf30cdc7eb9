package booking

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	occ := []Interval{{Start: base, End: base.Add(time.Hour)}}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"contained", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"overlaps tail", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"overlaps head", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"covers fully", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"back to back before", base.Add(-time.Hour), base, false},
		{"disjoint", base.Add(3 * time.Hour), base.Add(4 * time.Hour), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.start, tt.end, occ))
		})
	}
}

func TestOverlapsEmptyOccupied(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	assert.False(t, Overlaps(base, base.Add(time.Hour), nil))
}

func TestOccupiedIntervals(t *testing.T) {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	appts := []models.Appointment{
		{StartTime: start, TotalDurationMin: 45},
		{StartTime: start.Add(2 * time.Hour), TotalDurationMin: 30},
	}

	got := OccupiedIntervals(appts)
	assert.Len(t, got, 2)
	assert.Equal(t, start, got[0].Start)
	assert.Equal(t, start.Add(45*time.Minute), got[0].End)
	assert.Equal(t, start.Add(2*time.Hour+30*time.Minute), got[1].End)
}
