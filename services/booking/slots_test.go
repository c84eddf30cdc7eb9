package booking

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var granularity = 30 * time.Minute

// monday is a fixed Monday used across slot tests; "now" defaults to well
// before it so the past-clamp stays out of the way.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func entry(intervals ...models.AvailabilityInterval) *models.AvailabilityDay {
	return &models.AvailabilityDay{DayOfWeek: 1, Intervals: intervals}
}

func at(day time.Time, hhmm string) time.Time {
	min, err := ParseClock(hhmm)
	if err != nil {
		panic(err)
	}
	return clockAt(day, min)
}

func TestGenerateSlotsMorningWindow(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "12:00"})

	slots, err := GenerateSlots(monday, e, nil, monday.Add(-24*time.Hour), granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlotsExcludesBookedSlotOnly(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "12:00"})
	occupied := []Interval{{Start: at(monday, "10:00"), End: at(monday, "10:30")}}

	slots, err := GenerateSlots(monday, e, occupied, monday.Add(-24*time.Hour), granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlotsNoPartialSlotAtIntervalEnd(t *testing.T) {
	// 45 minutes of opening only fits one 30-minute slot.
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "09:45"})

	slots, err := GenerateSlots(monday, e, nil, monday.Add(-24*time.Hour), granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)
}

func TestGenerateSlotsClampsToNowOnSameDay(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "12:00"})

	// 10:10 rounds up to the 10:30 boundary.
	now := at(monday, "10:10")
	slots, err := GenerateSlots(monday, e, nil, now, granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlotsNowOnBoundaryIsKept(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "12:00"})

	now := at(monday, "10:30")
	slots, err := GenerateSlots(monday, e, nil, now, granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:30", "11:00", "11:30"}, slots)
}

func TestGenerateSlotsMultipleIntervals(t *testing.T) {
	e := entry(
		models.AvailabilityInterval{Start: "09:00", End: "10:00"},
		models.AvailabilityInterval{Start: "14:00", End: "15:00"},
	)

	slots, err := GenerateSlots(monday, e, nil, monday.Add(-24*time.Hour), granularity)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:30", "14:00", "14:30"}, slots)
}

func TestGenerateSlotsNilEntryYieldsEmpty(t *testing.T) {
	slots, err := GenerateSlots(monday, nil, nil, monday, granularity)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGenerateSlotsFullyBookedDay(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "09:00", End: "10:00"})
	occupied := []Interval{{Start: at(monday, "09:00"), End: at(monday, "10:00")}}

	slots, err := GenerateSlots(monday, e, occupied, monday.Add(-24*time.Hour), granularity)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsRejectsMalformedInterval(t *testing.T) {
	e := entry(models.AvailabilityInterval{Start: "9am", End: "12:00"})

	_, err := GenerateSlots(monday, e, nil, monday, granularity)
	assert.Error(t, err)
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
