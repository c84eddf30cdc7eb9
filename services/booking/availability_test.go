package booking

import (
	"testing"
	"time"

	"barberbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailableTimesListsOpenSlots(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.AvailableTimes("emp-1", monday)
	require.NoError(t, err)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "09:00", result.Times[0])
	assert.Equal(t, "17:30", result.Times[len(result.Times)-1])
	assert.Len(t, result.Times, 18)
}

func TestAvailableTimesExcludesBookedRange(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	_, err := te.engine.InitiateBooking(bookingReq(at(monday, "10:00"), "svc-cut", "svc-beard"))
	require.NoError(t, err)

	result, err := te.engine.AvailableTimes("emp-1", monday)
	require.NoError(t, err)
	assert.NotContains(t, result.Times, "10:00")
	assert.NotContains(t, result.Times, "10:30")
	assert.Contains(t, result.Times, "09:30")
	assert.Contains(t, result.Times, "11:00")
}

func TestAvailableTimesNoTemplate(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	result, err := te.engine.AvailableTimes("emp-unknown", monday)
	require.NoError(t, err)
	assert.Empty(t, result.Times)
	assert.Equal(t, ReasonNoTemplate, result.Reason)
}

func TestAvailableTimesNoEntryForWeekday(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	sunday := monday.AddDate(0, 0, 6)
	result, err := te.engine.AvailableTimes("emp-1", sunday)
	require.NoError(t, err)
	assert.Empty(t, result.Times)
	assert.Equal(t, ReasonNoEntryForWeekday, result.Reason)
}

func TestReplaceTemplateRejectsForeignEmployee(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	_, err := te.engine.ReplaceTemplate("est-other", "emp-1", nil)
	assert.Equal(t, CodeInvalidReference, CodeOf(err))
}

func TestReplaceTemplateValidation(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	tests := []struct {
		name string
		days []models.AvailabilityDay
	}{
		{"bad day of week", []models.AvailabilityDay{{DayOfWeek: 7}}},
		{"end before start", []models.AvailabilityDay{{
			DayOfWeek: 1,
			Intervals: []models.AvailabilityInterval{{Start: "12:00", End: "09:00"}},
		}}},
		{"zero-length interval", []models.AvailabilityDay{{
			DayOfWeek: 1,
			Intervals: []models.AvailabilityInterval{{Start: "09:00", End: "09:00"}},
		}}},
		{"overlapping intervals", []models.AvailabilityDay{{
			DayOfWeek: 1,
			Intervals: []models.AvailabilityInterval{
				{Start: "09:00", End: "12:00"},
				{Start: "11:00", End: "14:00"},
			},
		}}},
		{"malformed clock", []models.AvailabilityDay{{
			DayOfWeek: 1,
			Intervals: []models.AvailabilityInterval{{Start: "9am", End: "12:00"}},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := te.engine.ReplaceTemplate("est-1", "emp-1", tt.days)
			assert.Error(t, err)
		})
	}
}

func TestReplaceTemplateAcceptsTouchingIntervals(t *testing.T) {
	te := newTestEngine(monday.Add(-48 * time.Hour))

	tmpl, err := te.engine.ReplaceTemplate("est-1", "emp-1", []models.AvailabilityDay{{
		DayOfWeek: 2,
		Intervals: []models.AvailabilityInterval{
			{Start: "09:00", End: "12:00"},
			{Start: "12:00", End: "18:00"},
		},
	}})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", tmpl.EmployeeID)
}
