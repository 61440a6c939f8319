package job

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

func TestTransition_InProgressStampsTimeIn(t *testing.T) {
	j := &models.Job{Status: string(StatusConfirmed)}
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	require.NoError(t, Transition(j, StatusInProgress, now))

	assert.Equal(t, string(StatusInProgress), j.Status)
	require.NotNil(t, j.TimeIn)
	assert.Equal(t, now, *j.TimeIn)
	assert.Nil(t, j.TimeOut)
	assert.Nil(t, j.TotalHours)
}

func TestTransition_CompleteComputesTotalHours(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{name: "NinetyMinutes", elapsed: 90 * time.Minute, want: 1.5},
		{name: "HundredMinutes", elapsed: 100 * time.Minute, want: 1.67},
		{name: "TenMinutes", elapsed: 10 * time.Minute, want: 0.17},
		{name: "TwoDays", elapsed: 48 * time.Hour, want: 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
			timeOut := timeIn.Add(tt.elapsed)

			j := &models.Job{
				Status: string(StatusInProgress),
				TimeIn: &timeIn,
			}

			require.NoError(t, Transition(j, StatusComplete, timeOut))

			assert.Equal(t, string(StatusComplete), j.Status)
			require.NotNil(t, j.TimeOut)
			assert.Equal(t, timeOut, *j.TimeOut)
			require.NotNil(t, j.TotalHours)
			assert.Equal(t, tt.want, *j.TotalHours)
		})
	}
}

func TestTransition_CompleteWithoutTimeInLeavesHoursUnset(t *testing.T) {
	j := &models.Job{Status: string(StatusInProgress)}
	now := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	require.NoError(t, Transition(j, StatusComplete, now))

	require.NotNil(t, j.TimeOut)
	assert.Nil(t, j.TotalHours)
}

func TestTransition_InvalidTargetLeavesJobUntouched(t *testing.T) {
	j := &models.Job{Status: string(StatusDraft)}
	now := time.Now()

	err := Transition(j, StatusComplete, now)

	require.Error(t, err)
	assert.Equal(t, string(StatusDraft), j.Status)
	assert.Nil(t, j.TimeIn)
	assert.Nil(t, j.TimeOut)
}
