package job

import (
	"math"
	"time"

	"github.com/PerfectPlumbing/plumbing-ops/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves j to target if target is the designated successor and
// applies the lifecycle side effects:
//   - entering in_progress stamps time_in
//   - entering complete stamps time_out and fixes total_hours, rounded to
//     two decimals; total_hours stays unset when time_in was never stamped
func Transition(j *models.Job, target Status, now time.Time) error {
	if err := CanTransition(Status(j.Status), target); err != nil {
		return err
	}

	j.Status = string(target)

	switch target {
	case StatusInProgress:
		j.TimeIn = &now
	case StatusComplete:
		j.TimeOut = &now
		if j.TimeIn != nil {
			hours := math.Round(now.Sub(*j.TimeIn).Hours()*100) / 100
			j.TotalHours = &hours
		}
	}

	return nil
}
