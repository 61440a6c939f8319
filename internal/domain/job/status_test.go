package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PerfectPlumbing/plumbing-ops/internal/httperr"
)

func TestCanTransition_LinearPath(t *testing.T) {
	path := []Status{
		StatusDraft,
		StatusQuoted,
		StatusConfirmed,
		StatusInProgress,
		StatusComplete,
		StatusInvoiced,
		StatusArchived,
	}

	for i := 0; i < len(path)-1; i++ {
		assert.NoError(t, CanTransition(path[i], path[i+1]), "%s -> %s", path[i], path[i+1])
	}
}

func TestCanTransition_RejectsEverythingElse(t *testing.T) {
	all := []Status{
		StatusDraft,
		StatusQuoted,
		StatusConfirmed,
		StatusInProgress,
		StatusComplete,
		StatusInvoiced,
		StatusArchived,
	}

	for _, from := range all {
		for _, to := range all {
			next, ok := Next(from)
			if ok && next == to {
				continue
			}

			err := CanTransition(from, to)
			require.Error(t, err, "%s -> %s should be rejected", from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
		}
	}
}

func TestNext_ArchivedIsTerminal(t *testing.T) {
	_, ok := Next(StatusArchived)
	assert.False(t, ok)
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(StatusDraft))
	assert.True(t, IsValid(StatusArchived))
	assert.False(t, IsValid(Status("paid")))
	assert.False(t, IsValid(Status("")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusDraft, InitialStatus())
}
