package hazardlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCapacityExceededErrorType(t *testing.T) {
	l := New()
	defer func() {
		r := recover()
		require.NotNil(t, r)
		capErr, ok := r.(*CapacityExceededError)
		require.True(t, ok, "panic value must be *CapacityExceededError")
		require.Equal(t, MaxWorkers, capErr.WorkerID)
	}()
	_ = l.Insert(1, MaxWorkers)
}

// AllocationFailure must leave the list completely unmodified: no
// link, no counter movement.
func TestAllocationFailureLeavesListUnmodified(t *testing.T) {
	l := New()
	require.NoError(t, l.Insert(1, 0))

	l.allocate = func(key int) (*node, error) {
		return nil, errors.New("injected allocation failure")
	}

	err := l.Insert(2, 0)
	require.ErrorIs(t, err, ErrAllocationFailed)
	require.Equal(t, []int{1}, l.Dump())
	require.Equal(t, 1, l.Length())
}
