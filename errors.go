package hazardlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// CapacityExceededError is panicked when a caller passes a worker id
// outside [0, MaxWorkers). This is a programming error, not a runtime
// condition callers are expected to recover from in normal operation,
// so it panics rather than returning through the operation signatures.
type CapacityExceededError struct {
	WorkerID int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("hazardlist: worker id %d outside [0, %d)", e.WorkerID, MaxWorkers)
}

// ErrAllocationFailed is returned by Insert, wrapped with
// errors.WithStack, when the node allocator hook fails. It is never
// returned after any part of the list has
// been mutated: allocation happens before pred.next is rewritten and
// before any counter moves.
var ErrAllocationFailed = errors.New("hazardlist: node allocation failed")

// allocator is the pluggable node-construction hook. The default never
// fails; it exists so allocation failure is test-observable, since
// Go's normal allocation does not fail in a way callers can trigger
// deterministically.
type allocator func(key int) (*node, error)

func defaultAllocator(key int) (*node, error) {
	return newNode(key), nil
}
