package truthtable

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/eriklarko/boolean-algebra/src/boolexpr"
	"golang.org/x/sync/semaphore"
)

const (
	// DefaultMaxVariables keeps a full enumeration around a million bindings.
	DefaultMaxVariables = 20
	// AlphabetSize is the number of distinct variables an expression can
	// reference, A to Z.
	AlphabetSize = 26

	// bindings evaluated by one goroutine before it hands back its slot
	chunkSize = 1024
)

// Enumerator walks every binding of a set of variables, the first variable
// being the most significant bit:
//
//	A=0 B=0, A=0 B=1, A=1 B=0, A=1 B=1
type Enumerator struct {
	workers      int
	maxVariables int
}

// NewEnumerator creates an Enumerator. A non-positive workers uses
// GOMAXPROCS goroutines, a non-positive maxVariables uses
// DefaultMaxVariables.
func NewEnumerator(workers, maxVariables int) *Enumerator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if maxVariables <= 0 {
		maxVariables = DefaultMaxVariables
	}
	if maxVariables > AlphabetSize {
		maxVariables = AlphabetSize
	}
	return &Enumerator{
		workers:      workers,
		maxVariables: maxVariables,
	}
}

// Count returns the number of bindings over vars.
func (e *Enumerator) Count(vars []string) (int, error) {
	if len(vars) > e.maxVariables {
		return 0, NewTooManyVariablesError(len(vars), e.maxVariables)
	}
	return 1 << len(vars), nil
}

// BindingAt returns the binding at the given position of the enumeration
// order.
func BindingAt(vars []string, index int) boolexpr.Binding {
	binding := make(boolexpr.Binding, len(vars))
	for i, name := range vars {
		shift := len(vars) - 1 - i
		binding[name] = (index>>shift)&1 == 1
	}
	return binding
}

// Each calls fn once for every binding of vars. Calls happen concurrently;
// index is the binding's position in the enumeration order, so fn can store
// its results by index to keep them in order. The first error returned by
// fn stops the enumeration and is returned.
func (e *Enumerator) Each(ctx context.Context, vars []string, fn func(index int, binding boolexpr.Binding) error) error {
	total, err := e.Count(vars)
	if err != nil {
		return err
	}

	chunks := (total + chunkSize - 1) / chunkSize
	slog.Debug("enumerating bindings",
		"variables", len(vars),
		"bindings", total,
		"workers", e.workers,
		"chunks", chunks,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := semaphore.NewWeighted(int64(e.workers))
	wg := sync.WaitGroup{}
	errs := make([]error, chunks)

	runChunk := func(chunk int) {
		defer sem.Release(1)
		defer wg.Done()

		end := min((chunk+1)*chunkSize, total)
		for i := chunk * chunkSize; i < end; i++ {
			if err := ctx.Err(); err != nil {
				errs[chunk] = err
				return
			}
			if err := fn(i, BindingAt(vars, i)); err != nil {
				errs[chunk] = err
				cancel()
				return
			}
		}
	}

	for chunk := 0; chunk < chunks; chunk++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			// either the caller gave up or a chunk failed, both are
			// reported below
			break
		}
		wg.Add(1)
		go runChunk(chunk)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	}
	return context.Cause(ctx)
}
