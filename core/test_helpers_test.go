// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvalg/core.

package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/katalvlaran/lvalg/core"
	"github.com/katalvlaran/lvalg/engine"
)

// Common sizes used across core tests.
const (
	N3 = 3
	N6 = 6
)

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// counter tracks destroy events per handle for an isolated engine.
type counter struct {
	mu        sync.Mutex
	destroyed map[engine.Handle]int
}

// newEngine returns a fresh engine and its destroy counter.
func newEngine() (*engine.Engine, *counter) {
	c := &counter{destroyed: map[engine.Handle]int{}}
	e := engine.New(engine.WithObserver(func(ev engine.Event) {
		if ev.Op == engine.EventDestroy {
			c.mu.Lock()
			c.destroyed[ev.Handle]++
			c.mu.Unlock()
		}
	}))
	return e, c
}

// MustNoLeak FAILS the test if eng holds live handles or destroyed one twice.
func MustNoLeak(t *testing.T, eng *engine.Engine, c *counter) {
	t.Helper()

	if n := eng.Live(); n != 0 {
		t.Fatalf("engine holds %d live handles", n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for h, n := range c.destroyed {
		if n != 1 {
			t.Fatalf("handle %d destroyed %d times", h, n)
		}
	}
}

// ring builds an undirected ring on n vertices in eng.
func ring(t *testing.T, eng *engine.Engine, n int) *core.Graph {
	t.Helper()

	var ends []int
	for i := 0; i < n; i++ {
		ends = append(ends, i, (i+1)%n)
	}
	g, err := core.NewGraphFromEdges(n, ends, core.WithEngine(eng))
	MustNoError(t, err, "NewGraphFromEdges(ring)")

	return g
}
