package guard

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestGuard_DropsReentrantCalls(t *testing.T) {
	var g Guard

	if !g.TryAcquire() {
		t.Fatal("fresh guard should acquire")
	}
	if g.TryAcquire() {
		t.Fatal("second acquire while busy should be dropped")
	}
	g.Release()
	if !g.TryAcquire() {
		t.Fatal("guard should be available again after release")
	}
	g.Release()
}

func TestGuard_DoRunsAtMostOneAtATime(t *testing.T) {
	var g Guard

	started := make(chan struct{})
	release := make(chan struct{})
	first := make(chan struct{})
	var ran, dropped atomic.Int32

	go func() {
		defer close(first)
		g.Do(func() {
			close(started)
			<-release
			ran.Add(1)
		})
	}()
	<-started

	// While the first operation is outstanding, every entry is a no-op.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !g.Do(func() { ran.Add(1) }) {
				dropped.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := dropped.Load(); got != 8 {
		t.Fatalf("dropped = %d, want 8", got)
	}
	if got := ran.Load(); got != 0 {
		t.Fatalf("ran = %d before release, want 0", got)
	}

	close(release)
	<-first

	// The guard releases once the operation settles.
	if !g.Do(func() { ran.Add(1) }) {
		t.Fatal("guard never became available after release")
	}
	if got := ran.Load(); got != 2 {
		t.Fatalf("ran = %d, want 2", got)
	}
}

func TestGuard_ReleasesAfterDo(t *testing.T) {
	var g Guard

	for i := 0; i < 100; i++ {
		if !g.Do(func() {}) {
			t.Fatalf("sequential Do %d was dropped", i)
		}
	}
}
