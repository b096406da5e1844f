package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight
	var executions atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Do("players", func() (any, error) {
			executions.Add(1)
			close(entered)
			<-release
			return "catalog", nil
		})
	}()
	<-entered

	// The leader is parked inside fn; every caller from here on shares it.
	const followers = 4
	results := make(chan any, followers)
	wg.Add(followers)
	for i := 0; i < followers; i++ {
		go func() {
			defer wg.Done()
			val, err, dedup := g.Do("players", func() (any, error) {
				executions.Add(1)
				return "duplicate", nil
			})
			if err != nil {
				t.Errorf("do: %v", err)
			}
			if !dedup {
				t.Error("follower result not marked as shared")
			}
			results <- val
		}()
	}

	// Give the followers a moment to park on the in-flight call.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected one execution, got %d", got)
	}
	for i := 0; i < followers; i++ {
		if val := <-results; val != "catalog" {
			t.Fatalf("follower got %v instead of the leader's result", val)
		}
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight

	a, _, _ := g.Do("a", func() (any, error) { return 1, nil })
	b, _, _ := g.Do("b", func() (any, error) { return 2, nil })
	if a != 1 || b != 2 {
		t.Fatalf("results crossed keys: a=%v b=%v", a, b)
	}
}
