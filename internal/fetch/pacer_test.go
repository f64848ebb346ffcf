package fetch

import (
	"context"
	"testing"
	"time"
)

func TestPacer_ZeroIntervalNeverBlocks(t *testing.T) {
	p := NewPacer(0)
	for i := 0; i < 3; i++ {
		if err := p.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
}

func TestPacer_FirstWaitHonorsInterval(t *testing.T) {
	p := NewPacer(50 * time.Millisecond)

	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("first wait returned after %v, want the full interval", elapsed)
	}
}

func TestPacer_WaitStopsOnCancel(t *testing.T) {
	p := NewPacer(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Wait(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}
