package ui

import (
	"testing"
	"time"
)

func TestDebouncer_SingleTrigger(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	cmd := d.Trigger()
	msg, ok := cmd().(DebounceMsg)
	if !ok {
		t.Fatalf("Trigger command produced %T, want DebounceMsg", cmd())
	}
	if !d.Current(msg) {
		t.Error("only window not reported as current")
	}
}

func TestDebouncer_LatestTriggerWins(t *testing.T) {
	d := NewDebouncer(time.Millisecond)

	first := d.Trigger()
	second := d.Trigger()

	stale := first().(DebounceMsg)
	if d.Current(stale) {
		t.Error("superseded window still reported as current")
	}

	settled := second().(DebounceMsg)
	if !d.Current(settled) {
		t.Error("latest window not reported as current")
	}
}

func TestDebouncer_WaitsForDuration(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	cmd := d.Trigger()
	start := time.Now()
	cmd()
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("window settled after %v, want at least the settle duration", elapsed)
	}
}
