package storage

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestSweepOnceRemovesOnlyStaleFiles(t *testing.T) {
	area, err := NewArea(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := area.Save(strings.NewReader("old"), "stale.bin"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := area.Save(strings.NewReader("new"), "fresh.bin"); err != nil {
		t.Fatal(err)
	}

	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(area.Resolve("stale.bin"), old, old); err != nil {
		t.Fatal(err)
	}

	s := NewSweeper(time.Hour, time.Minute, area)
	removed := s.sweepOnce(time.Now())

	if removed != 1 {
		t.Errorf("sweepOnce removed %d files, want 1", removed)
	}
	if area.Exists("stale.bin") {
		t.Error("stale file survived the sweep")
	}
	if !area.Exists("fresh.bin") {
		t.Error("fresh file was swept")
	}
}

func TestSweeperStartStop(t *testing.T) {
	area, err := NewArea(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s := NewSweeper(time.Hour, 5*time.Millisecond, area)
	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}
