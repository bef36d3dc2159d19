package storage

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// Sweeper periodically removes area entries older than a TTL. Processed
// artifacts that are never downloaded, and incoming files left behind by
// a crash mid-conversion, would otherwise accumulate forever.
type Sweeper struct {
	areas    []*Area
	ttl      time.Duration
	interval time.Duration
	done     chan struct{}
	stopped  chan struct{}
}

// NewSweeper creates a Sweeper over the given areas.
func NewSweeper(ttl, interval time.Duration, areas ...*Area) *Sweeper {
	return &Sweeper{
		areas:    areas,
		ttl:      ttl,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the sweep loop in its own goroutine.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				if n := s.sweepOnce(time.Now()); n > 0 {
					log.Printf("sweeper: removed %d stale file(s)", n)
				}
			}
		}
	}()
}

// Stop terminates the sweep loop and waits for it to exit.
func (s *Sweeper) Stop() {
	close(s.done)
	<-s.stopped
}

// sweepOnce removes every regular file whose mtime is older than the TTL
// and returns the number removed.
func (s *Sweeper) sweepOnce(now time.Time) int {
	cutoff := now.Add(-s.ttl)
	removed := 0
	for _, area := range s.areas {
		entries, err := os.ReadDir(area.Dir())
		if err != nil {
			log.Printf("sweeper: read %q: %v", area.Dir(), err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(area.Dir(), entry.Name())); err != nil && !os.IsNotExist(err) {
					log.Printf("sweeper: remove %q: %v", entry.Name(), err)
					continue
				}
				removed++
			}
		}
	}
	return removed
}
