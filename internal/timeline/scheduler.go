package timeline

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultFrameInterval throttles redraws to roughly 60 per second.
const DefaultFrameInterval = time.Second / 60

// Scheduler decouples "state changed" from "redraw happened now". Mutations
// mark the scheduler dirty; a recurring tick redraws at most once per frame
// interval and only while dirty. Resize handling calls ForceRedraw to bypass
// the throttle for that one frame.
type Scheduler struct {
	mu       sync.Mutex
	dirty    bool
	interval time.Duration
	lastDraw time.Time
	running  bool
	stop     chan struct{}

	redraw func()
	now    func() time.Time
}

// NewScheduler wraps the given redraw callback with the default frame
// interval. The callback runs on the scheduler's tick goroutine; callers
// rendering into a toolkit must hop to its thread themselves.
func NewScheduler(redraw func()) *Scheduler {
	return &Scheduler{
		interval: DefaultFrameInterval,
		redraw:   redraw,
		now:      time.Now,
	}
}

// SetInterval overrides the target frame interval. Non-positive values are
// ignored.
func (s *Scheduler) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	s.mu.Lock()
	s.interval = d
	s.mu.Unlock()
}

// MarkDirty records that state changed since the last completed redraw.
func (s *Scheduler) MarkDirty() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()
}

// Dirty reports whether a redraw is pending.
func (s *Scheduler) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Start launches the recurring tick. Starting an already-running scheduler is
// a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	stop := s.stop
	interval := s.interval
	s.mu.Unlock()

	log.Debug().Dur("interval", interval).Msg("redraw scheduler started")
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.tick()
			}
		}
	}()
}

// Stop halts the recurring tick. A pending dirty flag is left in place; it is
// picked up again if the scheduler is restarted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	s.mu.Unlock()
	log.Debug().Msg("redraw scheduler stopped")
}

// Running reports whether the tick loop is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// tick performs one throttled redraw check: redraw only when dirty and the
// frame interval has elapsed since the last completed redraw. The flag is
// cleared before the callback runs, not after, so a mutation landing during
// the redraw re-marks it and is picked up on the next tick instead of being
// lost.
func (s *Scheduler) tick() {
	s.mu.Lock()
	now := s.now()
	if !s.dirty || now.Sub(s.lastDraw) < s.interval {
		s.mu.Unlock()
		return
	}
	s.dirty = false
	s.lastDraw = now
	redraw := s.redraw
	s.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}

// ForceRedraw redraws immediately, outside the throttled loop. Used when the
// surface is resized and the next frame must reflect the new dimensions.
// Clears the dirty flag before the callback for the same reason tick does.
func (s *Scheduler) ForceRedraw() {
	s.mu.Lock()
	s.dirty = false
	s.lastDraw = s.now()
	redraw := s.redraw
	s.mu.Unlock()

	if redraw != nil {
		redraw()
	}
}
