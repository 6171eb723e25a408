package wipe

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"securewipe/internal/device"
	"securewipe/internal/progress"
)

// SessionConfig carries everything one wipe session needs. Presentation
// concerns (which throttle interval applies, where events go) arrive here
// explicitly instead of being read from process-wide state.
type SessionConfig struct {
	Algorithm        Algorithm
	CustomPasses     int
	BufferSize       int // bytes, already chosen by the sizing policy
	Integrity        IntegrityMode
	MaxSpeedMBps     float64 // 0 = unthrottled
	ProgressInterval time.Duration
	Source           ByteSource
	Emitter          progress.Emitter
	Logger           *zap.Logger
	Clock            func() time.Time
}

// Session is the mutable run state for one target: current pass, bytes
// written within it, and timing. It lives exactly as long as the run and
// is never persisted.
type Session struct {
	target  device.Target
	cfg     SessionConfig
	passes  []PassSpec
	bufSize int

	written   uint64 // bytes written in the current pass
	passStart time.Time
	start     time.Time
}

// NewSession validates the schedule and buffer before any I/O happens.
func NewSession(target device.Target, cfg SessionConfig) (*Session, error) {
	passes, err := PassesFor(cfg.Algorithm, cfg.CustomPasses)
	if err != nil {
		return nil, err
	}
	if cfg.BufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be positive, got %d", cfg.BufferSize)
	}
	if cfg.Emitter == nil {
		return nil, fmt.Errorf("session requires an event emitter")
	}
	if cfg.Source == nil {
		cfg.Source = CryptoSource{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = 100 * time.Millisecond
	}

	return &Session{
		target:  target,
		cfg:     cfg,
		passes:  passes,
		bufSize: clampToTarget(cfg.BufferSize, target.Size(), target.SectorSize()),
	}, nil
}

// Run executes every pass of the schedule sequentially. Any write or sync
// error is terminal: partial passes are not retried and there is no
// resume. The caller owns emitting the terminal error event.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	size := s.target.Size()
	total := len(s.passes)

	_ = s.cfg.Emitter.Emit(progress.Start(string(s.cfg.Algorithm), total, size, s.bufSize/1024))
	s.cfg.Logger.Info("wipe session starting",
		zap.String("target", s.target.Path()),
		zap.String("kind", s.target.Kind().String()),
		zap.String("algorithm", string(s.cfg.Algorithm)),
		zap.Int("passes", total),
		zap.Uint64("size_bytes", size),
		zap.Int("buffer_bytes", s.bufSize),
		zap.String("integrity", s.cfg.Integrity.String()))

	s.start = s.cfg.Clock()

	if size == 0 {
		// Nothing to overwrite; the session completes without running a
		// single pass.
		_ = s.cfg.Emitter.Emit(progress.Complete(0, 0))
		return &Result{}, nil
	}

	w := Throttled(s.target, s.cfg.MaxSpeedMBps)
	buf := GetBuffer(s.bufSize)
	defer PutBuffer(buf)

	for _, spec := range s.passes {
		if err := s.runPass(ctx, w, spec, buf); err != nil {
			return nil, err
		}
		s.cfg.Logger.Info("pass complete",
			zap.Int("pass", spec.Pass), zap.Int("total", spec.TotalPasses))
	}

	elapsed := s.cfg.Clock().Sub(s.start)
	totalBytes := size * uint64(total)
	var avg float64
	if elapsed.Seconds() > 0 {
		avg = float64(totalBytes) / elapsed.Seconds() / 1048576.0
	}

	_ = s.cfg.Emitter.Emit(progress.Complete(elapsed.Seconds(), avg))
	s.cfg.Logger.Info("wipe session complete",
		zap.Uint64("bytes_written", totalBytes),
		zap.Duration("elapsed", elapsed),
		zap.Float64("avg_mb_s", avg))

	return &Result{Passes: total, BytesWritten: totalBytes, Duration: elapsed, AvgMBps: avg}, nil
}

func (s *Session) runPass(ctx context.Context, w device.Target, spec PassSpec, buf []byte) error {
	size := s.target.Size()
	sector := s.target.SectorSize()

	if err := s.target.Rewind(); err != nil {
		return fmt.Errorf("rewind failed on pass %d: %w", spec.Pass, err)
	}
	s.written = 0
	s.passStart = s.cfg.Clock()

	_ = s.cfg.Emitter.Emit(progress.PassStart(spec.Pass, spec.TotalPasses, spec.Pattern.Name()))

	throttle := progress.NewThrottler(s.cfg.ProgressInterval)
	lastBytes := uint64(0)
	lastTime := s.passStart

	for s.written < size {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		remaining := size - s.written
		chunk := uint64(len(buf))
		if remaining < chunk {
			chunk = remaining
			// Devices with an alignment requirement may refuse writes that
			// are not sector multiples; degrade the final partial buffer to
			// the alignment instead of failing.
			if sector > 0 && chunk > uint64(sector) && chunk%uint64(sector) != 0 {
				chunk -= chunk % uint64(sector)
			}
		}

		b := buf[:chunk]
		if err := spec.Pattern.Fill(b, s.cfg.Source); err != nil {
			return fmt.Errorf("pattern generation failed on pass %d: %w", spec.Pass, err)
		}

		// A short write with no error is resumed from the updated offset;
		// zero progress without an error is treated as failure.
		off := 0
		for off < len(b) {
			n, err := w.Write(b[off:])
			if n > 0 {
				off += n
				s.written += uint64(n)
			}
			if err != nil {
				return fmt.Errorf("write failed at byte %d of pass %d: %w", s.written, spec.Pass, err)
			}
			if n == 0 {
				return fmt.Errorf("write made no progress at byte %d of pass %d", s.written, spec.Pass)
			}
		}

		if s.cfg.Integrity == Synchronous {
			if err := s.target.Sync(); err != nil {
				return fmt.Errorf("sync failed at byte %d of pass %d: %w", s.written, spec.Pass, err)
			}
		}

		now := s.cfg.Clock()
		first := lastBytes == 0
		final := s.written >= size
		if first || final || throttle.Allow(now) {
			var rate float64
			if dt := now.Sub(lastTime).Seconds(); dt > 0 {
				rate = float64(s.written-lastBytes) / dt
			}
			_ = s.cfg.Emitter.Emit(progress.Progress(
				spec.Pass, spec.TotalPasses, s.written, size, percent(s.written, size), rate))
			lastTime = now
			lastBytes = s.written
		}
	}

	if s.cfg.Integrity == Fast {
		if err := s.target.Sync(); err != nil {
			return fmt.Errorf("sync failed on pass %d: %w", spec.Pass, err)
		}
	}

	_ = s.cfg.Emitter.Emit(progress.PassComplete(spec.Pass, spec.TotalPasses))
	return nil
}

func percent(written, total uint64) float64 {
	if total == 0 {
		return 100
	}
	p := 100 * float64(written) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
