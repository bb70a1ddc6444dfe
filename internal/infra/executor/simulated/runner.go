package simulated

import (
	"context"
	"time"

	domain "github.com/bryanwahyu/legal-doc-analyzer/internal/domain/analysis"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Runner plays the fixed stage sequence with timer delays. No real work is done.
type Runner struct {
	speed float64
	sleep SleepFunc
}

// NewRunner builds a runner; speed > 1 shortens every delay proportionally.
func NewRunner(speed float64) *Runner {
	if speed <= 0 {
		speed = 1
	}
	return &Runner{speed: speed, sleep: timerSleep}
}

// WithSleep swaps the wait function (tests use a no-op).
func (r *Runner) WithSleep(fn SleepFunc) *Runner {
	r.sleep = fn
	return r
}

func (r *Runner) scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) / r.speed)
}

// Run executes stages strictly in order. A stage with a progress bar advances
// through ProgressTicks+1 linear positions spread over its duration.
func (r *Runner) Run(ctx context.Context, stages []domain.StageSpec, obs domain.StageObserver) error {
	for _, st := range stages {
		if err := obs.StageStarted(st.ID); err != nil {
			return err
		}

		d := r.scaled(st.Duration)
		if st.HasProgress() {
			tick := d / domain.ProgressTicks
			for i := 0; i <= domain.ProgressTicks; i++ {
				obs.StageProgress(st.ID, i)
				if err := r.sleep(ctx, tick); err != nil {
					return err
				}
			}
		} else if err := r.sleep(ctx, d); err != nil {
			return err
		}

		if err := obs.StageCompleted(st.ID); err != nil {
			return err
		}
	}
	return nil
}

func timerSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
