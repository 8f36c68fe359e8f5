package performance

import (
	"context"
	"time"
)

// RealClock sleeps relative to the moment Sleep is called. Drift between
// subdivisions accumulates and is not corrected.
type RealClock struct{}

func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SwingDuration stretches tempo by percent.
func SwingDuration(tempo time.Duration, percent int) time.Duration {
	return time.Duration(float64(tempo) * (1 + float64(percent)/100))
}
