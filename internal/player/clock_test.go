package player

import (
	"time"

	"github.com/ytget/names72/internal/clock"
)

func newManualClock() *clock.Manual {
	return clock.NewManual(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}
