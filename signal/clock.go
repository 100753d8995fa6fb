// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"math"
	"time"
)

// Diurnal curve anchors: the factor bottoms out at 03:00 local time and
// peaks at 15:00.
const diurnalTroughHour = 3.0

// DiurnalFactor maps a wall-clock instant onto a smooth [0, 1] curve
// over the local day: 0 in the small hours, 1 mid-afternoon. The
// orchestrator stretches this onto the time-of-day multiplier band.
func DiurnalFactor(t time.Time) float64 {
	h := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return 0.5 - 0.5*math.Cos(2*math.Pi*(h-diurnalTroughHour)/24)
}

// ClockSample wraps DiurnalFactor in the sample envelope. Clock samples
// carry no interaction energy.
func ClockSample(at time.Time) Sample {
	return Sample{Kind: KindClock, Value: DiurnalFactor(at), At: at}
}
