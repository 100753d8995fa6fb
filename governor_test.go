package verve

import (
	"testing"
	"time"

	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/param"
)

// simulateFPS feeds the governor rate frames per second for the given
// duration, starting at start, and returns the end timestamp.
func simulateFPS(g *Governor, start time.Time, rate float64, d time.Duration) time.Time {
	interval := time.Duration(float64(time.Second) / rate)
	end := start.Add(d)
	now := start
	for now.Before(end) {
		g.Record(now)
		now = now.Add(interval)
	}
	return now
}

// TestGovernorStartsHigh verifies the initial tier.
func TestGovernorStartsHigh(t *testing.T) {
	g := NewGovernor(60)
	if g.Level() != param.QualityHigh {
		t.Errorf("Level() = %v, want %v", g.Level(), param.QualityHigh)
	}
}

// TestGovernorStepsDownUnderPressure verifies a sustained low frame
// rate lowers the tier by exactly one discrete step per full window.
func TestGovernorStepsDownUnderPressure(t *testing.T) {
	g := NewGovernor(60)
	var changes []event.Payload
	g.SetEmitter(func(p event.Payload) { changes = append(changes, p) })

	// 30 FPS for 12 seconds: one full ten-bucket window plus slack.
	simulateFPS(g, testEpoch, 30, 12*time.Second)

	if g.Level() != param.QualityMedium {
		t.Errorf("Level() = %v after sustained 30 FPS, want %v", g.Level(), param.QualityMedium)
	}
	if len(changes) != 1 {
		t.Fatalf("got %d quality events, want 1", len(changes))
	}
	qc := changes[0].(event.QualityChanged)
	if qc.Prev != param.QualityHigh || qc.Next != param.QualityMedium {
		t.Errorf("change = {%v -> %v}, want {high -> medium}", qc.Prev, qc.Next)
	}
}

// TestGovernorDebounce verifies a second step cannot follow the first
// within one averaging window: the window itself is the debounce.
func TestGovernorDebounce(t *testing.T) {
	g := NewGovernor(60)
	steps := 0
	g.SetEmitter(func(event.Payload) { steps++ })

	// 25 seconds at 20 FPS allows at most two full windows after the
	// first step's reset.
	simulateFPS(g, testEpoch, 20, 25*time.Second)

	if steps > 2 {
		t.Errorf("got %d tier steps in 25s, want at most 2 (one per window)", steps)
	}
	if g.Level() != param.QualityLow {
		t.Errorf("Level() = %v, want %v", g.Level(), param.QualityLow)
	}
}

// TestGovernorHoldsInDeadBand verifies frame rates between the two
// thresholds change nothing.
func TestGovernorHoldsInDeadBand(t *testing.T) {
	g := NewGovernor(60)
	events := 0
	g.SetEmitter(func(event.Payload) { events++ })

	// 53 FPS is between 0.80x and 0.95x of 60.
	simulateFPS(g, testEpoch, 53, 15*time.Second)

	if g.Level() != param.QualityHigh {
		t.Errorf("Level() = %v in dead band, want unchanged %v", g.Level(), param.QualityHigh)
	}
	if events != 0 {
		t.Errorf("got %d quality events in dead band, want 0", events)
	}
}

// TestGovernorRecoversUp verifies the tier steps back up once the frame
// rate clears the upper threshold for a full window.
func TestGovernorRecoversUp(t *testing.T) {
	g := NewGovernor(60)

	now := simulateFPS(g, testEpoch, 30, 12*time.Second)
	if g.Level() != param.QualityMedium {
		t.Fatalf("Level() = %v after pressure, want %v", g.Level(), param.QualityMedium)
	}

	simulateFPS(g, now, 60, 13*time.Second)
	if g.Level() != param.QualityHigh {
		t.Errorf("Level() = %v after recovery, want %v", g.Level(), param.QualityHigh)
	}
}

// TestGovernorFloorsAtLow verifies the tier never steps below the
// lowest level no matter how long the pressure lasts.
func TestGovernorFloorsAtLow(t *testing.T) {
	g := NewGovernor(60)

	simulateFPS(g, testEpoch, 5, 60*time.Second)

	if g.Level() != param.QualityLow {
		t.Errorf("Level() = %v, want floor %v", g.Level(), param.QualityLow)
	}
}
