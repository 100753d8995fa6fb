package verve

import (
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/signal"
)

// Signal fusion tuning. Decay constants are per-tick multipliers at the
// nominal frame rate; energies are held as the max of the decayed value
// and each incoming sample, so interaction bursts register instantly
// and quiet periods bleed off over roughly a second.
const (
	// activityDecay shrinks the composite interaction accumulator each
	// tick. 0.95 halves it in about 14 frames.
	activityDecay = 0.95

	// activityGain scales how much one sample's energy bumps the
	// accumulator.
	activityGain = 0.25

	// pointerEnergyDecay and scrollEnergyDecay bleed the per-signal
	// energies between samples.
	pointerEnergyDecay = 0.92
	scrollEnergyDecay  = 0.90

	// multOverdrive stretches the energy-driven multiplier maps a
	// little past their ceilings, so a saturated signal pins the
	// multiplier flat at the documented clamp instead of approaching
	// it asymptotically through the decay.
	multOverdrive = 1.15

	// HueDeflection is the additive hue shift in degrees at full
	// horizontal pointer deflection.
	HueDeflection = 60.0

	// gyroRange is the rotation-plane swing in radians at full pointer
	// deflection. Rotations track the pointer directly (gyroscope
	// mapping) instead of going through the multipliers.
	gyroRange = math.Pi / 2

	// Audio band gains. Each factor is exactly 1 when no audio source
	// has ever delivered a sample, so silent pages render the authored
	// profile untouched.
	bassGridGain  = 0.8
	midMoireGain  = 0.9
	trebleRGBGain = 1.2
)

// Multiplier blend weights. Each target channel scales by its own
// weighted mix of the five multipliers; every row sums to 1 so neutral
// multipliers leave the profile base untouched.
const (
	intensityWMouse, intensityWScroll, intensityWHover, intensityWClock, intensityWEnergy = 0.35, 0.20, 0.15, 0.10, 0.20
	chaosWMouse, chaosWScroll, chaosWHover, chaosWClock, chaosWEnergy                     = 0.25, 0.30, 0.05, 0.05, 0.35
	speedWMouse, speedWScroll, speedWHover, speedWClock, speedWEnergy                     = 0.40, 0.25, 0.05, 0.05, 0.25
	morphWMouse, morphWScroll, morphWHover, morphWClock, morphWEnergy                     = 0.20, 0.10, 0.30, 0.10, 0.30
)

// Idle attract mode. After DefaultIdleAfter without an interaction
// sample the accumulator eases onto a slow sine drift so surfaces keep
// breathing instead of freezing at the multiplier floors.
const (
	// DefaultIdleAfter is how long without pointer, scroll or hover
	// samples before attract mode engages.
	DefaultIdleAfter = 30 * time.Second

	attractBase = 0.15
	attractAmp  = 0.10
	// attractRate is the drift oscillation in radians per second.
	attractRate = 0.25
	// attractEase is the per-tick pull of the accumulator onto the
	// drift curve.
	attractEase = 0.05
)

// Default viewport used to normalize pointer positions until the host
// reports a real size.
const (
	defaultViewportW = 1920.0
	defaultViewportH = 1080.0
)

// Orchestrator fuses signal samples into the live parameter vector.
//
// It is the single writer of the target and current vectors; everything
// else reads the param.Frame snapshot Tick returns. Methods are not
// safe for concurrent use — the engine serializes all calls on its
// frame goroutine (Deliver feeds samples through the engine inbox, not
// directly into OnSample).
type Orchestrator struct {
	logger   *slog.Logger
	emit     func(event.Payload)
	switchFn func(system string)

	profiles map[string]SectionProfile
	section  string
	system   string
	base     param.Vector

	target  param.Vector
	current param.Vector
	mult    param.Multipliers

	viewW, viewH float64

	pointerX, pointerY float64
	pointerEnergy      float64
	scrollEnergy       float64
	scrollProgress     float64
	hoverCount         int
	bass, mid, treble  float64
	audioSeen          bool
	clockFactor        float64
	clockSeen          bool

	activity     float64
	lastSampleAt time.Time
	idleAfter    time.Duration
	idlePhase    float64

	tau, rotTau time.Duration

	quality param.QualityLevel
	seq     uint64
}

// NewOrchestrator returns an orchestrator over the given profile set.
// A nil or empty map falls back to DefaultProfiles. No section is
// active until the first TransitionToSection.
func NewOrchestrator(profiles map[string]SectionProfile) *Orchestrator {
	if len(profiles) == 0 {
		profiles = DefaultProfiles()
	}
	return &Orchestrator{
		logger:    Logger(),
		profiles:  profiles,
		mult:      param.Neutral(),
		pointerX:  0.5,
		pointerY:  0.5,
		viewW:     defaultViewportW,
		viewH:     defaultViewportH,
		idleAfter: DefaultIdleAfter,
		quality:   param.QualityHigh,
		tau:       param.Tau,
		rotTau:    param.RotTau,
	}
}

// SetLogger replaces the orchestrator's logger. Nil restores the
// package-level logger.
func (o *Orchestrator) SetLogger(l *slog.Logger) {
	if l == nil {
		l = Logger()
	}
	o.logger = l
}

// SetEmitter wires lifecycle payloads (section transitions, system
// switches) to a sink. The engine points this at its event bus.
func (o *Orchestrator) SetEmitter(emit func(event.Payload)) { o.emit = emit }

// SetSwitchFunc wires the renderer-side half of a system switch. The
// engine points this at its surface registry.
func (o *Orchestrator) SetSwitchFunc(fn func(system string)) { o.switchFn = fn }

// SetSmoothing overrides the easing time constants. Non-positive values
// restore the defaults.
func (o *Orchestrator) SetSmoothing(tau, rotTau time.Duration) {
	if tau <= 0 {
		tau = param.Tau
	}
	if rotTau <= 0 {
		rotTau = param.RotTau
	}
	o.tau, o.rotTau = tau, rotTau
}

// SetViewport reports the host viewport size in pixels, used to
// normalize pointer positions. Non-positive dimensions are ignored.
func (o *Orchestrator) SetViewport(w, h float64) {
	if w > 0 && h > 0 {
		o.viewW, o.viewH = w, h
	}
}

// SetIdleAfter overrides the attract-mode onset delay. Zero disables
// attract mode entirely.
func (o *Orchestrator) SetIdleAfter(d time.Duration) { o.idleAfter = d }

// SetQuality stamps the governor's tier into subsequent frames.
func (o *Orchestrator) SetQuality(q param.QualityLevel) { o.quality = q }

// Section returns the active section id, or "" before the first
// transition.
func (o *Orchestrator) Section() string { return o.section }

// System returns the active visualization system name.
func (o *Orchestrator) System() string { return o.system }

// Multipliers returns the interaction scalars from the last tick.
func (o *Orchestrator) Multipliers() param.Multipliers { return o.mult }

// Target returns the fused target vector from the last tick.
func (o *Orchestrator) Target() param.Vector { return o.target }

// Current returns the smoothed live vector.
func (o *Orchestrator) Current() param.Vector { return o.current }

// TransitionToSection adopts the named section's profile. The target
// base is replaced atomically — continuity comes from smoothing, never
// from blending two profiles. Calling with the active section id is a
// no-op; an unknown id is logged and ignored once a section is active,
// and falls back to DefaultSection before the first transition so the
// engine always starts in a valid state.
func (o *Orchestrator) TransitionToSection(id string) {
	if id == o.section {
		return
	}
	p, ok := o.profiles[id]
	if !ok {
		if o.section != "" {
			o.logger.Warn("verve: unknown section", "section", id)
			return
		}
		o.logger.Warn("verve: unknown section, using default",
			"section", id, "default", DefaultSection)
		id = DefaultSection
		p = o.profiles[id]
	}

	prev := o.section
	o.section = id
	o.base = p.Base

	o.logger.Info("verve: section transition", "prev", prev, "next", id)
	if o.emit != nil {
		o.emit(event.SectionTransition{Prev: prev, Next: id, System: p.System})
	}
	if p.System != "" {
		o.SwitchSystem(p.System)
	}
}

// SwitchSystem requests activation of a visualization system.
// Idempotent: requesting the active system does nothing. Whether the
// name resolves to a registered system is the registry's concern; an
// unknown name is absorbed there, never here.
func (o *Orchestrator) SwitchSystem(name string) {
	if name == o.system {
		return
	}
	o.system = name
	if o.switchFn != nil {
		o.switchFn(name)
	}
}

// OnSample ingests one signal reading. Pointer, scroll and hover
// samples count as interaction and reset the idle clock; visibility,
// audio and clock samples only update their channels.
func (o *Orchestrator) OnSample(s signal.Sample) {
	switch s.Kind {
	case signal.KindPointer:
		o.pointerX = clamp01(s.X / o.viewW)
		o.pointerY = clamp01(s.Y / o.viewH)
		if s.Energy > o.pointerEnergy {
			o.pointerEnergy = s.Energy
		}
		o.bumpActivity(s.Energy, s.At)

	case signal.KindScroll:
		o.scrollProgress = clamp01(s.Value)
		if s.Energy > o.scrollEnergy {
			o.scrollEnergy = s.Energy
		}
		o.bumpActivity(s.Energy, s.At)

	case signal.KindHover:
		o.hoverCount = int(s.Value)
		o.bumpActivity(s.Energy, s.At)

	case signal.KindVisibility:
		// A section that dominates the viewport drives navigation.
		if s.Value >= signal.DominanceThreshold && s.Target != "" {
			o.TransitionToSection(s.Target)
		}

	case signal.KindAudio:
		o.bass, o.mid, o.treble = s.X, s.Y, s.Value
		o.audioSeen = true

	case signal.KindClock:
		o.clockFactor = clamp01(s.Value)
		o.clockSeen = true
	}
}

func (o *Orchestrator) bumpActivity(energy float64, at time.Time) {
	o.activity = math.Min(1, o.activity+energy*activityGain)
	if at.After(o.lastSampleAt) {
		o.lastSampleAt = at
	}
}

// Tick advances the orchestrator by one frame and returns the broadcast
// snapshot. The internal order is fixed: decay energies, recompute
// multipliers, recompute the target, clamp, smooth, snapshot.
func (o *Orchestrator) Tick(now time.Time, dt time.Duration) param.Frame {
	o.decayEnergies(now, dt)
	o.mult = o.computeMultipliers()
	o.target = o.computeTarget().Clamped()
	o.current = param.ApproachWith(o.current, o.target, dt, o.tau, o.rotTau)

	o.seq++
	return param.Frame{
		Seq:             o.seq,
		At:              now,
		Section:         o.section,
		System:          o.system,
		Current:         o.current,
		Target:          o.target,
		Multipliers:     o.mult,
		ScrollProgress:  o.scrollProgress,
		Energy:          o.activity,
		Quality:         o.quality,
		PixelRatioScale: o.quality.PixelRatioScale(),
		ParticleScale:   o.quality.ParticleScale(),
	}
}

func (o *Orchestrator) decayEnergies(now time.Time, dt time.Duration) {
	o.pointerEnergy *= pointerEnergyDecay
	o.scrollEnergy *= scrollEnergyDecay
	o.activity *= activityDecay

	if o.idleAfter > 0 && !o.lastSampleAt.IsZero() &&
		now.Sub(o.lastSampleAt) >= o.idleAfter {
		o.idlePhase += attractRate * dt.Seconds()
		drift := attractBase + attractAmp*math.Sin(o.idlePhase)
		o.activity += (drift - o.activity) * attractEase
	}
}

func (o *Orchestrator) computeMultipliers() param.Multipliers {
	m := param.Multipliers{
		MouseActivity:  param.MouseActivityMin + (param.MouseActivityMax-param.MouseActivityMin)*multOverdrive*o.pointerEnergy,
		ScrollVelocity: param.ScrollVelocityMin + (param.ScrollVelocityMax-param.ScrollVelocityMin)*multOverdrive*o.scrollEnergy,
		CardHover:      param.CardHoverMin + (param.CardHoverMax-param.CardHoverMin)*hoverFraction(o.hoverCount),
		TimeOfDay:      1,
		UserEnergy:     param.UserEnergyMin + (param.UserEnergyMax-param.UserEnergyMin)*multOverdrive*o.activity,
	}
	if o.clockSeen {
		m.TimeOfDay = param.TimeOfDayMin + (param.TimeOfDayMax-param.TimeOfDayMin)*o.clockFactor
	}
	return m.Clamped()
}

func hoverFraction(count int) float64 {
	if count <= 0 {
		return 0
	}
	f := float64(count) / signal.HoverFullCount
	if f > 1 {
		return 1
	}
	return f
}

func (o *Orchestrator) computeTarget() param.Vector {
	m := o.mult
	t := o.base

	t.Intensity *= blend(m, intensityWMouse, intensityWScroll, intensityWHover, intensityWClock, intensityWEnergy)
	t.Chaos *= blend(m, chaosWMouse, chaosWScroll, chaosWHover, chaosWClock, chaosWEnergy)
	t.Speed *= blend(m, speedWMouse, speedWScroll, speedWHover, speedWClock, speedWEnergy)
	t.Morph *= blend(m, morphWMouse, morphWScroll, morphWHover, morphWClock, morphWEnergy)

	// Hue shifts additively with horizontal pointer position.
	t.Hue += (o.pointerX - 0.5) * 2 * HueDeflection

	if o.audioSeen {
		t.GridDensity *= 1 + bassGridGain*o.bass
		t.Moire *= 1 + midMoireGain*o.mid
		t.RGBOffset *= 1 + trebleRGBGain*o.treble
	}

	// Rotation planes map the pointer offset directly so camera motion
	// is only smoothed once, by the fast rotation constant.
	dx := (o.pointerX - 0.5) * 2
	dy := (o.pointerY - 0.5) * 2
	t.RotXW = dy * gyroRange
	t.RotYW = dx * gyroRange
	t.RotZW = dx * dy * gyroRange

	return t
}

func blend(m param.Multipliers, wMouse, wScroll, wHover, wClock, wEnergy float64) float64 {
	return wMouse*m.MouseActivity +
		wScroll*m.ScrollVelocity +
		wHover*m.CardHover +
		wClock*m.TimeOfDay +
		wEnergy*m.UserEnergy
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
