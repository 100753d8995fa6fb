package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/render"
	"github.com/gogpu/verve/signal"
)

// Monitor styles.
var (
	monTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	monLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(16)
	monValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	monBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	monEventStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	monDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// newMonitorCmd runs a live terminal view over a headless engine: the
// parameter plane as bars, the multiplier bands, and the last few
// lifecycle events. Arrow keys inject synthetic pointer bursts so the
// fusion is visible without a window.
func newMonitorCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "monitor",
		Short: "Watch a headless engine live in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(*configPath, verve.WithBackend("soft"))
			if err != nil {
				return err
			}
			defer eng.Close()

			if _, _, err := eng.CreateSurface("monitor", verve.SurfaceOptions{
				Canvas:   render.CanvasOptions{Width: 640, Height: 360},
				Priority: 10,
				Cost:     1,
			}); err != nil {
				return err
			}

			events, err := eng.Bus().Subscribe("monitor", 64)
			if err != nil {
				return err
			}

			seedClock(eng)
			eng.TransitionToSection("home")

			m := monitorModel{eng: eng, events: events}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type monitorTick time.Time

type monitorModel struct {
	eng    *verve.Engine
	events <-chan event.Event
	log    []string
	frame  param.Frame
}

func (m monitorModel) Init() tea.Cmd {
	return monitorTickCmd()
}

func monitorTickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return monitorTick(t)
	})
}

func (m monitorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1", "2", "3", "4", "5", "6":
			sections := []string{"home", "technology", "portfolio", "research", "about", "contact"}
			m.eng.TransitionToSection(sections[int(msg.String()[0]-'1')])
		case "up", "down", "left", "right":
			// Synthetic pointer burst so the fusion is visible.
			m.eng.Deliver(signal.Sample{
				Kind: signal.KindPointer, X: 960, Y: 540,
				Value: signal.PointerFullSpeed, Energy: 1, At: time.Now(),
			})
		}
	case monitorTick:
		m.eng.Step(time.Time(msg))
		m.frame = m.eng.Snapshot()
		for {
			select {
			case e := <-m.events:
				line := fmt.Sprintf("%s %s", e.At.Format("15:04:05"), e.Kind)
				m.log = append(m.log, line)
				if len(m.log) > 6 {
					m.log = m.log[len(m.log)-6:]
				}
			default:
				return m, monitorTickCmd()
			}
		}
	}
	return m, nil
}

func (m monitorModel) View() string {
	f := m.frame
	var b strings.Builder

	b.WriteString(monTitleStyle.Render("verve monitor"))
	b.WriteString(monDimStyle.Render("   q quit · 1-6 sections · arrows pointer burst"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s %s\n", monLabelStyle.Render("section"),
		monValueStyle.Render(fmt.Sprintf("%s (%s)", f.Section, f.System)))
	fmt.Fprintf(&b, "%s %s\n\n", monLabelStyle.Render("quality"),
		monValueStyle.Render(f.Quality.String()))

	bars := []struct {
		name   string
		v, max float64
	}{
		{"intensity", f.Current.Intensity, param.IntensityMax},
		{"chaos", f.Current.Chaos, param.ChaosMax},
		{"speed", f.Current.Speed, param.SpeedMax},
		{"hue", f.Current.Hue, param.HueMax},
		{"grid", f.Current.GridDensity, param.GridDensityMax},
		{"energy", f.Energy, 1},
	}
	for _, bar := range bars {
		fmt.Fprintf(&b, "%s %s %s\n",
			monLabelStyle.Render(bar.name),
			monBarStyle.Render(gauge(bar.v, bar.max, 30)),
			monValueStyle.Render(fmt.Sprintf("%6.2f", bar.v)))
	}

	b.WriteString("\n")
	mult := f.Multipliers
	fmt.Fprintf(&b, "%s %s\n", monLabelStyle.Render("multipliers"),
		monValueStyle.Render(fmt.Sprintf("mouse %.2f  scroll %.2f  hover %.2f  clock %.2f  user %.2f",
			mult.MouseActivity, mult.ScrollVelocity, mult.CardHover, mult.TimeOfDay, mult.UserEnergy)))

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, line := range m.log {
			b.WriteString(monEventStyle.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// gauge renders a fixed-width bar for v in [0, max].
func gauge(v, max float64, width int) string {
	if max <= 0 {
		max = 1
	}
	fill := int(v / max * float64(width))
	if fill < 0 {
		fill = 0
	}
	if fill > width {
		fill = width
	}
	return strings.Repeat("█", fill) + strings.Repeat("░", width-fill)
}
