// Package tui is the interactive cockpit: a bubbletea program that feeds
// key presses into the flight pipeline and renders the telemetry snapshot
// as a terminal HUD.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/avens-io/floatplane/internal/config"
	"github.com/avens-io/floatplane/internal/flight"
	"github.com/avens-io/floatplane/internal/world"
)

// keyHold is how long a key press counts as held. Terminals deliver
// repeats rather than key-up events, so a held key keeps refreshing its
// expiry while repeat events arrive.
const keyHold = 200 * time.Millisecond

const historyLen = 120

var keyMap = map[string]flight.Control{
	"up":   flight.ThrottleUp,
	"down": flight.ThrottleDown,
	"a":    flight.RollLeft,
	"d":    flight.RollRight,
	"w":    flight.PitchUp,
	"s":    flight.PitchDown,
	"q":    flight.YawLeft,
	"e":    flight.YawRight,
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type Cockpit struct {
	cfg   *config.Config
	plane *flight.Plane
	world *world.World

	held    map[flight.Control]time.Time
	paused  bool
	simTime float64

	tele    flight.Telemetry
	altHist []float64
	spdHist []float64

	width  int
	height int
}

// NewCockpit assembles a fresh world and plane from the config.
func NewCockpit(cfg *config.Config) (*Cockpit, error) {
	c := &Cockpit{
		cfg:     cfg,
		held:    make(map[flight.Control]time.Time),
		altHist: make([]float64, 0, historyLen),
		spdHist: make([]float64, 0, historyLen),
		width:   80,
		height:  24,
	}
	if err := c.reset(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cockpit) reset() error {
	spawn := c.cfg.Spawn
	body := world.SpawnBody(
		mgl64.Vec3{spawn.X, spawn.Y, spawn.Z},
		mgl64.DegToRad(spawn.PitchDeg),
		mgl64.DegToRad(spawn.HeadingDeg),
	)
	w, err := world.New(c.cfg.WaterSize, body)
	if err != nil {
		return err
	}
	plane := flight.NewPlane(body, c.cfg.Options())
	if spawn.Speed > 0 {
		plane.State.Speed = spawn.Speed
		plane.State.Momentum = body.Forward().Mul(spawn.Speed)
	}

	c.plane = plane
	c.world = w
	c.simTime = 0
	c.altHist = c.altHist[:0]
	c.spdHist = c.spdHist[:0]
	c.tele = flight.Snapshot(plane.State, body, w.OnWater(), 0)
	return nil
}

// Run starts the cockpit program.
func Run(cfg *config.Config) error {
	c, err := NewCockpit(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(c, tea.WithAltScreen()).Run()
	return err
}

func (c *Cockpit) Init() tea.Cmd { return tick() }

func (c *Cockpit) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return c, tea.Quit
		case "p":
			c.paused = !c.paused
			return c, nil
		case "r":
			if err := c.reset(); err != nil {
				return c, tea.Quit
			}
			return c, nil
		}
		if ctrl, ok := keyMap[msg.String()]; ok {
			c.held[ctrl] = time.Now().Add(keyHold)
		}
		return c, nil

	case tea.WindowSizeMsg:
		c.width = msg.Width
		c.height = msg.Height
		return c, nil

	case tickMsg:
		if !c.paused {
			c.step()
		}
		return c, tick()
	}
	return c, nil
}

func (c *Cockpit) step() {
	dt := c.cfg.Dt

	var held flight.ControlSet
	now := time.Now()
	for ctrl, until := range c.held {
		if now.Before(until) {
			held.Press(ctrl)
		} else {
			delete(c.held, ctrl)
		}
	}

	onWater := c.world.OnWater()
	c.plane.Step(held, onWater, dt)
	c.world.Step(dt)
	c.simTime += dt

	c.tele = flight.Snapshot(c.plane.State, c.plane.Body, c.world.OnWater(), c.simTime)

	c.altHist = append(c.altHist, c.tele.Altitude)
	if len(c.altHist) > historyLen {
		c.altHist = c.altHist[1:]
	}
	c.spdHist = append(c.spdHist, c.tele.Speed)
	if len(c.spdHist) > historyLen {
		c.spdHist = c.spdHist[1:]
	}
}

func (c *Cockpit) View() string {
	t := c.tele

	status := green.Render(t.Status())
	if t.OnWater {
		status = cyan.Render(t.Status())
	}
	ready := red.Render("NO")
	if t.TakeoffReady {
		ready = green.Render("YES")
	}

	flightData := fmt.Sprintf(
		"%s\nSpeed    %s %s\nAltitude %s m\nStatus   %s\nTakeoff  %s",
		titleStyle.Render("FLIGHT DATA"),
		white.Render(fmt.Sprintf("%5.1f", t.Speed)),
		progressBar(t.Speed/flight.MaxSpeed, 14),
		white.Render(fmt.Sprintf("%6.1f", t.Altitude)),
		status,
		ready,
	)

	attitude := fmt.Sprintf(
		"%s\nPitch %s°\nRoll  %s°\nYaw   %s°\nBank  %s°\nBounce %s",
		titleStyle.Render("ATTITUDE"),
		white.Render(fmt.Sprintf("%6.1f", t.PitchDeg)),
		white.Render(fmt.Sprintf("%6.1f", t.RollDeg)),
		white.Render(fmt.Sprintf("%6.1f", t.YawDeg)),
		magenta.Render(fmt.Sprintf("%6.1f", t.BankDeg)),
		yellow.Render(fmt.Sprintf("%5.2f", t.ImpactBounce)),
	)

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		panel.Render(flightData),
		panel.Render(attitude),
	)

	graphs := fmt.Sprintf("%s %s\n%s %s",
		dim.Render("alt"), sparkline(c.altHist, 48),
		dim.Render("spd"), sparkline(c.spdHist, 48),
	)

	help := dim.Render("↑/↓ throttle  w/s pitch  a/d roll  q/e yaw  p pause  r reset  esc quit")
	state := ""
	if c.paused {
		state = yellow.Render("  PAUSED")
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("floatplane") +
		dim.Render(fmt.Sprintf("  t=%.1fs", c.simTime)) + state + "\n")
	sb.WriteString(panels + "\n")
	sb.WriteString(graphs + "\n\n")
	sb.WriteString(help)
	return sb.String()
}
