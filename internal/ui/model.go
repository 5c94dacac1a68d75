package ui

import (
	"fmt"
	"log"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/twinrod/internal/config"
	"github.com/olivier-w/twinrod/internal/cylinder"
	"github.com/olivier-w/twinrod/internal/util"
)

// Model is the Bubbletea model for the twinrod TUI.
type Model struct {
	cyl    cylinder.State
	cfg    config.Config
	gauges portGauges
	keys   keyMap
	help   help.Model
	stroke progress.Model
	width  int

	active   bool // frame subscription held
	frameSeq int  // generation of the current subscription
	quitting bool
}

// New creates a retracted cylinder model tuned by cfg.
func New(cfg config.Config) Model {
	cyl := cylinder.New(cfg.StepSize)

	keys := newKeyMap()
	keys.syncButtons(cyl.Extended())

	stroke := progress.New(
		progress.WithScaledGradient("#95a5a6", "#2ecc71"),
		progress.WithoutPercentage(),
		progress.WithWidth(bodyWidth+rodStub+cfg.StrokeCells()),
	)

	return Model{
		cyl:      cyl,
		cfg:      cfg,
		gauges:   newPortGauges(cfg.FPS, cyl.PressurizedPort() == cylinder.RearPort),
		keys:     keys,
		help:     help.New(),
		stroke:   stroke,
		active:   true,
		frameSeq: 1,
	}
}

func (m Model) Init() tea.Cmd {
	log.Printf("frames: acquired seq=%d interval=%v", m.frameSeq, m.cfg.FrameInterval())
	return tea.Batch(
		frameCmd(m.frameSeq, m.cfg.FrameInterval()),
		tea.SetWindowTitle(windowTitle(m.cyl.Extended())),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if !m.active || msg.seq != m.frameSeq {
			return m, nil
		}
		wasSettled := m.cyl.Settled()
		m.cyl.Step()
		m.gauges.step(m.cyl.PressurizedPort() == cylinder.RearPort)
		if !wasSettled && m.cyl.Settled() {
			log.Printf("cylinder: %s", m.cyl.Status())
		}
		return m, frameCmd(m.frameSeq, m.cfg.FrameInterval())

	case tea.BlurMsg:
		m.deactivate("focus lost")
		return m, nil

	case tea.FocusMsg:
		return m, m.activate()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case isQuit(m.keys, msg):
		m.quitting = true
		m.deactivate("quit")
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, m.keys.Extend):
		return m.issue(cylinder.Extend)
	case key.Matches(msg, m.keys.Retract):
		return m.issue(cylinder.Retract)
	case key.Matches(msg, m.keys.Toggle):
		if m.cyl.Extended() {
			return m.issue(cylinder.Retract)
		}
		return m.issue(cylinder.Extend)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) issue(c cylinder.Command) (Model, tea.Cmd) {
	c.Apply(&m.cyl)
	m.keys.syncButtons(m.cyl.Extended())
	log.Printf("command: %s at %.0f%%", c, m.cyl.Extension())
	return m, tea.SetWindowTitle(windowTitle(m.cyl.Extended()))
}

// activate acquires a fresh frame subscription. Frames still in flight from
// an older generation are ignored.
func (m *Model) activate() tea.Cmd {
	if m.active || m.quitting {
		return nil
	}
	m.active = true
	m.frameSeq++
	log.Printf("frames: acquired seq=%d", m.frameSeq)
	return frameCmd(m.frameSeq, m.cfg.FrameInterval())
}

// deactivate releases the frame subscription.
func (m *Model) deactivate(reason string) {
	if !m.active {
		return
	}
	m.active = false
	m.frameSeq++
	log.Printf("frames: released (%s)", reason)
}

func (m Model) offsetCells() int {
	if m.cfg.PxPerCell <= 0 {
		return 0
	}
	return int(math.Round(m.cyl.Offset(m.cfg.MaxStrokePx) / m.cfg.PxPerCell))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w := m.width
	if w < 40 {
		w = 80
	}

	scene := renderCylinder(cylinderScene{
		offsetCells: m.offsetCells(),
		strokeCells: m.cfg.StrokeCells(),
		rearLevel:   m.gauges.rear,
		frontLevel:  m.gauges.front,
		solenoidOn:  m.cyl.SolenoidEnergized(),
	})

	gauge := fmt.Sprintf("%s  %s  %s",
		m.stroke.ViewAs(m.cyl.Extension()/100),
		statusStyle.Render(util.FormatPercent(m.cyl.Extension())),
		statusStyle.Render(util.FormatOffset(m.cyl.Offset(m.cfg.MaxStrokePx))),
	)

	lines := "\n"
	lines += "  " + titleStyle.Render("Dual Rod Pneumatic Cylinder") + "\n"
	lines += "  " + subtitleStyle.Render("Series CXS / TN Style • Non-Rotating Double Piston") + "\n"
	lines += "\n"
	lines += indentBlock(scene, "  ") + "\n"
	lines += "\n"
	lines += "  " + gauge + "\n"
	lines += "\n"
	lines += "  " + renderButtons(&m.cyl) + "\n"
	lines += "\n"
	lines += "  " + renderStatus(&m.cyl) + "\n"
	lines += "\n"
	lines += indentBlock(renderDatasheet(), "  ") + "\n"
	lines += "\n"
	lines += indentBlock(renderHowItWorks(w-4), "  ") + "\n"
	lines += "\n"
	lines += "  " + helpStyle.Render(m.help.View(m.keys)) + "\n"

	return lines
}

func windowTitle(extended bool) string {
	if extended {
		return "➜ extended — twinrod"
	}
	return "⬅ retracted — twinrod"
}
