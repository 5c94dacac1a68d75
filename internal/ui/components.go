package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/twinrod/internal/cylinder"
	"github.com/olivier-w/twinrod/internal/datasheet"
	"github.com/olivier-w/twinrod/internal/util"
)

const (
	// bodyWidth is the width of the fixed body including its border.
	bodyWidth = 22
	// rodStub is how much rod shows outside the body when fully retracted.
	rodStub = 2

	rearPortCol  = 3
	frontPortCol = 15
)

var bodyRows = [5]string{
	"╭────────────────────╮",
	"│   ◉          ◉     ╞",
	"│         ○          │",
	"│   ◉          ◉     ╞",
	"╰──●───────────●─────╯",
}

var plateRows = [5]string{"▄▄", "██", "██", "██", "▀▀"}

// cylinderScene is everything the illustration depends on.
type cylinderScene struct {
	offsetCells int
	strokeCells int
	rearLevel   float64
	frontLevel  float64
	solenoidOn  bool
}

func renderCylinder(sc cylinderScene) string {
	if sc.offsetCells < 0 {
		sc.offsetCells = 0
	}
	if sc.offsetCells > sc.strokeCells {
		sc.offsetCells = sc.strokeCells
	}
	rodLen := rodStub + sc.offsetCells
	plateCol := bodyWidth + rodLen
	tail := sc.strokeCells - sc.offsetCells

	var b strings.Builder

	b.WriteString(labelStyle.Render("Fixed Body"))
	b.WriteString(util.Spaces(plateCol - 5 - len("Fixed Body")))
	b.WriteString(labelStyle.Render("Moving Plate"))
	b.WriteString("\n")

	for i, row := range bodyRows {
		b.WriteString(bodyStyle.Render(row))
		if i == 1 || i == 3 {
			b.WriteString(rodStyle.Render(strings.Repeat("═", rodLen)))
		} else {
			b.WriteString(util.Spaces(rodLen))
		}
		b.WriteString(plateStyle.Render(plateRows[i]))
		b.WriteString(util.Spaces(tail))
		b.WriteString("\n")
	}

	rear := lipgloss.NewStyle().Foreground(portColor(sc.rearLevel)).Render("┃")
	front := lipgloss.NewStyle().Foreground(portColor(sc.frontLevel)).Render("┃")
	pad := util.Spaces(rearPortCol)
	gap := frontPortCol - rearPortCol - 1

	b.WriteString(pad + rear + labelStyle.Render(" Rear Port ") + front + labelStyle.Render(" Front Port"))
	b.WriteString("\n")
	b.WriteString(pad + rear + util.Spaces(gap) + front)
	b.WriteString("\n")
	b.WriteString(renderValve(sc.solenoidOn))

	return b.String()
}

func renderValve(on bool) string {
	sol := solenoidOffStyle
	if on {
		sol = solenoidOnStyle
	}
	return " " +
		sol.PaddingLeft(2).PaddingRight(1).Render("●") +
		valveStyle.PaddingLeft(0).Render("SOL A    5/2 SOLENOID VALVE")
}

func renderButton(c cylinder.Command, enabled bool) string {
	bg := disabledButtonColor
	if enabled {
		bg = retractButtonColor
		if c == cylinder.Extend {
			bg = extendButtonColor
		}
	}
	return buttonStyle.Background(bg).Render(strings.ToUpper(c.Label()))
}

func renderButtons(s *cylinder.State) string {
	return renderButton(cylinder.Extend, s.CanExtend()) + "   " + renderButton(cylinder.Retract, s.CanRetract())
}

func renderStatus(s *cylinder.State) string {
	return statusStyle.Render("Current Status: ") + statusValueStyle.Render(s.Status().String())
}

func renderDatasheet() string {
	entries := datasheet.Entries()

	var left, right []string
	for i, e := range entries {
		cell := sheetLabelStyle.Render(e.Label+":") + " " + e.Value
		if i%2 == 0 {
			left = append(left, cell)
		} else {
			right = append(right, cell)
		}
	}

	grid := lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"),
		"    ",
		strings.Join(right, "\n"),
	)
	return sheetStyle.Render(sheetTitleStyle.Render(datasheet.Title) + "\n\n" + grid)
}

func renderHowItWorks(width int) string {
	if width > 76 {
		width = 76
	}
	if width < 20 {
		width = 20
	}
	return noteStyle.Width(width).Render(sheetLabelStyle.Render("How it works:") + " " + datasheet.HowItWorks)
}

func indentBlock(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
