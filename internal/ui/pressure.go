package ui

import (
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	exhaustColor  = mustHex("#3498db")
	pressureColor = mustHex("#e74c3c")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// portGauges eases each port's tubing colour between exhaust and pressure.
// Levels run from 0 (exhausting) to 1 (pressurized).
type portGauges struct {
	spring   harmonica.Spring
	rear     float64
	rearVel  float64
	front    float64
	frontVel float64
}

func newPortGauges(fps int, rearHigh bool) portGauges {
	g := portGauges{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
	g.rear, g.front = levels(rearHigh)
	return g
}

func levels(rearHigh bool) (rear, front float64) {
	if rearHigh {
		return 1, 0
	}
	return 0, 1
}

func (g *portGauges) step(rearHigh bool) {
	rear, front := levels(rearHigh)
	g.rear, g.rearVel = g.spring.Update(g.rear, g.rearVel, rear)
	g.front, g.frontVel = g.spring.Update(g.front, g.frontVel, front)
}

func portColor(level float64) lipgloss.Color {
	if level < 0 {
		level = 0
	}
	if level > 1 {
		level = 1
	}
	return lipgloss.Color(exhaustColor.BlendLab(pressureColor, level).Clamped().Hex())
}
