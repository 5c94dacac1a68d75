// Package datasheet holds the fixed technical specification of the
// cylinder shown next to the animation.
package datasheet

// Title heads the specification panel.
const Title = "Technical Specifications"

// Entry is one label/value row.
type Entry struct {
	Label string
	Value string
}

var entries = []Entry{
	{Label: "Mechanism", Value: "Double Acting, Twin Rod"},
	{Label: "Advantage", Value: "High Non-Rotating Accuracy (±0.1°)"},
	{Label: "Fluid", Value: "Compressed Air"},
	{Label: "Operating Pressure", Value: "0.15 ~ 0.7 MPa"},
	{Label: "Piston Speed", Value: "50 ~ 500 mm/s"},
	{Label: "Application", Value: "Pick & Place, Pushing, Lifting"},
}

// Entries returns the rows in display order. The slice is a copy.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// HowItWorks explains the mechanism in one paragraph.
const HowItWorks = "This cylinder features two parallel piston rods integrated into a single body. " +
	"This design prevents rotation of the tooling plate without needing external guides. " +
	"When the Solenoid Valve activates, air pressure enters the rear port, pushing both pistons forward simultaneously."
