package cylinder

// Status classifies the displayed extension.
type Status uint8

const (
	FullyRetracted Status = iota
	FullyExtended
	Moving
)

// String returns the status text shown to the operator.
func (s Status) String() string {
	switch s {
	case FullyRetracted:
		return "Fully Retracted"
	case FullyExtended:
		return "Fully Extended"
	default:
		return "Moving..."
	}
}

// Port is one of the two air ports on the cylinder body.
type Port uint8

const (
	FrontPort Port = iota
	RearPort
)

func (p Port) String() string {
	switch p {
	case RearPort:
		return "rear port"
	default:
		return "front port"
	}
}

// Status classifies the displayed extension.
func (s *State) Status() Status {
	switch s.extension {
	case minExtension:
		return FullyRetracted
	case maxExtension:
		return FullyExtended
	default:
		return Moving
	}
}

// Offset maps the displayed extension onto a stroke of maxStrokePx pixels.
func (s *State) Offset(maxStrokePx float64) float64 {
	return s.extension / maxExtension * maxStrokePx
}

// PressurizedPort is the port the valve currently feeds. Extending pushes
// air into the rear port; retracting feeds the front port.
func (s *State) PressurizedPort() Port {
	if s.extended {
		return RearPort
	}
	return FrontPort
}

// SolenoidEnergized reports whether SOL A on the 5/2 valve is lit.
func (s *State) SolenoidEnergized() bool { return s.extended }
