package cylinder

import "testing"

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		extension float64
		want      string
	}{
		{0, "Fully Retracted"},
		{100, "Fully Extended"},
		{0.5, "Moving..."},
		{4, "Moving..."},
		{96, "Moving..."},
		{99.99, "Moving..."},
	}
	for _, tt := range tests {
		s := State{extension: tt.extension}
		if got := s.Status().String(); got != tt.want {
			t.Errorf("extension %v: expected %q, got %q", tt.extension, tt.want, got)
		}
	}
}

func TestOffset(t *testing.T) {
	s := State{extension: 50}
	if got := s.Offset(DefaultMaxStrokePx); got != 60 {
		t.Fatalf("expected 60px, got %v", got)
	}
	s.extension = 100
	if got := s.Offset(DefaultMaxStrokePx); got != 120 {
		t.Fatalf("expected 120px, got %v", got)
	}
}

func TestPortsFollowCommandNotPosition(t *testing.T) {
	s := State{extension: 40}
	if s.PressurizedPort() != FrontPort || s.SolenoidEnergized() {
		t.Fatal("retract command should feed the front port with SOL A off")
	}
	s.CommandExtend()
	if s.PressurizedPort() != RearPort || !s.SolenoidEnergized() {
		t.Fatal("extend command should feed the rear port with SOL A on")
	}
	if s.Extension() != 40 {
		t.Fatalf("expected extension unchanged, got %v", s.Extension())
	}
}

func TestParseCommand(t *testing.T) {
	c, err := ParseCommand(" Extend ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Extend {
		t.Fatalf("expected extend, got %v", c)
	}
	if _, err := ParseCommand("jiggle"); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestCommandApplyAndOpposite(t *testing.T) {
	s := New(DefaultStep)
	Extend.Apply(&s)
	if !s.Extended() {
		t.Fatal("expected extend to apply")
	}
	Extend.Opposite().Apply(&s)
	if s.Extended() {
		t.Fatal("expected retract to apply")
	}
	if Retract.String() != "retract" || Extend.Label() != "Extend ➜" {
		t.Fatal("unexpected command names")
	}
}
