package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/olivier-w/twinrod/internal/config"
	"github.com/olivier-w/twinrod/internal/cylinder"
)

func fastConfig() config.Config {
	cfg := config.Default()
	cfg.FPS = 240
	return cfg
}

func TestRunTraceExtend(t *testing.T) {
	var out bytes.Buffer
	if err := runTrace(context.Background(), fastConfig(), cylinder.Extend, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "extend from Fully Retracted" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	frames := lines[1:]
	if len(frames) != 25 {
		t.Fatalf("expected 25 frames, got %d:\n%s", len(frames), out.String())
	}
	if !strings.Contains(frames[0], "extension   4%") {
		t.Fatalf("unexpected first frame %q", frames[0])
	}
	if !strings.Contains(frames[12], "Moving...") {
		t.Fatalf("expected mid-travel frame to be moving, got %q", frames[12])
	}
	last := frames[24]
	if !strings.Contains(last, "extension 100%") || !strings.Contains(last, "120.0 px") || !strings.HasSuffix(last, "Fully Extended") {
		t.Fatalf("unexpected last frame %q", last)
	}
}

func TestRunTraceRetract(t *testing.T) {
	var out bytes.Buffer
	if err := runTrace(context.Background(), fastConfig(), cylinder.Retract, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if lines[0] != "retract from Fully Extended" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasSuffix(lines[len(lines)-1], "Fully Retracted") {
		t.Fatalf("unexpected last frame %q", lines[len(lines)-1])
	}
}

func TestRunTraceCancelled(t *testing.T) {
	cfg := config.Default()
	cfg.FPS = 1

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	if err := runTrace(ctx, cfg, cylinder.Extend, &out); err == nil {
		t.Fatal("expected error when the context ends before settling")
	}
}
