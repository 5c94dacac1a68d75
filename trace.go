package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/olivier-w/twinrod/internal/animator"
	"github.com/olivier-w/twinrod/internal/config"
	"github.com/olivier-w/twinrod/internal/cylinder"
	"github.com/olivier-w/twinrod/internal/util"
)

// runTrace starts the cylinder at the resting position opposite to cmd,
// issues cmd and writes one line per frame until the cylinder settles.
func runTrace(ctx context.Context, cfg config.Config, cmd cylinder.Command, w io.Writer) error {
	cyl := cylinder.New(cfg.StepSize)
	restTo(&cyl, cmd.Opposite())
	cmd.Apply(&cyl)

	fmt.Fprintf(w, "%s from %s\n", cmd, cyl.Status())

	settled := make(chan struct{})
	var werr error
	sub, err := animator.Start(ctx, cfg.FrameInterval(), func(frame int) {
		if werr != nil || cyl.Settled() {
			return
		}
		cyl.Step()
		_, werr = fmt.Fprintf(w, "frame %3d  extension %s  offset %s  %s\n",
			frame,
			util.FormatPercent(cyl.Extension()),
			util.FormatOffset(cyl.Offset(cfg.MaxStrokePx)),
			cyl.Status(),
		)
		if werr != nil || cyl.Settled() {
			close(settled)
		}
	})
	if err != nil {
		return fmt.Errorf("starting animator: %w", err)
	}

	select {
	case <-settled:
	case <-ctx.Done():
	}
	sub.Release()

	if werr != nil {
		return fmt.Errorf("writing trace: %w", werr)
	}
	if err := ctx.Err(); err != nil && !cyl.Settled() {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("trace interrupted at %.0f%%", cyl.Extension())
		}
		return err
	}
	return nil
}

// restTo moves cyl to the resting position of c without tracing.
func restTo(cyl *cylinder.State, c cylinder.Command) {
	c.Apply(cyl)
	for !cyl.Settled() {
		cyl.Step()
	}
}
