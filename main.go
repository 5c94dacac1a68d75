package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/olivier-w/twinrod/internal/config"
	"github.com/olivier-w/twinrod/internal/cylinder"
	"github.com/olivier-w/twinrod/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "YAML config file.")
	trace := flag.String("trace", "", "Print the frames of one command (extend or retract) instead of starting the UI.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *trace != "" {
		cmd, err := cylinder.ParseCommand(*trace)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = runTrace(ctx, cfg, cmd, os.Stdout)
		stop()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.DebugLog != "" {
		f, err := tea.LogToFile(cfg.DebugLog, "twinrod")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	program := tea.NewProgram(ui.New(cfg), tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
