package main

import (
	"context"
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"golang.org/x/term"

	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/layout"
	"github.com/Gaurav-Gosain/tuios-layout/internal/render"
	"github.com/Gaurav-Gosain/tuios-layout/internal/tape"
	"github.com/Gaurav-Gosain/tuios-layout/internal/wm"
)

type runOptions struct {
	verbose bool
	delays  bool
	layout  bool
}

// Fallback monitor size when stdout is not a terminal.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

func runScript(ctx context.Context, file string, opts runOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	commands, err := tape.ReadFile(file)
	if err != nil {
		return err
	}

	state, err := wm.New(wm.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}

	runner := tape.NewRunner(commands, os.Stdout)
	runner.SetVerbose(opts.verbose)
	runner.SetDelays(opts.delays)
	runErr := runner.Run(ctx, state)

	lipgloss.Println(render.Tree(state.Root(), state.FocusedWindow()))
	if opts.layout {
		printLayout(state, cfg)
	}
	if runErr != nil {
		return fmt.Errorf("%s: %w", file, runErr)
	}
	return nil
}

// printLayout prints the rectangles of the current workspace's windows on
// a monitor the size of the terminal.
func printLayout(state *wm.State, cfg *config.Config) {
	monitor := layout.Rect{Width: defaultWidth, Height: defaultHeight}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		monitor.Width, monitor.Height = w, h
	}

	gaps := layout.Gaps{Inner: cfg.Layout.InnerGap, Outer: cfg.Layout.OuterGap}
	placements := layout.Compute(state.CurrentWorkspace(), monitor, gaps)
	if len(placements) == 0 {
		fmt.Printf("Workspace %s is empty\n", state.CurrentWorkspace().Name())
		return
	}

	fmt.Println()
	fmt.Printf("Workspace %s on %s\n", state.CurrentWorkspace().Name(), monitor)
	lipgloss.Println(render.Placements(placements, state.FocusedWindow()))
}

func validateScript(file string) error {
	commands, err := tape.ReadFile(file)
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		return fmt.Errorf("%s: no commands found in script", file)
	}
	fmt.Printf("%s: %d commands OK\n", file, len(commands))
	return nil
}
