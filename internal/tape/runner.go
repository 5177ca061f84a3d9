package tape

import (
	"context"
	"fmt"
	"io"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/logging"
	"github.com/Gaurav-Gosain/tuios-layout/internal/render"
	"github.com/Gaurav-Gosain/tuios-layout/internal/wm"
)

var logger = logging.New("tape")

// ExecError reports a command that failed while running a script.
type ExecError struct {
	Line    int
	Command string
	Err     error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Command, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Execute applies cmd to s. Print writes the tree to out.
func Execute(s *wm.State, cmd *Command, out io.Writer) error {
	var err error
	switch cmd.Type {
	case CommandType_OpenWindow:
		title := cmd.Title
		if title == "" {
			title = fmt.Sprintf("window %d", len(container.Windows(s.Root()))+1)
		}
		_, err = s.OpenWindow(title)
	case CommandType_CloseWindow:
		err = s.CloseWindow()
	case CommandType_Focus:
		err = s.Focus(cmd.Direction)
	case CommandType_Move:
		err = s.Move(cmd.Direction)
	case CommandType_Split:
		err = s.SetSplit(cmd.Orientation)
	case CommandType_Resize:
		err = s.Resize(cmd.Amount)
	case CommandType_SwitchWS:
		err = s.SwitchWorkspace(cmd.Workspace)
	case CommandType_MoveToWS:
		err = s.MoveToWorkspace(cmd.Workspace)
	case CommandType_Print:
		_, err = lipgloss.Fprintln(out, render.Tree(s.Root(), s.FocusedWindow()))
	case CommandType_Validate:
		err = container.Validate(s.Root())
	default:
		err = fmt.Errorf("unknown command %q", cmd.Type)
	}
	if err != nil {
		return &ExecError{Line: cmd.Line, Command: cmd.String(), Err: err}
	}
	return nil
}

// Runner executes a whole script without a UI
type Runner struct {
	commands []Command
	out      io.Writer
	verbose  bool
	delays   bool
}

// NewRunner creates a runner that writes Print output to out
func NewRunner(commands []Command, out io.Writer) *Runner {
	return &Runner{commands: commands, out: out}
}

// SetVerbose logs every command before it runs
func (r *Runner) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// SetDelays makes the runner honour @<duration> modifiers
func (r *Runner) SetDelays(delays bool) {
	r.delays = delays
}

// Run executes the commands in order against s and stops at the first
// failure.
func (r *Runner) Run(ctx context.Context, s *wm.State) error {
	start := time.Now()
	for i := range r.commands {
		cmd := &r.commands[i]
		if err := ctx.Err(); err != nil {
			return err
		}

		if r.verbose {
			logger.Info("executing", "step", fmt.Sprintf("%d/%d", i+1, len(r.commands)), "line", cmd.Line, "command", cmd.String())
		}
		if err := Execute(s, cmd, r.out); err != nil {
			return err
		}

		if r.delays && cmd.Delay > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cmd.Delay):
			}
		}
	}

	logger.Debug("script finished", "commands", len(r.commands), "elapsed", time.Since(start))
	return nil
}
