package tape

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
)

// CommandType represents the type of a tape command
type CommandType string

const (
	// Windows
	CommandType_OpenWindow  CommandType = "OpenWindow"
	CommandType_CloseWindow CommandType = "CloseWindow"
	CommandType_Focus       CommandType = "Focus"
	CommandType_Move        CommandType = "Move"

	// Layout
	CommandType_Split  CommandType = "Split"
	CommandType_Resize CommandType = "Resize"

	// Workspace
	CommandType_SwitchWS CommandType = "SwitchWorkspace"
	CommandType_MoveToWS CommandType = "MoveToWorkspace"

	// Inspection
	CommandType_Print    CommandType = "Print"
	CommandType_Validate CommandType = "Validate"
)

// Command represents a parsed tape command. Only the argument field that
// belongs to the command's type is set.
type Command struct {
	Type        CommandType
	Title       string                // OpenWindow
	Direction   direction.Direction   // Focus, Move
	Orientation container.Orientation // Split
	Amount      float64               // Resize
	Workspace   int                   // SwitchWorkspace, MoveToWorkspace
	Delay       time.Duration         // Delay after this command
	Line        int                   // Source line number
	Column      int                   // Source column number
}

// String returns the command as it would be written in a .tape file
func (c *Command) String() string {
	s := string(c.Type)
	if c.Delay > 0 {
		s += "@" + c.Delay.String()
	}
	switch c.Type {
	case CommandType_OpenWindow:
		if c.Title != "" {
			s += fmt.Sprintf(" %q", c.Title)
		}
	case CommandType_Focus, CommandType_Move:
		s += " " + c.Direction.String()
	case CommandType_Split:
		s += " " + c.Orientation.String()
	case CommandType_Resize:
		s += " " + strconv.FormatFloat(c.Amount, 'g', -1, 64)
	case CommandType_SwitchWS, CommandType_MoveToWS:
		s += " " + strconv.Itoa(c.Workspace)
	}
	return s
}

// IsCommand returns true if the command type is a valid command
func (ct CommandType) IsCommand() bool {
	switch ct {
	case CommandType_OpenWindow, CommandType_CloseWindow,
		CommandType_Focus, CommandType_Move,
		CommandType_Split, CommandType_Resize,
		CommandType_SwitchWS, CommandType_MoveToWS,
		CommandType_Print, CommandType_Validate:
		return true
	}
	return false
}

// Mutates reports whether the command can change the tree.
func (ct CommandType) Mutates() bool {
	return ct.IsCommand() && ct != CommandType_Print && ct != CommandType_Validate
}
