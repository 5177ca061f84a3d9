package tape

import (
	"github.com/Gaurav-Gosain/tuios-layout/internal/config"
	"github.com/Gaurav-Gosain/tuios-layout/internal/container"
	"github.com/Gaurav-Gosain/tuios-layout/internal/direction"
)

// ResizeStep is the amount grow and shrink actions resize by.
const ResizeStep = 0.05

// CommandForAction converts an interactive player action into the tape
// command it performs. ok is false for actions that only drive the player.
func CommandForAction(action string) (cmd Command, ok bool) {
	switch action {
	case config.ActionOpenWindow:
		return Command{Type: CommandType_OpenWindow}, true
	case config.ActionCloseWindow:
		return Command{Type: CommandType_CloseWindow}, true

	case config.ActionFocusLeft:
		return Command{Type: CommandType_Focus, Direction: direction.Left}, true
	case config.ActionFocusRight:
		return Command{Type: CommandType_Focus, Direction: direction.Right}, true
	case config.ActionFocusUp:
		return Command{Type: CommandType_Focus, Direction: direction.Up}, true
	case config.ActionFocusDown:
		return Command{Type: CommandType_Focus, Direction: direction.Down}, true

	case config.ActionMoveLeft:
		return Command{Type: CommandType_Move, Direction: direction.Left}, true
	case config.ActionMoveRight:
		return Command{Type: CommandType_Move, Direction: direction.Right}, true
	case config.ActionMoveUp:
		return Command{Type: CommandType_Move, Direction: direction.Up}, true
	case config.ActionMoveDown:
		return Command{Type: CommandType_Move, Direction: direction.Down}, true

	case config.ActionSplitHorizontal:
		return Command{Type: CommandType_Split, Orientation: container.Horizontal}, true
	case config.ActionSplitVertical:
		return Command{Type: CommandType_Split, Orientation: container.Vertical}, true

	case config.ActionGrow:
		return Command{Type: CommandType_Resize, Amount: ResizeStep}, true
	case config.ActionShrink:
		return Command{Type: CommandType_Resize, Amount: -ResizeStep}, true
	}
	return Command{}, false
}
