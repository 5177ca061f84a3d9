// Package direction defines the four cardinal directions used by focus and
// move commands to reason about where siblings sit relative to each other.
package direction

import (
	"errors"
	"fmt"
)

// Direction is one of Left, Right, Up or Down.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// ErrInvalidDirection is matched by every *ParseError.
var ErrInvalidDirection = errors.New("not a valid direction")

// ParseError reports text that does not name a direction.
type ParseError struct {
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("not a valid direction: %q", e.Text)
}

// Is lets errors.Is(err, ErrInvalidDirection) match parse failures.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDirection
}

// All lists the directions in declaration order.
var All = []Direction{Left, Right, Up, Down}

// Inverse returns the opposite direction.
//
//	Left.Inverse() // Right
func (d Direction) Inverse() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// IsForward reports whether d points towards later siblings in layout
// order (right in a horizontal split, down in a vertical one).
func (d Direction) IsForward() bool {
	return d == Right || d == Down
}

// IsHorizontal reports whether d moves along the x axis.
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// String returns the literal accepted by Parse.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Parse converts "left", "right", "up" or "down" into a Direction.
// Matching is exact: no case folding or trimming is done.
//
//	Parse("left") // Left
func Parse(text string) (Direction, error) {
	switch text {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	}
	return 0, &ParseError{Text: text}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case Left, Right, Up, Down:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("cannot marshal %s", d)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
