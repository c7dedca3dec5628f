package focus

import (
	"fmt"
	"strings"
)

// Direction is one of the four D-pad directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Vertical reports whether d is Up or Down.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// ParseDirection converts a direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Action is the navigation meaning of a key press.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionSelect
	ActionBack
)

func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	default:
		return "none"
	}
}
