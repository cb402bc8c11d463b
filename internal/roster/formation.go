package roster

import (
	"strings"

	"github.com/matchdaycli/matchday/internal/api"
)

// Line is one horizontal row of the pitch layout.
type Line int

// Pitch rows, in fixed top-to-bottom render order.
const (
	LineForward Line = iota
	LineMidfield
	LineDefense
	LineGoalkeeper
)

// String returns the string representation of the line
func (l Line) String() string {
	switch l {
	case LineForward:
		return "forwards"
	case LineMidfield:
		return "midfield"
	case LineDefense:
		return "defense"
	case LineGoalkeeper:
		return "goalkeeper"
	default:
		return "unknown"
	}
}

// Lines is the render order of the pitch rows.
var Lines = []Line{LineForward, LineMidfield, LineDefense, LineGoalkeeper}

// Capacity is the soft per-line capacity (3/3/4/1). Layout sizing only;
// the backend owns the actual roster rules and nothing is validated here.
func (l Line) Capacity() int {
	switch l {
	case LineForward, LineMidfield:
		return 3
	case LineDefense:
		return 4
	case LineGoalkeeper:
		return 1
	default:
		return 0
	}
}

// Formation is a team's players grouped into pitch rows. Derived,
// render-only state rebuilt on every team fetch.
type Formation map[Line][]api.Player

// LineFor maps a backend position value to a pitch row. Unknown or
// missing positions default to midfield.
func LineFor(position string) Line {
	switch strings.ToUpper(strings.TrimSpace(position)) {
	case "FWD", "FW", "ATT", "FORWARD", "ST", "STRIKER":
		return LineForward
	case "DEF", "DF", "DEFENSE", "DEFENCE", "DEFENDER", "CB", "LB", "RB":
		return LineDefense
	case "GK", "GOAL", "GOALKEEPER", "KEEPER":
		return LineGoalkeeper
	default:
		return LineMidfield
	}
}

// Project groups players into pitch rows, preserving their fetch order
// within each row.
func Project(players []api.Player) Formation {
	f := Formation{}
	for _, p := range players {
		line := LineFor(p.Position)
		f[line] = append(f[line], p)
	}
	return f
}
