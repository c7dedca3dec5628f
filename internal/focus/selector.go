package focus

import "math"

const (
	// DefaultEpsilon is the minimum offset along the travel axis for a
	// candidate to count as being in that direction. It absorbs jitter
	// between elements that sit on the same visual row or column.
	DefaultEpsilon = 10.0
	// DefaultLaneWeight multiplies the perpendicular offset of a candidate.
	DefaultLaneWeight = 2.0
)

// Selector picks the nearest element in a direction.
//
// For a move up the candidate must satisfy dy < -Epsilon, and its score is
// |dy| + |dx|*LaneWeight; the other directions are symmetric. The lowest
// score wins and ties go to the candidate listed first. There is no wrap
// around: when nothing qualifies the move saturates.
type Selector struct {
	Epsilon    float64
	LaneWeight float64
}

// DefaultSelector returns a Selector with DefaultEpsilon and DefaultLaneWeight.
func DefaultSelector() Selector {
	return Selector{Epsilon: DefaultEpsilon, LaneWeight: DefaultLaneWeight}
}

// Candidate is a potential focus target and its current center point.
type Candidate struct {
	ID     string
	Center Point
}

// Score returns the cost of moving from one center to another in dir, and
// false when the target does not lie in that direction.
func (s Selector) Score(from, to Point, dir Direction) (float64, bool) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	var primary, perpendicular float64
	switch dir {
	case Up:
		if dy >= -s.Epsilon {
			return 0, false
		}
		primary, perpendicular = math.Abs(dy), math.Abs(dx)
	case Down:
		if dy <= s.Epsilon {
			return 0, false
		}
		primary, perpendicular = math.Abs(dy), math.Abs(dx)
	case Left:
		if dx >= -s.Epsilon {
			return 0, false
		}
		primary, perpendicular = math.Abs(dx), math.Abs(dy)
	case Right:
		if dx <= s.Epsilon {
			return 0, false
		}
		primary, perpendicular = math.Abs(dx), math.Abs(dy)
	default:
		return 0, false
	}
	return primary + perpendicular*s.LaneWeight, true
}

// Best returns the id of the lowest scoring candidate.
func (s Selector) Best(from Point, dir Direction, candidates []Candidate) (string, bool) {
	bestID := ""
	bestScore := math.Inf(1)
	for _, c := range candidates {
		score, ok := s.Score(from, c.Center, dir)
		if !ok {
			continue
		}
		if score < bestScore {
			bestID, bestScore = c.ID, score
		}
	}
	return bestID, bestID != ""
}
