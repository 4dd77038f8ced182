package putt

import "fmt"

// Hole is a goal region on a course.
type Hole struct {
	center Vector
	radius float64
}

func NewHole(center Vector, radius float64) (*Hole, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("hole radius must be a positive finite number, got %v", radius)
	}
	return &Hole{center: center, radius: radius}, nil
}

func (hole *Hole) Center() Vector {
	return hole.center
}

func (hole *Hole) Radius() float64 {
	return hole.radius
}

// Contains reports whether the ball's center is inside the hole.
func (hole *Hole) Contains(ball *Ball) bool {
	return ball.p.Distance(hole.center) < hole.radius
}
