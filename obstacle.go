package putt

import (
	"fmt"
	"math"
)

const (
	// Squared travel distance below which the sweep degenerates to a static
	// overlap test.
	sweepEpsilon = 1e-8

	// The resolved ball is placed slightly beyond the combined radius so
	// floating-point error cannot re-trigger the same collision next tick.
	skin = 1.0001
)

// Obstacle is anything placed on a course the ball can run into. Collide
// resolves the ball against the obstacle for one tick, mutating the ball in
// place.
type Obstacle interface {
	Collide(ball *Ball, dt float64)
}

// ObstacleDef describes one obstacle in a course description. Type selects
// the variant: "circle" uses Pos, Radius and Damping; "polygon" uses Verts.
type ObstacleDef struct {
	Type    string
	Pos     Vector
	Radius  float64
	Damping float64
	Verts   []Vector
}

// NewObstacle builds the obstacle variant named by def.Type.
func NewObstacle(def ObstacleDef) (Obstacle, error) {
	switch def.Type {
	case "circle":
		return NewCircleObstacle(def.Pos, def.Radius, def.Damping)
	case "polygon":
		return NewPolygonObstacle(def.Verts)
	default:
		return nil, fmt.Errorf("unknown obstacle type %q", def.Type)
	}
}

// CircleObstacle is a fixed circle the ball bounces off of.
type CircleObstacle struct {
	center  Vector
	radius  float64
	damping float64
}

func NewCircleObstacle(center Vector, radius, damping float64) (*CircleObstacle, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("obstacle radius must be a positive finite number, got %v", radius)
	}
	return &CircleObstacle{
		center:  center,
		radius:  radius,
		damping: damping,
	}, nil
}

func (circle *CircleObstacle) Center() Vector {
	return circle.center
}

func (circle *CircleObstacle) Radius() float64 {
	return circle.radius
}

func (circle *CircleObstacle) Damping() float64 {
	return circle.damping
}

// Collide sweeps the ball's travel this tick against the circle and resolves
// the earliest contact. The whole segment from the previous position to the
// current one is tested so a fast ball cannot tunnel through within a single
// tick.
func (circle *CircleObstacle) Collide(ball *Ball, dt float64) {
	start := ball.prevP
	end := ball.p
	d := end.Sub(start)

	if d.LengthSq() < sweepEpsilon {
		circle.collideResting(ball)
		return
	}

	// |start + d*t - center|² = r², a quadratic in t.
	f := start.Sub(circle.center)
	r := circle.radius + ball.radius

	a := d.Dot(d)
	b := 2 * f.Dot(d)
	c := f.Dot(f) - r*r

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return
	}

	discriminant = math.Sqrt(discriminant)
	t1 := (-b - discriminant) / (2 * a)
	t2 := (-b + discriminant) / (2 * a)

	// Earliest time of impact within this tick's travel.
	t := -1.0
	if 0 <= t1 && t1 <= 1 {
		t = t1
	} else if 0 <= t2 && t2 <= 1 {
		t = t2
	}
	if t < 0 {
		return
	}

	point := start.Add(d.Mult(t))
	normal := point.Sub(circle.center).Normalize()
	ball.p = circle.center.Add(normal.Mult(r * skin))
	ball.v = ball.v.Reflect(normal).Mult(circle.damping)
}

// collideResting handles a ball that barely moved this tick with a static
// overlap test.
func (circle *CircleObstacle) collideResting(ball *Ball) {
	r := circle.radius + ball.radius
	delta := ball.p.Sub(circle.center)
	dist := delta.Length()
	if dist >= r || dist == 0 {
		return
	}
	normal := delta.Mult(1 / dist)
	ball.p = circle.center.Add(normal.Mult(r))
	ball.v = ball.v.Reflect(normal).Mult(circle.damping)
}

// PolygonObstacle is a fixed polygon drawn on a course. It does not collide:
// the ball passes straight through it.
type PolygonObstacle struct {
	verts []Vector
}

func NewPolygonObstacle(verts []Vector) (*PolygonObstacle, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("polygon obstacle needs at least 3 vertices, got %d", len(verts))
	}
	poly := &PolygonObstacle{verts: make([]Vector, len(verts))}
	copy(poly.verts, verts)
	return poly, nil
}

func (poly *PolygonObstacle) Count() int {
	return len(poly.verts)
}

func (poly *PolygonObstacle) Vert(i int) Vector {
	return poly.verts[i]
}

// Collide is a no-op. Polygon obstacles are decoration only.
func (poly *PolygonObstacle) Collide(ball *Ball, dt float64) {}
