package putt

import "fmt"

// Boundary is the closed polygon the ball is confined inside. Edges run
// between consecutive vertices, wrapping from the last back to the first.
type Boundary struct {
	verts   []Vector
	damping float64
}

// NewBoundary copies verts and returns a boundary that damps the ball's
// speed by damping on every bounce.
func NewBoundary(verts []Vector, damping float64) (*Boundary, error) {
	if len(verts) < 3 {
		return nil, fmt.Errorf("boundary needs at least 3 vertices, got %d", len(verts))
	}
	boundary := &Boundary{
		verts:   make([]Vector, len(verts)),
		damping: damping,
	}
	copy(boundary.verts, verts)
	return boundary, nil
}

func (boundary *Boundary) Count() int {
	return len(boundary.verts)
}

func (boundary *Boundary) Vert(i int) Vector {
	return boundary.verts[i]
}

func (boundary *Boundary) Damping() float64 {
	return boundary.damping
}

// Resolve checks the ball against each edge in order and resolves the first
// one it is penetrating: push the ball out to exactly touch the edge,
// reflect its velocity about the edge normal, and damp it. Only one edge is
// resolved per call; containment relies on the tick rate, there is no
// iterative solve. Returns true if an edge collided.
func (boundary *Boundary) Resolve(ball *Ball) bool {
	for i := 0; i < len(boundary.verts); i++ {
		a := boundary.verts[i]
		b := boundary.verts[(i+1)%len(boundary.verts)]

		nearest := ball.p.ClosestPointOnSegment(a, b)
		dist := ball.p.Distance(nearest)
		if dist >= ball.radius {
			continue
		}
		if dist == 0 {
			// ball center exactly on the edge, no usable normal
			continue
		}

		normal := ball.p.Sub(nearest).Normalize()
		ball.p = nearest.Add(normal.Mult(ball.radius))
		ball.v = ball.v.Reflect(normal).Mult(boundary.damping)
		return true
	}
	return false
}
