package putt

import (
	"fmt"
	"math"
)

// Speed below which a ball is considered at rest and stopped outright,
// in units per second.
const restSpeedThreshold = 0.1

// Ball is the single moving body on a course. It is a massless point with a
// radius: no spin, no angular momentum.
type Ball struct {
	// position, previous position, velocity
	p     Vector
	prevP Vector
	v     Vector

	radius   float64
	friction float64
}

// NewBall returns a ball at start with zero velocity. friction is the
// fraction of velocity retained per second, typically in [0,1].
func NewBall(start Vector, radius, friction float64) (*Ball, error) {
	if !positiveFinite(radius) {
		return nil, fmt.Errorf("ball radius must be a positive finite number, got %v", radius)
	}
	if !positiveFinite(friction) {
		return nil, fmt.Errorf("ball friction must be a positive finite number, got %v", friction)
	}
	return &Ball{
		p:        start,
		prevP:    start,
		radius:   radius,
		friction: friction,
	}, nil
}

func (ball *Ball) Position() Vector {
	return ball.p
}

func (ball *Ball) SetPosition(p Vector) {
	ball.p = p
}

// PrevPosition returns the ball's position at the start of the current tick,
// before integration moved it.
func (ball *Ball) PrevPosition() Vector {
	return ball.prevP
}

func (ball *Ball) Velocity() Vector {
	return ball.v
}

func (ball *Ball) SetVelocity(v Vector) {
	ball.v = v
}

func (ball *Ball) Radius() float64 {
	return ball.radius
}

func (ball *Ball) Friction() float64 {
	return ball.friction
}

// Update advances the ball by dt seconds: snapshot the previous position,
// integrate, then damp. dt must be positive; Course.Step enforces this.
func (ball *Ball) Update(dt float64) {
	ball.prevP = ball.p
	ball.p = ball.p.Add(ball.v.Mult(dt))
	ball.v = ball.v.Mult(1.0 - (1.0-ball.friction)*dt)
	if ball.v.Length() < restSpeedThreshold {
		ball.v = Vector{}
	}
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
