package putt

import "fmt"

// HoleDef describes one goal region in a course description.
type HoleDef struct {
	Pos    Vector
	Radius float64
}

// CourseDef is the course description the kernel consumes. How it is parsed
// or stored is up to the caller.
type CourseDef struct {
	Name         string
	Polygon      []Vector
	Damping      float64
	Holes        []HoleDef
	Obstacles    []ObstacleDef
	BallStart    Vector
	BallFriction float64
	BallRadius   float64
}

// SimpleCourse returns the built-in fallback course: an L-shaped green with
// one circular obstacle and one hole.
func SimpleCourse() CourseDef {
	return CourseDef{
		Name: "Simple Course",
		Polygon: []Vector{
			{100, 100}, {500, 100}, {500, 250}, {600, 250}, {600, 100},
			{700, 100}, {700, 500}, {600, 500}, {450, 400}, {450, 300}, {100, 300},
		},
		Damping:      0.6,
		Holes:        []HoleDef{{Pos: Vector{650, 200}, Radius: 15}},
		Obstacles:    []ObstacleDef{{Type: "circle", Pos: Vector{400, 200}, Radius: 50, Damping: 0.25}},
		BallStart:    Vector{200, 200},
		BallFriction: 0.85,
		BallRadius:   8,
	}
}

// Stats tracks shot counters across a session.
type Stats struct {
	TotalShots          int
	ShotsSinceLastHole  int
	ShotsNeededLastHole int
}

// HoleFunc is called when the ball drops into a hole, after the stats are
// updated but before the ball is reset to the course start.
type HoleFunc func(hole *Hole, stats Stats)

// Course owns a ball, a boundary, the obstacles and the holes, and advances
// them tick by tick. It is not safe for concurrent use; each tick runs to
// completion in the calling goroutine.
type Course struct {
	name      string
	boundary  *Boundary
	obstacles []Obstacle
	holes     []*Hole
	start     Vector

	ball   *Ball
	tuning Tuning
	stats  Stats

	holeFunc HoleFunc
}

// NewCourse validates def and builds a ready-to-step course with the ball at
// the start position and default tuning.
func NewCourse(def CourseDef) (*Course, error) {
	boundary, err := NewBoundary(def.Polygon, def.Damping)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", def.Name, err)
	}

	ball, err := NewBall(def.BallStart, def.BallRadius, def.BallFriction)
	if err != nil {
		return nil, fmt.Errorf("course %q: %w", def.Name, err)
	}

	course := &Course{
		name:     def.Name,
		boundary: boundary,
		start:    def.BallStart,
		ball:     ball,
		tuning:   DefaultTuning(),
	}

	for i, obstacleDef := range def.Obstacles {
		obstacle, err := NewObstacle(obstacleDef)
		if err != nil {
			return nil, fmt.Errorf("course %q: obstacle %d: %w", def.Name, i, err)
		}
		course.obstacles = append(course.obstacles, obstacle)
	}

	for i, holeDef := range def.Holes {
		hole, err := NewHole(holeDef.Pos, holeDef.Radius)
		if err != nil {
			return nil, fmt.Errorf("course %q: hole %d: %w", def.Name, i, err)
		}
		course.holes = append(course.holes, hole)
	}

	return course, nil
}

func (course *Course) Name() string {
	return course.name
}

func (course *Course) Ball() *Ball {
	return course.ball
}

func (course *Course) Boundary() *Boundary {
	return course.boundary
}

func (course *Course) Obstacles() []Obstacle {
	return course.obstacles
}

func (course *Course) Holes() []*Hole {
	return course.holes
}

func (course *Course) Start() Vector {
	return course.start
}

func (course *Course) Stats() Stats {
	return course.stats
}

func (course *Course) Tuning() Tuning {
	return course.tuning
}

func (course *Course) SetTuning(tuning Tuning) {
	course.tuning = tuning
}

// SetHoleFunc registers the callback fired when the ball sinks a hole.
func (course *Course) SetHoleFunc(fn HoleFunc) {
	course.holeFunc = fn
}

// ApplyShot fires the ball: its velocity becomes direction normalized times
// magnitude clamped to [0, MaxShotStrength], and the shot counters advance.
// A zero direction is ignored and reported as false.
func (course *Course) ApplyShot(direction Vector, magnitude float64) bool {
	if direction.LengthSq() == 0 {
		return false
	}
	strength := Clamp(magnitude, 0, course.tuning.MaxShotStrength)
	course.ball.v = direction.Normalize().Mult(strength)
	course.stats.TotalShots++
	course.stats.ShotsSinceLastHole++
	return true
}

// Step advances the simulation by dt seconds: integrate the ball, resolve
// each obstacle in course order, resolve the boundary (at most one edge),
// then check the holes. Obstacles run before the boundary so a ball pushed
// out of an obstacle is still pulled back inside the playfield on the same
// tick. Each obstacle is resolved once per tick, in order; earlier obstacles
// are not re-checked after a later one moves the ball.
func (course *Course) Step(dt float64) error {
	if dt <= 0 {
		return fmt.Errorf("course step: dt must be positive, got %v", dt)
	}

	course.ball.Update(dt)

	for _, obstacle := range course.obstacles {
		obstacle.Collide(course.ball, dt)
	}

	course.boundary.Resolve(course.ball)

	for _, hole := range course.holes {
		if !hole.Contains(course.ball) {
			continue
		}
		course.stats.ShotsNeededLastHole = course.stats.ShotsSinceLastHole
		course.stats.ShotsSinceLastHole = 0
		if course.holeFunc != nil {
			course.holeFunc(hole, course.stats)
		}
		course.ball.p = course.start
		course.ball.prevP = course.start
		course.ball.v = Vector{}
	}

	return nil
}
