package terrain

import (
	"math"
	"sort"

	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
	"github.com/truckmayhem/truckmayhem/config"
	"github.com/truckmayhem/truckmayhem/game/physics"
)

const (
	startOffsetX = 150
	startOffsetY = 80
	finishOffset = 300
	margin       = 200.0
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Profile samples the ground from -200 to length+200 every step.
// It must start and end at baseY.
type Profile func(baseY float64, step float64, length float64) []Point

// Flat is the profile used when a level does not provide one
func Flat(baseY float64, step float64, length float64) []Point {
	return Sample(baseY, step, length, func(x float64) float64 { return baseY })
}

// Sample builds a profile from a height function
func Sample(baseY float64, step float64, length float64, height func(x float64) float64) []Point {
	points := make([]Point, 0, int((length+2*margin)/step)+1)
	for x := -margin; x <= length+margin; x += step {
		points = append(points, Point{X: x, Y: height(x)})
	}

	return points
}

// Segment is the collision rectangle laid under a pair of consecutive points
type Segment struct {
	Center    vector.Vector2
	Width     float64
	Thickness float64
	Angle     float64
}

type Wall struct {
	Center vector.Vector2
	Width  float64
	Height float64
}

type Terrain struct {
	cfg    config.TerrainConfig
	points []Point
	bodies []*physics.Body
}

func New(cfg config.TerrainConfig, profile Profile) *Terrain {
	if profile == nil {
		profile = Flat
	}

	return &Terrain{
		cfg:    cfg,
		points: profile(cfg.BaseY, cfg.Step, cfg.Length),
	}
}

func (t *Terrain) Points() []Point {
	return t.points
}

func (t *Terrain) GetBaseY() float64 {
	return t.cfg.BaseY
}

func (t *Terrain) GetLength() float64 {
	return t.cfg.Length
}

// HeightAt interpolates the ground height at x; outside the sampled range it
// returns the base height
func (t *Terrain) HeightAt(x float64) float64 {
	n := len(t.points)
	if n < 2 || x < t.points[0].X || x >= t.points[n-1].X {
		return t.cfg.BaseY
	}

	// first point strictly after x; x lies in [points[i-1].X, points[i].X)
	i := sort.Search(n, func(i int) bool { return t.points[i].X > x })
	a, b := t.points[i-1], t.points[i]

	f := (x - a.X) / (b.X - a.X)
	return a.Y + (b.Y-a.Y)*f
}

// Slope is the absolute height change per world unit between x and x+dx
func (t *Terrain) Slope(x float64, dx float64) float64 {
	return math.Abs(t.HeightAt(x+dx)-t.HeightAt(x)) / dx
}

func (t *Terrain) StartPosition() vector.Vector2 {
	return vector.MakeVector2(startOffsetX, t.cfg.BaseY-startOffsetY)
}

func (t *Terrain) FinishX() float64 {
	return t.cfg.Length - finishOffset
}

// Segments lays one rectangle per pair of points, rotated to the slope and
// pushed down by half its thickness so its top edge is the drawn line
func (t *Terrain) Segments() []Segment {
	if len(t.points) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(t.points)-1)
	thickness := t.cfg.SegmentThickness

	for i := 0; i < len(t.points)-1; i++ {
		p1, p2 := t.points[i], t.points[i+1]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y

		segments = append(segments, Segment{
			Center:    vector.MakeVector2((p1.X+p2.X)/2, (p1.Y+p2.Y)/2+thickness/2),
			Width:     math.Sqrt(dx*dx+dy*dy) + 2,
			Thickness: thickness,
			Angle:     math.Atan2(dy, dx),
		})
	}

	return segments
}

// Walls catch the vehicle on the left of the track and below it
func (t *Terrain) Walls() []Wall {
	return []Wall{
		{Center: vector.MakeVector2(-250, 400), Width: 100, Height: 1200},
		{Center: vector.MakeVector2(t.cfg.Length/2, 950), Width: t.cfg.Length + 1000, Height: 100},
	}
}

// Build creates the static collision geometry in the world
func (t *Terrain) Build(world *physics.World) {
	for _, segment := range t.Segments() {
		t.bodies = append(t.bodies, world.CreateBox(physics.BodyDef{
			Descriptor: types.MakePhysicalBodyDescriptor(types.PhysicalBodyKind.Terrain, "terrain"),
			Position:   segment.Center,
			Angle:      segment.Angle,
			Friction:   t.cfg.Friction,
		}, segment.Width, segment.Thickness))
	}

	for _, wall := range t.Walls() {
		t.bodies = append(t.bodies, world.CreateBox(physics.BodyDef{
			Descriptor: types.MakePhysicalBodyDescriptor(types.PhysicalBodyKind.Wall, "wall"),
			Position:   wall.Center,
		}, wall.Width, wall.Height))
	}
}

func (t *Terrain) Destroy() {
	for _, body := range t.bodies {
		body.Detach()
	}

	t.bodies = nil
}
