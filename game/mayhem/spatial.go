package mayhem

import (
	"math"
	"sort"

	"github.com/bytearena/ecs"
	"github.com/dhconnelly/rtreego"
	"github.com/truckmayhem/truckmayhem/common/types"
	"github.com/truckmayhem/truckmayhem/common/utils/vector"
)

// waterDepth is how far below the surface a water zone reaches in the index
const waterDepth = 10000

// indexed is an entry of the spatial index: either a game entity or a
// water zone
type indexed struct {
	rect       rtreego.Rect
	entityID   ecs.EntityID
	descriptor types.PhysicalBodyDescriptor
	water      *waterZone
}

func (i *indexed) Bounds() rtreego.Rect {
	return i.rect
}

// boundingBox is centered on center, with lengths never collapsed to 0
func boundingBox(center vector.Vector2, width float64, height float64) rtreego.Rect {
	width = math.Max(width, 1)
	height = math.Max(height, 1)

	rect, _ := rtreego.NewRect(
		rtreego.Point{center.GetX() - width/2, center.GetY() - height/2},
		[]float64{width, height},
	)

	return rect
}

func (g *Game) index(id ecs.EntityID, descriptor types.PhysicalBodyDescriptor, center vector.Vector2, width float64, height float64) {
	entry := &indexed{
		rect:       boundingBox(center, width, height),
		entityID:   id,
		descriptor: descriptor,
	}

	g.spatials[id] = entry
	g.spatial.Insert(entry)
}

func (g *Game) indexWater(water *waterZone) {
	top := water.SurfaceY - g.cfg.Run.WaterSurfaceMargin
	rect, _ := rtreego.NewRect(
		rtreego.Point{water.X1, top},
		[]float64{math.Max(water.X2-water.X1, 1), waterDepth},
	)

	g.spatial.Insert(&indexed{
		rect:  rect,
		water: water,
	})
}

func (g *Game) unindex(id ecs.EntityID) {
	if entry, ok := g.spatials[id]; ok {
		g.spatial.Delete(entry)
		delete(g.spatials, id)
	}
}

// near lists the index entries intersecting the square of half side radius
// around center, sorted left to right
func (g *Game) near(center vector.Vector2, radius float64) []*indexed {
	found := g.spatial.SearchIntersect(boundingBox(center, 2*radius, 2*radius))

	res := make([]*indexed, 0, len(found))
	for _, spatial := range found {
		res = append(res, spatial.(*indexed))
	}

	sort.Slice(res, func(i, j int) bool {
		a, b := res[i].rect.PointCoord(0), res[j].rect.PointCoord(0)
		if a != b {
			return a < b
		}
		return res[i].entityID < res[j].entityID
	})

	return res
}

// submergedIn lists the water zones holding position
func (g *Game) submergedIn(position vector.Vector2) []*waterZone {
	zones := make([]*waterZone, 0)

	for _, entry := range g.near(position, 0.5) {
		if entry.water == nil {
			continue
		}

		w := entry.water
		x, y := position.Get()
		if x >= w.X1 && x <= w.X2 && y >= w.SurfaceY-g.cfg.Run.WaterSurfaceMargin {
			zones = append(zones, w)
		}
	}

	return zones
}
