// internal/entity/spatial.go
package entity

import (
	"math"

	"go-arena-shooter/internal/config"
	"go-arena-shooter/pkg/geom"

	"github.com/solarlune/resolv"
)

var tagEnemy = resolv.NewTag("enemy")

// SpatialIndex is a broad phase over live enemies backed by a resolv grid.
// It only narrows candidates; callers still run geom.CheckCollision.
type SpatialIndex struct {
	space  *resolv.Space
	origin geom.Vector2
	size   geom.Vector2
	owners map[resolv.IShape]*Enemy
	all    []*Enemy
}

// NewSpatialIndex covers [lo, hi] plus the world margin.
func NewSpatialIndex(lo, hi geom.Vector2, cell int) *SpatialIndex {
	m := config.WorldBoundMargin
	origin := geom.V(lo.X-m, lo.Y-m)
	size := geom.V(hi.X-lo.X+2*m, hi.Y-lo.Y+2*m)
	if size.X < float64(cell) {
		size.X = float64(cell)
	}
	if size.Y < float64(cell) {
		size.Y = float64(cell)
	}
	return &SpatialIndex{
		space:  resolv.NewSpace(int(math.Ceil(size.X)), int(math.Ceil(size.Y)), cell, cell),
		origin: origin,
		size:   size,
		owners: make(map[resolv.IShape]*Enemy),
	}
}

// Rebuild replaces the indexed set with the live enemies in list.
func (ix *SpatialIndex) Rebuild(list []*Enemy) {
	for sh := range ix.owners {
		ix.space.Remove(sh)
	}
	clear(ix.owners)
	ix.all = ix.all[:0]

	for _, e := range list {
		if e.Dead() {
			continue
		}
		ix.all = append(ix.all, e)
		lo, hi := e.Shape().Bounds()
		if !ix.contains(lo, hi) {
			continue
		}
		sh := ix.box(lo, hi)
		sh.Tags().Set(tagEnemy)
		ix.space.Add(sh)
		ix.owners[sh] = e
	}
}

// Query returns enemies whose bounding boxes may overlap s.
func (ix *SpatialIndex) Query(s geom.Shape) []*Enemy {
	lo, hi := s.Bounds()
	if !ix.contains(lo, hi) || len(ix.owners) != len(ix.all) {
		// something sits outside the grid, fall back to a scan
		return ix.all
	}

	probe := ix.box(lo, hi)
	ix.space.Add(probe)
	defer ix.space.Remove(probe)

	var out []*Enemy
	probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: probe.SelectTouchingCells(0).FilterShapes().ByTags(tagEnemy),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			if e, ok := ix.owners[set.OtherShape]; ok {
				out = append(out, e)
			}
			return true
		},
	})
	return out
}

func (ix *SpatialIndex) contains(lo, hi geom.Vector2) bool {
	return lo.X >= ix.origin.X && lo.Y >= ix.origin.Y &&
		hi.X <= ix.origin.X+ix.size.X && hi.Y <= ix.origin.Y+ix.size.Y
}

func (ix *SpatialIndex) box(lo, hi geom.Vector2) resolv.IShape {
	// pad by one unit so touching-but-separate shapes still reach the narrow phase
	return resolv.NewRectangleFromTopLeft(lo.X-ix.origin.X-1, lo.Y-ix.origin.Y-1, hi.X-lo.X+2, hi.Y-lo.Y+2)
}
