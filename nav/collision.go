package nav

import "github.com/nstehr/valuenetwork/model"

// SegmentCircleIntersect reports whether the segment start→end passes within
// circle.Radius+fudge of the circle's centre.
func SegmentCircleIntersect(start, end model.Position, circle model.Entity, fudge float64) bool {
	dx := end.X - start.X
	dy := end.Y - start.Y

	a := dx*dx + dy*dy
	b := -2 * (start.X*start.X - start.X*end.X - start.X*circle.X + end.X*circle.X +
		start.Y*start.Y - start.Y*end.Y - start.Y*circle.Y + end.Y*circle.Y)

	if a == 0 {
		// Degenerate segment: just a point.
		return start.Distance(circle.Position) <= circle.Radius+fudge
	}

	t := min(-b/(2*a), 1.0)
	if t < 0 {
		return false
	}

	closest := model.Position{X: start.X + dx*t, Y: start.Y + dy*t}
	return closest.Distance(circle.Position) <= circle.Radius+fudge
}

// ObstaclesBetween returns every planet and ship whose footprint lies on the
// path from start to target. Entities sitting exactly on either endpoint are
// the mover or the destination and are skipped.
func ObstaclesBetween(m *model.Map, start, target model.Position) []model.Entity {
	var hits []model.Entity
	check := func(e model.Entity) {
		if e.Position == start || e.Position == target {
			return
		}
		if SegmentCircleIntersect(start, target, e, model.ForecastFudgeFactor) {
			hits = append(hits, e)
		}
	}
	for _, p := range m.Planets {
		check(p.Entity)
	}
	for _, s := range m.AllShips() {
		check(s.Entity)
	}
	return hits
}
