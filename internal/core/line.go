package core

import "math"

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Distance returns the Euclidean distance between two coordinates.
func Distance(x0, y0, x1, y1 int) float64 {
	return math.Hypot(float64(x1-x0), float64(y1-y0))
}

// Line rasterizes the segment from (x0, y0) to (x1, y1) with Bresenham's
// algorithm. Both endpoints are included and the first point is always the
// start.
func Line(x0, y0, x1, y1 int) []Point {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	points := make([]Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
