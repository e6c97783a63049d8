package chart

import "math"

type point struct {
	x, y float64
}

type layout struct {
	cx, cy    int
	radius    float64
	labelGap  float64
	titleY    int
	titleSize float64
	labelSize float64
	tickSize  float64
}

// newLayout centers the plot below the title, leaving room for axis labels.
func newLayout(width, height int) layout {
	side := math.Min(float64(width), float64(height))
	titleBand := side * 0.08
	return layout{
		cx:        width / 2,
		cy:        round(float64(height)/2 + titleBand/2),
		radius:    (side - titleBand) / 2 * 0.62,
		labelGap:  side * 0.025,
		titleY:    round(titleBand * 0.7),
		titleSize: side / 60,
		labelSize: side / 90,
		tickSize:  side / 110,
	}
}

// spokeAngles returns n equally spaced angles in screen coordinates, starting
// straight up and going clockwise.
func spokeAngles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
	}
	return out
}

// polar converts an angle and distance from (cx, cy) to screen coordinates.
func polar(cx, cy, dist, angle float64) (float64, float64) {
	return cx + dist*math.Cos(angle), cy + dist*math.Sin(angle)
}

// profilePoints maps 0..100 scores onto their spokes. The polygon is closed by
// repeating the first point, so len(result) == len(values)+1.
func profilePoints(cx, cy, radius float64, values []float64) []point {
	angles := spokeAngles(len(values))
	out := make([]point, 0, len(values)+1)
	for i, v := range values {
		x, y := polar(cx, cy, radius*clamp(v, 0, 100)/100, angles[i])
		out = append(out, point{x, y})
	}
	if len(out) > 0 {
		out = append(out, out[0])
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64) int {
	return int(math.Round(v))
}
