package wing

import "math"

// SpanPositions computes the ordered spanwise coordinates for stations:
// count uniformly spaced positions from 0 to span inclusive (count is
// coerced to a minimum of 2), each uniform gap then subdivided so that no
// emitted gap exceeds maxSeg. maxSeg <= 0 disables refinement. The result
// is strictly increasing for span > 0 and always starts at 0 and ends at
// span exactly.
func SpanPositions(span float64, count int, maxSeg float64) []float64 {
	if count < 2 {
		count = 2
	}
	step := span / float64(count-1)
	uniform := make([]float64, count)
	for i := range uniform {
		uniform[i] = float64(i) * step
	}
	uniform[count-1] = span

	if maxSeg <= 0 {
		return uniform
	}

	out := make([]float64, 0, count)
	for i := 0; i < count-1; i++ {
		y0, y1 := uniform[i], uniform[i+1]
		n := int(math.Ceil((y1 - y0) / maxSeg))
		if n < 1 {
			n = 1
		}
		sub := (y1 - y0) / float64(n)
		for j := 0; j < n; j++ {
			out = append(out, y0+float64(j)*sub)
		}
	}
	return append(out, span)
}
