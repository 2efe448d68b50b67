package utils

// Normalize min-max scales values into [0,1]. A degenerate vector where every
// value is equal maps to a constant 0.5, since the plain formula would divide
// by zero there. With reverse set, each scaled value is flipped (1 - v) so
// that smaller raw values come out larger.
func Normalize(values []float64, reverse bool) []float64 {
	if len(values) == 0 {
		return nil
	}

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]float64, len(values))
	for i, v := range values {
		n := 0.5
		if maxVal > minVal {
			n = (v - minVal) / (maxVal - minVal)
		}
		if reverse {
			n = 1 - n
		}
		out[i] = n
	}
	return out
}
