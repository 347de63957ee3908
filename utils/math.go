package utils

// Fl is the floating point type used for resolved pixel values.
type Fl = float32

func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}
