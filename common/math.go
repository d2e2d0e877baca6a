package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Lerp interpolates from a to b with t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + Clamp01(t)*(b-a)
}

func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
