package math

// Int2 is an integer point on the province map.
type Int2 struct {
	X, Y int
}

// Sub returns p - other.
func (p Int2) Sub(other Int2) Int2 {
	return Int2{p.X - other.X, p.Y - other.Y}
}

// MapDistance returns the legacy map distance between two points:
// the longer axis plus a quarter of the shorter one.
func MapDistance(a, b Int2) int {
	d := a.Sub(b)
	dx, dy := absInt(d.X), absInt(d.Y)
	return max(dx, dy) + min(dx, dy)/4
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
