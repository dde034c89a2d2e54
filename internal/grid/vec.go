package grid

import "fmt"

// Vec is a point in cell space (integer grid indices).
type Vec struct {
	X int
	Y int
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y int) Vec {
	return Vec{X: x, Y: y}
}

// Add returns the component-wise sum.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Pixel is a point in pixel space, e.g. a raw pointer position.
// It only becomes a Vec through input.Mapper.
type Pixel struct {
	X float64
	Y float64
}

// Sub returns p - o.
func (p Pixel) Sub(o Pixel) Pixel {
	return Pixel{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%.1f,%.1f)px", p.X, p.Y)
}
