// Package shape contains simple geometric records.
package shape

import "strconv"

// Rectangle is an immutable by convention width/height pair. Area is
// computed on demand and never stored.
type Rectangle struct {
	Width  float64 `json:"width" yaml:"width" cbor:"width" ion:"width"`
	Height float64 `json:"height" yaml:"height" cbor:"height" ion:"height"`
}

// NewRectangle returns rectangle with specified dimensions. No validation is
// done, negative values simply produce negative or positive areas.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area returns width multiplied by height.
func (r *Rectangle) Area() float64 {
	return r.Width * r.Height
}

func (r *Rectangle) String() string {
	return strconv.FormatFloat(r.Width, 'g', -1, 64) + "x" + strconv.FormatFloat(r.Height, 'g', -1, 64)
}
