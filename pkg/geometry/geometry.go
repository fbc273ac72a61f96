package geometry

// Point is a location in physical pixels.
type Point struct {
	X Px
	Y Px
}

// Pt constructs a Point.
func Pt(x, y Px) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the offset from o to p.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size is a width and height in unsigned physical pixels.
type Size struct {
	Width  UPx
	Height UPx
}

// Sz constructs a Size.
func Sz(width, height UPx) Size {
	return Size{Width: width, Height: height}
}

// Min returns the per-axis minimum of s and o.
func (s Size) Min(o Size) Size {
	return Size{Width: min(s.Width, o.Width), Height: min(s.Height, o.Height)}
}

// Max returns the per-axis maximum of s and o.
func (s Size) Max(o Size) Size {
	return Size{Width: max(s.Width, o.Width), Height: max(s.Height, o.Height)}
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Rect is an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromSize returns a rect at the origin with the given size.
func RectFromSize(size Size) Rect {
	return Rect{Size: size}
}

// RectXYWH constructs a Rect from an origin and dimensions.
func RectXYWH(x, y Px, width, height UPx) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// Right returns the exclusive right edge.
func (r Rect) Right() Px {
	return r.Origin.X + r.Size.Width.Signed()
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() Px {
	return r.Origin.Y + r.Size.Height.Signed()
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Right() &&
		p.Y >= r.Origin.Y && p.Y < r.Bottom()
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Point) Rect {
	return Rect{Origin: r.Origin.Add(offset), Size: r.Size}
}

// Intersect returns the overlap of r and o. Disjoint rects produce a
// zero-sized rect.
func (r Rect) Intersect(o Rect) Rect {
	left := max(r.Origin.X, o.Origin.X)
	top := max(r.Origin.Y, o.Origin.Y)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right <= left || bottom <= top {
		return Rect{Origin: Point{X: left, Y: top}}
	}
	return RectXYWH(left, top, (right - left).Unsigned(), (bottom - top).Unsigned())
}
