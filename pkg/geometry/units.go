// Package geometry provides the pixel units, points, sizes, rectangles and
// layout constraints shared by the window runtime and widgets.
package geometry

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Px is a signed measurement in physical pixels.
type Px int32

// PxMax is the largest representable Px value.
const PxMax = Px(math.MaxInt32)

// UPx is an unsigned measurement in physical pixels.
type UPx uint32

// UPxMax is the largest representable UPx value.
const UPxMax = UPx(math.MaxUint32)

// Signed converts to Px, saturating at PxMax.
func (u UPx) Signed() Px {
	if u > UPx(PxMax) {
		return PxMax
	}
	return Px(u)
}

// Unsigned converts to UPx, clamping negative values to zero.
func (p Px) Unsigned() UPx {
	if p < 0 {
		return 0
	}
	return UPx(p)
}

// Lp is a device-independent measurement in logical pixels, stored as a
// 26.6 fixed-point value. One Lp equals one physical pixel at scale 1.
type Lp fixed.Int26_6

// Lpx returns n whole logical pixels.
func Lpx(n int) Lp {
	return Lp(fixed.I(n))
}

// Lpf returns a fractional logical pixel value, rounded to 1/64.
func Lpf(v float64) Lp {
	return Lp(fixed.Int26_6(math.Round(v * 64)))
}

// Float returns the value as a float64.
func (l Lp) Float() float64 {
	return float64(l) / 64
}

// IntoPx converts to physical pixels using the given scale factor.
// Non-positive scales are treated as 1.
func (l Lp) IntoPx(scale float32) Px {
	if scale <= 0 {
		scale = 1
	}
	return Px(math.Round(l.Float() * float64(scale)))
}

// IntoUPx converts to unsigned physical pixels, clamping negatives to zero.
func (l Lp) IntoUPx(scale float32) UPx {
	return l.IntoPx(scale).Unsigned()
}
