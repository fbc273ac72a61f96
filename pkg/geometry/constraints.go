package geometry

// limitKind distinguishes the two ConstraintLimit variants.
type limitKind uint8

const (
	limitKnown limitKind = iota
	limitClippedAfter
)

// ConstraintLimit bounds one axis during layout.
//
// A Known limit asks the widget to fill exactly the given size. A
// ClippedAfter limit lets the widget pick anything up to the given size;
// content beyond it is clipped.
type ConstraintLimit struct {
	kind  limitKind
	value UPx
}

// Known returns a limit that fixes the axis to size.
func Known(size UPx) ConstraintLimit {
	return ConstraintLimit{kind: limitKnown, value: size}
}

// ClippedAfter returns a limit allowing anything up to size.
func ClippedAfter(size UPx) ConstraintLimit {
	return ConstraintLimit{kind: limitClippedAfter, value: size}
}

// IsKnown reports whether this is a Known limit.
func (c ConstraintLimit) IsKnown() bool {
	return c.kind == limitKnown
}

// Max returns the largest size permitted on this axis.
func (c ConstraintLimit) Max() UPx {
	return c.value
}

// FitMeasured returns the size a widget measuring measured should report.
// Known limits always report their value.
func (c ConstraintLimit) FitMeasured(measured UPx) UPx {
	if c.kind == limitKnown {
		return c.value
	}
	return min(measured, c.value)
}

// Shrink returns the limit reduced by amount, saturating at zero.
func (c ConstraintLimit) Shrink(amount UPx) ConstraintLimit {
	if amount >= c.value {
		return ConstraintLimit{kind: c.kind}
	}
	return ConstraintLimit{kind: c.kind, value: c.value - amount}
}

// Constraints holds a limit for each axis.
type Constraints struct {
	Width  ConstraintLimit
	Height ConstraintLimit
}

// KnownSize returns Known constraints for both axes of size.
func KnownSize(size Size) Constraints {
	return Constraints{Width: Known(size.Width), Height: Known(size.Height)}
}

// ClippedSize returns ClippedAfter constraints for both axes of size.
func ClippedSize(size Size) Constraints {
	return Constraints{Width: ClippedAfter(size.Width), Height: ClippedAfter(size.Height)}
}

// Max returns the largest size permitted by c.
func (c Constraints) Max() Size {
	return Size{Width: c.Width.Max(), Height: c.Height.Max()}
}

// FitMeasured applies FitMeasured on both axes.
func (c Constraints) FitMeasured(measured Size) Size {
	return Size{Width: c.Width.FitMeasured(measured.Width), Height: c.Height.FitMeasured(measured.Height)}
}

// DimensionRange is an optional minimum and maximum in logical pixels.
// The zero value is unbounded on both ends.
type DimensionRange struct {
	minimum Lp
	maximum Lp
	hasMin  bool
	hasMax  bool
}

// Unbounded returns a range with no limits.
func Unbounded() DimensionRange {
	return DimensionRange{}
}

// Exactly returns a range whose minimum and maximum are both l.
func Exactly(l Lp) DimensionRange {
	return DimensionRange{minimum: l, maximum: l, hasMin: true, hasMax: true}
}

// AtLeast returns a range with only a minimum.
func AtLeast(l Lp) DimensionRange {
	return DimensionRange{minimum: l, hasMin: true}
}

// AtMost returns a range with only a maximum.
func AtMost(l Lp) DimensionRange {
	return DimensionRange{maximum: l, hasMax: true}
}

// Between returns a range from lo to hi.
func Between(lo, hi Lp) DimensionRange {
	return DimensionRange{minimum: lo, maximum: hi, hasMin: true, hasMax: true}
}

// Minimum returns the minimum, if any.
func (r DimensionRange) Minimum() (Lp, bool) {
	return r.minimum, r.hasMin
}

// Maximum returns the maximum, if any.
func (r DimensionRange) Maximum() (Lp, bool) {
	return r.maximum, r.hasMax
}

// MinPx returns the minimum in physical pixels, or 0 when unset.
func (r DimensionRange) MinPx(scale float32) UPx {
	if !r.hasMin {
		return 0
	}
	return r.minimum.IntoUPx(scale)
}

// MaxPx returns the maximum in physical pixels, or UPxMax when unset.
func (r DimensionRange) MaxPx(scale float32) UPx {
	if !r.hasMax {
		return UPxMax
	}
	return r.maximum.IntoUPx(scale)
}

// Clamp limits v to the range at the given scale.
func (r DimensionRange) Clamp(v UPx, scale float32) UPx {
	lo, hi := r.MinPx(scale), r.MaxPx(scale)
	if v < lo {
		v = lo
	}
	if v > hi && hi >= lo {
		v = hi
	}
	return v
}
