package button

// CornerMask packs the four rounded-corner flags into one value so a
// Descriptor stays comparable and can key a map directly.
type CornerMask uint8

const (
	CornerTopLeft CornerMask = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	// AllCorners is the stock shape: rounded on every corner.
	AllCorners = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// Corners builds a mask in top-left, top-right, bottom-left, bottom-right order.
func Corners(tl, tr, bl, br bool) CornerMask {
	var m CornerMask
	if tl {
		m |= CornerTopLeft
	}
	if tr {
		m |= CornerTopRight
	}
	if bl {
		m |= CornerBottomLeft
	}
	if br {
		m |= CornerBottomRight
	}
	return m
}

// AllSame broadcasts a single flag to all four corners.
func AllSame(rounded bool) CornerMask {
	if rounded {
		return AllCorners
	}
	return 0
}

func (m CornerMask) Has(c CornerMask) bool { return m&c != 0 }

// EdgeMask packs the four shadow-edge flags, in top, left, right, bottom order.
type EdgeMask uint8

const (
	EdgeTop EdgeMask = 1 << iota
	EdgeLeft
	EdgeRight
	EdgeBottom

	// TopLeftShadow is the stock lighting: shadow on the top and left edges.
	TopLeftShadow = EdgeTop | EdgeLeft
)

// Edges builds a mask in top, left, right, bottom order.
func Edges(top, left, right, bottom bool) EdgeMask {
	var m EdgeMask
	if top {
		m |= EdgeTop
	}
	if left {
		m |= EdgeLeft
	}
	if right {
		m |= EdgeRight
	}
	if bottom {
		m |= EdgeBottom
	}
	return m
}

func (m EdgeMask) Has(e EdgeMask) bool { return m&e != 0 }

// Descriptor is the full identity of a button surface. Two descriptors that
// compare equal always produce pixel-identical surfaces, which is what lets
// the struct double as the cache key.
type Descriptor struct {
	Width  int
	Height int
	// Label may contain newlines and brace-delimited glyph tokens.
	Label       string
	Hover       bool
	Unavailable bool
	Rounded     CornerMask
	Shadows     EdgeMask
	Hanging     bool
}

// DefaultDescriptor returns a descriptor carrying the stock shape for the
// given size and label: rounded everywhere, shadow top and left, not hanging.
func DefaultDescriptor(w, h int, label string) Descriptor {
	return Descriptor{
		Width:   w,
		Height:  h,
		Label:   label,
		Rounded: AllCorners,
		Shadows: TopLeftShadow,
	}
}
