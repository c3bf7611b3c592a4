package layout

// Rect is a rectangle in cell coordinates. W and H are never negative.
type Rect struct {
	X, Y, W, H int
}

// Direction selects the axis a split divides along
type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

const (
	kindFixed uint8 = iota
	kindRatio
	kindFill
)

// Constraint describes how one segment of a split claims space.
// Fixed segments are satisfied first, in order. Ratio and Fill
// segments then share whatever is left in proportion to their weight.
type Constraint struct {
	kind   uint8
	cells  int
	num    int
	den    int
	weight int
}

// Fixed claims exactly n cells, truncated when the area runs out
func Fixed(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: kindFixed, cells: n}
}

// Ratio claims num/den of the space left after Fixed segments
func Ratio(num, den int) Constraint {
	return Constraint{kind: kindRatio, num: num, den: den}
}

// Fill claims a weighted share of the space left after Fixed segments
func Fill(weight int) Constraint {
	if weight < 0 {
		weight = 0
	}
	return Constraint{kind: kindFill, weight: weight}
}

// flexible reports whether the constraint shares leftover space
func (c Constraint) flexible() bool {
	return c.kind != kindFixed
}

// flexWeight returns the proportional weight of a flexible constraint
func (c Constraint) flexWeight() float64 {
	switch c.kind {
	case kindRatio:
		if c.num <= 0 || c.den <= 0 {
			return 0
		}
		return float64(c.num) / float64(c.den)
	case kindFill:
		return float64(c.weight)
	}
	return 0
}

// Apply resolves the constraint against a total length on its own,
// without siblings. Used for standalone size caps such as legend
// limits.
func (c Constraint) Apply(length int) int {
	switch c.kind {
	case kindFixed:
		if c.cells < length {
			return c.cells
		}
		return length
	case kindRatio:
		if c.num < 0 || c.den <= 0 {
			return 0
		}
		return length * c.num / c.den
	}
	return length
}

// Split tiles area along dir, producing one rect per constraint in
// order. The output extents always sum to the input extent: Fixed
// claims first and is truncated in order when oversubscribed, the
// rest is shared by Ratio and Fill proportionally to weight, floored,
// with the rounding leftover handed to the last flexible segment.
// A zero extent area yields zero sized rects, never an error.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	n := len(constraints)
	if n == 0 {
		return nil
	}

	length := area.W
	if dir == Vertical {
		length = area.H
	}
	if length < 0 {
		length = 0
	}

	sizes := make([]int, n)
	remaining := length

	for i, c := range constraints {
		if c.flexible() {
			continue
		}
		w := c.cells
		if w > remaining {
			w = remaining
		}
		sizes[i] = w
		remaining -= w
	}

	var total float64
	last := -1
	for i, c := range constraints {
		if c.flexible() {
			total += c.flexWeight()
			last = i
		}
	}

	switch {
	case last >= 0 && total > 0:
		used := 0
		for i, c := range constraints {
			if !c.flexible() {
				continue
			}
			w := int(float64(remaining) * c.flexWeight() / total)
			sizes[i] = w
			used += w
		}
		sizes[last] += remaining - used // Last one gets remainder to avoid rounding gaps
	case last >= 0:
		// All flexible weights are zero, the slack still has to land somewhere
		sizes[last] += remaining
	default:
		// Fixed only: the last segment absorbs the slack to keep the tiling exact
		sizes[n-1] += remaining
	}

	out := make([]Rect, n)
	pos := area.X
	if dir == Vertical {
		pos = area.Y
	}
	for i, size := range sizes {
		if dir == Horizontal {
			out[i] = Rect{X: pos, Y: area.Y, W: size, H: area.H}
		} else {
			out[i] = Rect{X: area.X, Y: pos, W: area.W, H: size}
		}
		pos += size
	}
	return out
}
