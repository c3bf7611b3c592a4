package chart

import "fmt"

// Axis describes one chart dimension: the visible data bounds plus an
// optional title and tick labels. Labels spread across the axis with
// the first at the low end and the last at the high end.
type Axis struct {
	Title  string
	Min    float64
	Max    float64
	Labels []string
}

// Validate rejects bounds with no extent. Data cannot be mapped onto
// a zero-span axis, so this fails at configuration time instead of
// dividing by zero mid-render. NaN bounds fail the comparison too.
func (a Axis) Validate() error {
	if !(a.Min < a.Max) {
		return fmt.Errorf("axis %q: bounds [%g, %g] have no extent", a.Title, a.Min, a.Max)
	}
	return nil
}

// span returns the data extent covered by the axis
func (a Axis) span() float64 {
	return a.Max - a.Min
}

// contains reports whether v lies within the bounds, inclusive
func (a Axis) contains(v float64) bool {
	return v >= a.Min && v <= a.Max
}
