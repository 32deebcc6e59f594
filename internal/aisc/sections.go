package aisc

import (
	"sort"
	"strings"
)

// Section holds the AISC Shapes Database properties the connection checks need
type Section struct {
	Name            string
	Class           string  // W_shapes, L_shapes, C_shapes
	Shape           string  // W, L, C
	Area            float64 // Gross area A (in²)
	Depth           float64 // d (in)
	WebThickness    float64 // tw (in); leg thickness for angles
	FlangeThickness float64 // tf (in); leg thickness for angles
}

// Section catalog for the shapes offered in the member form
var sections = map[string]Section{
	"W21X83": {Name: "W21X83", Class: "W_shapes", Shape: "W", Area: 24.4, Depth: 21.4, WebThickness: 0.515, FlangeThickness: 0.835},
	"W18X76": {Name: "W18X76", Class: "W_shapes", Shape: "W", Area: 22.3, Depth: 18.2, WebThickness: 0.425, FlangeThickness: 0.680},
	"W24X94": {Name: "W24X94", Class: "W_shapes", Shape: "W", Area: 27.7, Depth: 24.3, WebThickness: 0.515, FlangeThickness: 0.875},
	"W16X67": {Name: "W16X67", Class: "W_shapes", Shape: "W", Area: 19.7, Depth: 16.3, WebThickness: 0.395, FlangeThickness: 0.665},
	"W14X90": {Name: "W14X90", Class: "W_shapes", Shape: "W", Area: 26.5, Depth: 14.0, WebThickness: 0.440, FlangeThickness: 0.710},

	"L8X6X1":   {Name: "L8X6X1", Class: "L_shapes", Shape: "L", Area: 13.0, Depth: 8.0, WebThickness: 1.0, FlangeThickness: 1.0},
	"L6X4X1/2": {Name: "L6X4X1/2", Class: "L_shapes", Shape: "L", Area: 4.75, Depth: 6.0, WebThickness: 0.5, FlangeThickness: 0.5},
	"L4X4X1/2": {Name: "L4X4X1/2", Class: "L_shapes", Shape: "L", Area: 3.75, Depth: 4.0, WebThickness: 0.5, FlangeThickness: 0.5},
	"L3X3X1/4": {Name: "L3X3X1/4", Class: "L_shapes", Shape: "L", Area: 1.44, Depth: 3.0, WebThickness: 0.25, FlangeThickness: 0.25},

	"C15X50": {Name: "C15X50", Class: "C_shapes", Shape: "C", Area: 14.7, Depth: 15.0, WebThickness: 0.716, FlangeThickness: 0.650},
	"C12X30": {Name: "C12X30", Class: "C_shapes", Shape: "C", Area: 8.81, Depth: 12.0, WebThickness: 0.510, FlangeThickness: 0.501},
	"C10X25": {Name: "C10X25", Class: "C_shapes", Shape: "C", Area: 7.35, Depth: 10.0, WebThickness: 0.526, FlangeThickness: 0.436},
}

// LookupSection finds a catalog section by designation (case-insensitive)
func LookupSection(name string) (Section, bool) {
	s, ok := sections[strings.ToUpper(strings.TrimSpace(name))]
	return s, ok
}

// Sections returns the catalog ordered by class, then name
func Sections() []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Class != out[j].Class {
			return out[i].Class < out[j].Class
		}
		return out[i].Name < out[j].Name
	})
	return out
}
