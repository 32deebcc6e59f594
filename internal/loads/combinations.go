package loads

// Combination represents an ASD load combination
// Based on ASCE 7-16 Section 2.4.1 - Basic Combinations for Allowable Stress Design
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ASCE 7-16 Section 2.4.1 - ASD combinations
// "(Lr or R)" carries the same factor on Roof and Rain; only the larger
// factored term of the two is added
var ASDCombinations = []Combination{
	{ID: "1", Description: "D", Dead: 1.0},
	{ID: "2", Description: "D + L", Dead: 1.0, Live: 1.0},
	{ID: "3", Description: "D + (Lr or R)", Dead: 1.0, Roof: 1.0, Rain: 1.0},
	{ID: "4", Description: "D + 0.75L + 0.75(Lr or R)", Dead: 1.0, Live: 0.75, Roof: 0.75, Rain: 0.75},
	{ID: "5a", Description: "D + 0.6W", Dead: 1.0, Wind: 0.6},
	{ID: "5b", Description: "D + 0.7E", Dead: 1.0, Earthquake: 0.7},
	{ID: "6a", Description: "D + 0.75L + 0.75(0.6W) + 0.75(Lr or R)", Dead: 1.0, Live: 0.75, Wind: 0.45, Roof: 0.75, Rain: 0.75},
	{ID: "6b", Description: "D + 0.75L + 0.75(0.7E)", Dead: 1.0, Live: 0.75, Earthquake: 0.525},
	{ID: "7", Description: "0.6D + 0.6W", Dead: 0.6, Wind: 0.6},
	{ID: "8", Description: "0.6D + 0.7E", Dead: 0.6, Earthquake: 0.7},
}

// Components holds unfactored direct loads by load type (kip)
type Components struct {
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Factored calculates the combined direct load for this combination. Roof
// live and rain load are alternatives, not additive.
func (c Combination) Factored(l Components) float64 {
	return c.Dead*l.Dead +
		c.Live*l.Live +
		max(c.Roof*l.Roof, c.Rain*l.Rain) +
		c.Wind*l.Wind +
		c.Earthquake*l.Earthquake
}

// Governing finds the largest combined load among the combinations. Ties,
// including all loads zero, go to the first combination; an empty list
// returns a zero Combination.
func Governing(l Components, combinations []Combination) (float64, Combination) {
	if len(combinations) == 0 {
		return 0, Combination{}
	}
	governing := combinations[0]
	maxLoad := governing.Factored(l)

	for _, combo := range combinations[1:] {
		p := combo.Factored(l)
		if p > maxLoad {
			maxLoad = p
			governing = combo
		}
	}

	return maxLoad, governing
}
