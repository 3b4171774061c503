package estimation

import "drywall_estimator/internal/domain/entities"

// Aggregate sums quantities per (material, unit) across all estimations.
// Output order is first appearance; inputs are never mutated.
func Aggregate(estimations []entities.Estimation) []entities.AggregatedResult {
	index := make(map[string]int)
	out := make([]entities.AggregatedResult, 0)

	for _, e := range estimations {
		for _, r := range e.Results {
			key := r.Key()
			if i, ok := index[key]; ok {
				out[i].Quantity += r.Quantity
				continue
			}
			index[key] = len(out)
			out = append(out, entities.AggregatedResult{
				Material: r.Material,
				Quantity: r.Quantity,
				Unit:     r.Unit,
			})
		}
	}
	return out
}
