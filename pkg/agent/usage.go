package agent

import "github.com/assaylab/assay/pkg/models"

// AggregateUsage rolls per-call usage entries into the blob persisted on
// runs and phase metrics. Providers and Models count calls per name.
func AggregateUsage(entries []models.LLMUsage) *models.AggregatedUsage {
	agg := &models.AggregatedUsage{CallCount: len(entries)}
	for _, u := range entries {
		agg.InputTokens += u.InputTokens
		agg.OutputTokens += u.OutputTokens
		agg.TotalTokens += u.TotalTokens
		agg.CostUSD += u.CostUSD
		if u.Provider != "" {
			if agg.Providers == nil {
				agg.Providers = make(map[string]int)
			}
			agg.Providers[u.Provider]++
		}
		if u.Model != "" {
			if agg.Models == nil {
				agg.Models = make(map[string]int)
			}
			agg.Models[u.Model]++
		}
	}
	return agg
}

// MergeAggregates sums already-aggregated usage blobs, used to roll phase
// aggregates into the run-level aggregate.
func MergeAggregates(parts ...*models.AggregatedUsage) *models.AggregatedUsage {
	agg := &models.AggregatedUsage{}
	for _, p := range parts {
		if p == nil {
			continue
		}
		agg.InputTokens += p.InputTokens
		agg.OutputTokens += p.OutputTokens
		agg.TotalTokens += p.TotalTokens
		agg.CallCount += p.CallCount
		agg.CostUSD += p.CostUSD
		for name, n := range p.Providers {
			if agg.Providers == nil {
				agg.Providers = make(map[string]int)
			}
			agg.Providers[name] += n
		}
		for name, n := range p.Models {
			if agg.Models == nil {
				agg.Models = make(map[string]int)
			}
			agg.Models[name] += n
		}
	}
	return agg
}
