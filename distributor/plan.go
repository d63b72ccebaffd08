package distributor

import (
	"github.com/polyglotdb/coordinator/errorkinds"
	"github.com/polyglotdb/coordinator/model"
)

// pickReachable implements the "keep the first reachable target, else follow the fallback chain"
// fallback rule below.
func pickReachable(snapshot *model.AvailabilitySnapshot, target model.DistributionTarget) (kind model.StoreKind, reason string, fallback bool, ok bool) {
	if snapshot.IsReachable(target.StoreKind) {
		return target.StoreKind, "primary reachable", false, true
	}
	for _, fb := range target.Fallbacks {
		if snapshot.IsReachable(fb) {
			return fb, "fallback to " + string(fb), true, true
		}
	}
	return "", "", false, false
}

// buildPlan walks the routing table: for each category, pick the first reachable target
// (else a fallback); if a critical category is left uncoverable, fail immediately with
// unrecoverable_unavailability and no side effects (the plan is discarded, never executed).
func buildPlan(snapshot *model.AvailabilitySnapshot, documentID string, categories []model.ContentCategory) (*model.DistributionPlan, []model.RoutingDecision, error) {
	plan := model.NewDistributionPlan(documentID)
	var trace []model.RoutingDecision
	for _, cat := range categories {
		targets, ok := RoutingTable[cat]
		if !ok {
			continue
		}
		for _, target := range targets {
			kind, reason, fallback, reachable := pickReachable(snapshot, target)
			if !reachable {
				if target.Priority == model.PriorityCritical {
					return nil, trace, errorkinds.UnrecoverableUnavailability(string(cat))
				}
				trace = append(trace, model.RoutingDecision{Category: cat, Reason: "no reachable store, category skipped"})
				continue
			}
			chosen := target
			chosen.StoreKind = kind
			plan.Add(cat, chosen)
			trace = append(trace, model.RoutingDecision{Category: cat, StoreKind: kind, Reason: reason, Fallback: fallback})
		}
	}
	return plan, trace, nil
}
