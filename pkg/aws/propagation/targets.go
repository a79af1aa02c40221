package propagation

import (
	"sort"
)

// computeTargets resolves every subnet to its effective route table, the
// explicit association when one exists and the main table otherwise, and
// returns the deduplicated target set. Single pass with O(1) lookup per
// subnet. The result is sorted for deterministic processing order.
func computeTargets(subnetIds []string, associations map[string]string, mainRouteTableId string) []string {
	seen := make(map[string]struct{}, len(subnetIds))
	targets := make([]string, 0, len(subnetIds))

	for _, subnetId := range subnetIds {
		routeTableId, ok := associations[subnetId]
		if !ok || routeTableId == "" {
			routeTableId = mainRouteTableId
		}

		if _, duplicate := seen[routeTableId]; duplicate {
			continue
		}
		seen[routeTableId] = struct{}{}
		targets = append(targets, routeTableId)
	}

	sort.Strings(targets)
	return targets
}
