package inventory

// slotGroup keys supply distribution: every row in a (date, property) group
// shares one supply figure.
type slotGroup struct {
	date     string
	property string
}

// distributeSupply broadcasts the group-sum of per-row slot counts to every
// row in the group. Allocation itself is untouched; the sum of allocations
// exceeding supply is possible and deliberately not asserted.
func distributeSupply(rows []catRow) {
	sums := make(map[slotGroup]int64, len(rows))
	for i := range rows {
		k := slotGroup{rows[i].date, rows[i].property}
		sums[k] += rows[i].slots
	}
	for i := range rows {
		rows[i].supply = sums[slotGroup{rows[i].date, rows[i].property}]
	}
}

// perSlotImpressions converts group-total impressions to per-slot figures.
// A zero-supply group would divide by zero; those rows read as zero
// impressions and the group is counted for the verification summary.
func perSlotImpressions(rows []catRow) (zeroSupplyGroups int) {
	counted := make(map[slotGroup]bool)
	for i := range rows {
		if rows[i].supply == 0 {
			k := slotGroup{rows[i].date, rows[i].property}
			if rows[i].impressions != 0 && !counted[k] {
				counted[k] = true
				zeroSupplyGroups++
			}
			rows[i].impressions = 0
			continue
		}
		rows[i].impressions = rows[i].impressions / float64(rows[i].supply)
	}
	return zeroSupplyGroups
}
