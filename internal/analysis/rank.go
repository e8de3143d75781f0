package analysis

import "sort"

func sortByReturnDesc(results []RowResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.Summary.ReturnPct > results[j].Result.Summary.ReturnPct
	})
}
