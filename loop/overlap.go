// overlap.go implements the overlap filter: reject any candidate whose
// outbound/return overlap exceeds the configured threshold.
package loop

func overlap(outbound, ret []string) float64 {
	if len(outbound) == 0 || len(ret) == 0 {
		return 0
	}

	set := make(map[string]bool, len(outbound))
	for _, id := range outbound {
		set[id] = true
	}

	common := 0
	for _, id := range ret {
		if set[id] {
			common++
		}
	}

	byOutbound := float64(common) / float64(len(outbound))
	byReturn := float64(common) / float64(len(ret))

	if byOutbound > byReturn {
		return byOutbound
	}

	return byReturn
}

func filterOverlap(candidates []candidate, threshold float64) []candidate {
	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if overlap(c.OutboundEdges, c.ReturnEdges) <= threshold {
			kept = append(kept, c)
		}
	}

	return kept
}
