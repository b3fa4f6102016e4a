package terms

// GapProfile records, for every token of text, the number of consecutive
// non-hit tokens that preceded it when it is a hit, and 0 otherwise. hits is
// used as a membership set, not aligned by position.
func GapProfile(text, hits []string) []int {
	set := make(map[string]struct{}, len(hits))
	for _, h := range hits {
		set[h] = struct{}{}
	}

	gaps := make([]int, 0, len(text))
	run := 0
	for _, tok := range text {
		if _, ok := set[tok]; ok {
			gaps = append(gaps, run)
			run = 0
			continue
		}
		gaps = append(gaps, 0)
		run++
	}

	// Unreachable while len(gaps) == len(text) >= len(hits); kept so a hit
	// sequence longer than text still contributes its trailing run.
	if len(hits) > 0 && len(gaps) < len(hits) {
		gaps = append(gaps, run)
	}
	return gaps
}

func Sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
