package purchase

// InferDisplayCurrency picks the single display currency for a dataset
// by simple majority vote over the purchases' currency codes. Ties go to
// the code seen first; an empty dataset reports USD. This chooses the
// currency the user primarily transacts in for uniform formatting, it
// performs no exchange-rate conversion.
func InferDisplayCurrency(ps []Purchase) string {
	counts := make(map[string]int, 4)
	var order []string
	for _, p := range ps {
		if counts[p.Currency] == 0 {
			order = append(order, p.Currency)
		}
		counts[p.Currency]++
	}

	best := DefaultCurrency
	bestCount := 0
	for _, code := range order {
		if counts[code] > bestCount {
			best = code
			bestCount = counts[code]
		}
	}
	return best
}
