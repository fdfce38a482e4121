package store

// numericColumns keeps the numeric cells of a decoded JSON row. null and
// text cells are gaps and are left out, so views never read them as zero.
func numericColumns(row map[string]interface{}, skip ...string) map[string]float64 {
	out := make(map[string]float64, len(row))
	for k, v := range row {
		if contains(skip, k) {
			continue
		}
		if f, ok := v.(float64); ok {
			out[k] = f
		}
	}
	return out
}

func contains(keys []string, k string) bool {
	for _, s := range keys {
		if s == k {
			return true
		}
	}
	return false
}
