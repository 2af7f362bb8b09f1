package phone

// Dedupe keeps the first occurrence of every value in order of appearance.
// The input is not modified; the result is never nil.
func Dedupe(numbers []string) []string {
	seen := make(map[string]struct{}, len(numbers))
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
