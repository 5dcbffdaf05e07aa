package lambda

// MaxRun returns the length of the longest contiguous run of marker in
// template, or 0 when marker does not occur. A run is broken by any other
// rune, so "$ $" has a longest run of 1.
//
//	MaxRun("$ * $", '$')  // 1
//	MaxRun("$ + $$", '$') // 2
func MaxRun(template string, marker rune) int {
	longest, run := 0, 0
	for _, r := range template {
		if r != marker {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}
