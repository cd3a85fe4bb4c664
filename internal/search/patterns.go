package search

// Built-in pattern names.
const (
	PatternPhone    = "phone"
	PatternTransfer = "transfer"
)

// DefaultPatterns returns the built-in description classifiers.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			// Optional "+" and 10 to 15 digits that are not part of a longer digit run.
			Name:  PatternPhone,
			Regex: `(?:^|[^\d+])\+?\d{10,15}(?:$|\D)`,
		},
		{
			// Whole phrase; RE2's \b is ASCII-only so word edges are spelled out.
			Name:  PatternTransfer,
			Regex: `(?:^|[^\p{L}\p{N}_])перевод\s+физическому\s+лицу(?:$|[^\p{L}\p{N}_])`,
		},
	}
}
