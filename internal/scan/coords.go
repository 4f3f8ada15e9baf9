package scan

import (
	"strings"
	"unicode"
)

// basePairs is the fixed set of X->Y variable associations. Order matters only
// for documentation; lookups go through the resolved map.
var basePairs = [][2]string{
	{"OrigTgX", "OrigTgY"},
	{"FusionX", "FusionY"},
	{"KalmanTgX", "KalmanTgY"},
	{"WX", "WY"},
	{"LXW", "LYW"},
	{"RWX", "RWY"},
	{"current_coord.x", "current_coord.y"},
}

// CoordPairs builds the X->Y variable mapping for a session. A custom variable
// not already present registers its own pair: a trailing "X" is replaced by
// "Y", otherwise "Y" is appended. A single alphabetic character additionally
// registers R<c> -> R<c>Y. Extra pairs (from config) are merged last and never
// override an existing key.
func CoordPairs(customVar string, extra map[string]string) map[string]string {
	pairs := make(map[string]string, len(basePairs)+len(extra)+2)
	for _, p := range basePairs {
		pairs[p[0]] = p[1]
	}

	customVar = strings.TrimSpace(customVar)
	if customVar != "" {
		if _, ok := pairs[customVar]; !ok {
			if strings.HasSuffix(customVar, "X") {
				pairs[customVar] = strings.TrimSuffix(customVar, "X") + "Y"
			} else {
				pairs[customVar] = customVar + "Y"
			}
		}
		if isSingleAlpha(customVar) {
			pairs["R"+customVar] = "R" + customVar + "Y"
		}
	}

	for x, y := range extra {
		if _, ok := pairs[x]; !ok {
			pairs[x] = y
		}
	}
	return pairs
}

func isSingleAlpha(s string) bool {
	runes := []rune(s)
	return len(runes) == 1 && unicode.IsLetter(runes[0])
}
