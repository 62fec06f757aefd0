package skincare

import "strings"

// SkinType is a canonical skin type derived from free text.
type SkinType string

const (
	SkinOily            SkinType = "oily"
	SkinDry             SkinType = "dry"
	SkinSensitive       SkinType = "sensitive"
	SkinCombination     SkinType = "combination"
	SkinCombinationOily SkinType = "combination-oily"
	SkinCombinationDry  SkinType = "combination-dry"
	SkinUnknown         SkinType = "unknown"
)

func (s SkinType) String() string { return string(s) }

// Issue is a canonical, lowercase skin concern.
type Issue string

func (i Issue) String() string { return string(i) }

var issueSynonyms = map[string]Issue{
	"pimples":        "acne",
	"whiteheads":     "acne",
	"breakouts":      "acne",
	"dark spots":     "pigmentation",
	"melasma":        "pigmentation",
	"rough skin":     "texture",
	"uneven texture": "texture",
	"flaky":          "dryness",
	"irritation":     "redness",
	"under-eye bags": "dark_circles",
	"fine lines":     "early_aging",
	"wrinkles":       "early_aging",
	"oily skin":      "oiliness",
	"shiny skin":     "oiliness",
	"sensitive skin": "sensitivity",
}

// NormalizeSkinType maps free text onto a SkinType. Combination types are
// checked before the plain ones, so "combination oily" never becomes "oily".
func NormalizeSkinType(raw string) SkinType {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return SkinUnknown
	}

	comb := strings.Contains(t, "comb")
	switch {
	case comb && strings.Contains(t, "oily"):
		return SkinCombinationOily
	case comb && strings.Contains(t, "dry"):
		return SkinCombinationDry
	case comb:
		return SkinCombination
	case strings.Contains(t, "oily"):
		return SkinOily
	case strings.Contains(t, "dry"):
		return SkinDry
	case strings.Contains(t, "sens"):
		return SkinSensitive
	default:
		return SkinUnknown
	}
}

// NormalizeIssue resolves exact synonyms ("pimples" -> "acne") and passes
// anything else through lowercased and trimmed.
func NormalizeIssue(raw string) Issue {
	t := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := issueSynonyms[t]; ok {
		return canonical
	}
	return Issue(t)
}
