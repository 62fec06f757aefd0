package skincare

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultRecommendation is returned when the knowledge table has nothing for
// the requested issue and skin type.
const DefaultRecommendation = `✅ General Skincare Recommendations:
- Use a gentle cleanser
- Apply sunscreen daily
- Avoid over-exfoliating
- Maintain hydration`

// allSkinTypes tags rows that apply regardless of skin type.
const allSkinTypes = "all"

// Tier tells which matching rule produced a recommendation.
type Tier string

const (
	TierSkinType Tier = "skin_type"
	TierAll      Tier = "all"
	TierDefault  Tier = "default"
)

// Step describes one filtering pass over the table.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

// Recommendation is the outcome of a knowledge table lookup.
type Recommendation struct {
	Text  string
	Tier  Tier
	Rows  []Row
	Steps []Step
}

// Resolver turns a canonical issue and skin type into recommendation text.
// It only reads its table and is safe for concurrent use.
type Resolver struct {
	table *Table
}

func NewResolver(table *Table) *Resolver {
	if table == nil {
		table = NewTable(nil)
	}
	return &Resolver{table: table}
}

// Recommend matches issue against row keywords, then narrows by skin type,
// falling back to rows tagged "all". When neither tier yields rows the
// DefaultRecommendation is returned, so Text is never empty.
func (r *Resolver) Recommend(issue Issue, skinType SkinType) Recommendation {
	needle := strings.ToLower(string(issue))
	rows := r.table.rows

	var steps []Step

	matched, step := filterRows("keywords", rows, func(row Row) bool {
		return containsFold(row.Keywords, needle)
	})
	steps = append(steps, step)

	if len(matched) == 0 {
		return defaultRecommendation(steps)
	}

	tier := TierSkinType
	filtered, step := filterRows("skin_type", matched, func(row Row) bool {
		return containsFold(row.SkinType, string(skinType))
	})
	steps = append(steps, step)

	if len(filtered) == 0 {
		tier = TierAll
		filtered, step = filterRows("all_skin_types", matched, func(row Row) bool {
			return containsFold(row.SkinType, allSkinTypes)
		})
		steps = append(steps, step)
	}

	if len(filtered) == 0 {
		return defaultRecommendation(steps)
	}

	return Recommendation{
		Text:  formatRows(filtered),
		Tier:  tier,
		Rows:  filtered,
		Steps: steps,
	}
}

func defaultRecommendation(steps []Step) Recommendation {
	return Recommendation{Text: DefaultRecommendation, Tier: TierDefault, Steps: steps}
}

func filterRows(name string, rows []Row, keep func(Row) bool) ([]Row, Step) {
	var out []Row
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out, Step{Name: name, Initial: len(rows), Dropped: len(rows) - len(out), Left: len(out)}
}

func formatRows(rows []Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("✅ ")
		b.WriteString(Capitalize(row.IssueCategory))
		b.WriteString(":\n")
		b.WriteString("- Ingredients: ")
		b.WriteString(row.Ingredients)
		b.WriteString("\n")
		b.WriteString("- Products: ")
		b.WriteString(row.Product)
		b.WriteString("\n\n")
	}
	return strings.TrimRightFunc(b.String(), unicode.IsSpace)
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
