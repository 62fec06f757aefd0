package skincare

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleTable() *Table {
	return NewTable([]Row{
		{Keywords: "acne, pimples", SkinType: "oily", IssueCategory: "ACNE", Ingredients: "Salicylic acid", Product: "BHA cleanser"},
		{Keywords: "acne", SkinType: "all", IssueCategory: "acne care", Ingredients: "Niacinamide", Product: "Niacinamide serum"},
		{Keywords: "dryness, flaky", SkinType: "dry, combination-dry", IssueCategory: "dryness", Ingredients: "Ceramides", Product: "Barrier cream"},
		{Keywords: "Redness", SkinType: "sensitive", IssueCategory: "redness", Ingredients: "Centella", Product: "Cica balm"},
	})
}

func TestRecommendMatchesSkinType(t *testing.T) {
	t.Parallel()

	rec := NewResolver(sampleTable()).Recommend("acne", SkinOily)

	expected := "✅ Acne:\n- Ingredients: Salicylic acid\n- Products: BHA cleanser"
	if rec.Text != expected {
		t.Fatalf("unexpected text:\n%q\nexpected:\n%q", rec.Text, expected)
	}
	if rec.Tier != TierSkinType {
		t.Fatalf("expected tier %q, got %q", TierSkinType, rec.Tier)
	}
}

func TestRecommendFallsBackToAllSkinTypes(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleTable())
	for _, skin := range []SkinType{SkinDry, SkinSensitive, SkinUnknown} {
		rec := resolver.Recommend("acne", skin)
		if rec.Tier != TierAll {
			t.Fatalf("%s: expected tier %q, got %q", skin, TierAll, rec.Tier)
		}
		expected := "✅ Acne care:\n- Ingredients: Niacinamide\n- Products: Niacinamide serum"
		if rec.Text != expected {
			t.Fatalf("%s: unexpected text %q", skin, rec.Text)
		}
	}
}

func TestRecommendCombinationSkinMatchesBySubstring(t *testing.T) {
	t.Parallel()

	rec := NewResolver(sampleTable()).Recommend("dryness", SkinCombinationDry)
	if rec.Tier != TierSkinType || len(rec.Rows) != 1 {
		t.Fatalf("expected one skin type match, got tier %q rows %d", rec.Tier, len(rec.Rows))
	}

	// "dry" is a substring of "combination-dry", so plain dry skin matches too.
	rec = NewResolver(sampleTable()).Recommend("dryness", SkinDry)
	if rec.Tier != TierSkinType {
		t.Fatalf("expected dry skin to match, got tier %q", rec.Tier)
	}
}

func TestRecommendKeywordMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	rec := NewResolver(sampleTable()).Recommend("REDNESS", SkinSensitive)
	if !strings.HasPrefix(rec.Text, "✅ Redness:") {
		t.Fatalf("unexpected text %q", rec.Text)
	}
}

func TestRecommendDefaultWhenNoKeywordMatches(t *testing.T) {
	t.Parallel()

	rec := NewResolver(sampleTable()).Recommend("hair loss", SkinOily)
	if rec.Text != DefaultRecommendation || rec.Tier != TierDefault {
		t.Fatalf("expected default recommendation, got tier %q text %q", rec.Tier, rec.Text)
	}
	if len(rec.Steps) != 1 || rec.Steps[0].Left != 0 {
		t.Fatalf("unexpected steps: %+v", rec.Steps)
	}
}

func TestRecommendDefaultWhenNoSkinTypeOrAllRow(t *testing.T) {
	t.Parallel()

	table := NewTable([]Row{
		{Keywords: "acne", SkinType: "oily", IssueCategory: "acne", Ingredients: "BHA", Product: "Toner"},
	})

	rec := NewResolver(table).Recommend("acne", SkinDry)
	if rec.Text != DefaultRecommendation {
		t.Fatalf("expected default recommendation, got %q", rec.Text)
	}
	if rec.Tier != TierDefault {
		t.Fatalf("expected default tier, got %q", rec.Tier)
	}

	expectedSteps := []Step{
		{Name: "keywords", Initial: 1, Dropped: 0, Left: 1},
		{Name: "skin_type", Initial: 1, Dropped: 1, Left: 0},
		{Name: "all_skin_types", Initial: 1, Dropped: 1, Left: 0},
	}
	if diff := cmp.Diff(expectedSteps, rec.Steps); diff != "" {
		t.Fatalf("unexpected steps (-want +got):\n%s", diff)
	}
}

func TestRecommendKeepsTableOrder(t *testing.T) {
	t.Parallel()

	table := NewTable([]Row{
		{Keywords: "acne", SkinType: "all", IssueCategory: "second", Ingredients: "B", Product: "b"},
		{Keywords: "acne", SkinType: "all", IssueCategory: "first", Ingredients: "A", Product: "a"},
	})

	rec := NewResolver(table).Recommend("acne", SkinUnknown)
	expected := "✅ Second:\n- Ingredients: B\n- Products: b\n\n✅ First:\n- Ingredients: A\n- Products: a"
	if rec.Text != expected {
		t.Fatalf("unexpected text:\n%q", rec.Text)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(sampleTable())
	first := resolver.Recommend("acne", SkinOily)
	for i := 0; i < 10; i++ {
		if got := resolver.Recommend("acne", SkinOily); got.Text != first.Text {
			t.Fatalf("recommendation changed between calls: %q vs %q", got.Text, first.Text)
		}
	}
}

func TestRecommendEmptyTable(t *testing.T) {
	t.Parallel()

	rec := NewResolver(nil).Recommend("acne", SkinOily)
	if rec.Text != DefaultRecommendation {
		t.Fatalf("expected default recommendation for empty table, got %q", rec.Text)
	}
}

func TestNewTableCopiesRows(t *testing.T) {
	t.Parallel()

	rows := []Row{{Keywords: "acne", SkinType: "all", IssueCategory: "acne"}}
	table := NewTable(rows)
	rows[0].Keywords = "changed"

	if got := table.Rows()[0].Keywords; got != "acne" {
		t.Fatalf("table was mutated through source slice: %q", got)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", table.Len())
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":             "",
		"acne":         "Acne",
		"DARK_CIRCLES": "Dark_circles",
		"early aging":  "Early aging",
		"éclat":        "Éclat",
	}
	for input, expect := range tests {
		if got := Capitalize(input); got != expect {
			t.Fatalf("Capitalize(%q) = %q, expected %q", input, got, expect)
		}
	}
}
