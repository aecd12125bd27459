package suggestion

import (
	"testing"

	"recipe-suggester/internal/pkg/common"
)

func TestScoreMatchAndMissing(t *testing.T) {
	candidate := &common.RecipeCandidate{
		ID:    "1",
		Title: "Chicken Fried Rice",
		Ingredients: []common.IngredientMeasure{
			{Name: "Chicken Breast", Measure: "200g"},
			{Name: "White Rice", Measure: "1 cup"},
			{Name: "Soy Sauce"},
		},
	}

	pct, missing := Score(candidate, []string{"chicken", "rice"})

	// 2/3 符合，整數截斷為 66
	if pct != 66 {
		t.Fatalf("expected match percentage 66, got %d", pct)
	}
	if len(missing) != 1 || missing[0] != "Soy Sauce" {
		t.Fatalf("expected missing [Soy Sauce], got %v", missing)
	}
}

func TestScoreEmptyIngredients(t *testing.T) {
	candidate := &common.RecipeCandidate{ID: "1", Title: "Empty"}

	pct, missing := Score(candidate, []string{"chicken"})
	if pct != 0 {
		t.Fatalf("expected 0 for empty ingredient list, got %d", pct)
	}
	if len(missing) != 0 {
		t.Fatalf("expected no missing ingredients, got %v", missing)
	}
}

func TestScoreMissingMeasureFormatting(t *testing.T) {
	candidate := &common.RecipeCandidate{
		ID: "1",
		Ingredients: []common.IngredientMeasure{
			{Name: "Soy Sauce", Measure: "2 tbsp"},
			{Name: "Sesame Oil", Measure: "  "},
		},
	}

	_, missing := Score(candidate, []string{"chicken"})
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing ingredients, got %v", missing)
	}
	if missing[0] != "Soy Sauce (2 tbsp)" {
		t.Fatalf("expected measure in parentheses, got %q", missing[0])
	}
	// 空白份量視同無份量
	if missing[1] != "Sesame Oil" {
		t.Fatalf("expected bare name for blank measure, got %q", missing[1])
	}
}

func TestScoreEveryIngredientClassifiedOnce(t *testing.T) {
	candidate := &common.RecipeCandidate{
		ID: "1",
		Ingredients: []common.IngredientMeasure{
			{Name: "Chicken Thigh"},
			{Name: "Garlic"},
			{Name: "Onion"},
			{Name: "Butter"},
		},
	}
	selected := []string{"chicken", "garlic"}

	pct, missing := Score(candidate, selected)

	if pct < 0 || pct > 100 {
		t.Fatalf("match percentage out of range: %d", pct)
	}

	// 比中的食材不得出現在缺少清單；全部食材必須恰好分類一次
	matched := 0
	for _, ing := range candidate.Ingredients {
		name := Normalize(ing.Name)
		isMatched := false
		for _, sel := range selected {
			if Matches(name, Normalize(sel)) {
				isMatched = true
				break
			}
		}
		inMissing := false
		for _, m := range missing {
			if m == ing.Name {
				inMissing = true
				break
			}
		}
		if isMatched == inMissing {
			t.Fatalf("ingredient %q classified inconsistently (matched=%v, missing=%v)", ing.Name, isMatched, inMissing)
		}
		if isMatched {
			matched++
		}
	}
	if matched+len(missing) != len(candidate.Ingredients) {
		t.Fatalf("classification not exhaustive: %d matched + %d missing != %d total",
			matched, len(missing), len(candidate.Ingredients))
	}
}
