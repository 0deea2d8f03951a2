package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paisatrail/paisa-trail/internal/model"
)

func TestCategorize_CreditIsAlwaysIncome(t *testing.T) {
	// Keyword matching is skipped entirely for credits.
	got := categorize("zomato refund credited", "Zomato", model.DirectionCredit, 500)

	assert.Equal(t, model.CategoryIncome, got)
}

func TestCategorize_KeywordTable(t *testing.T) {
	tests := []struct {
		name string
		body string
		want model.Category
	}{
		{"food delivery", "rs. 300 debited at swiggy", model.CategoryFoodDining},
		{"ride hailing", "rs. 150 paid to uber", model.CategoryTransportation},
		{"streaming", "rs. 649 debited for netflix subscription", model.CategoryEntertainment},
		{"online shopping", "rs. 2100 spent at amazon", model.CategoryShopping},
		{"mobile recharge", "rs. 239 paid for jio recharge", model.CategoryUtilities},
		{"pharmacy", "rs. 430 debited at apollo pharmacy", model.CategoryHealth},
		{"train booking", "rs. 1520 paid to irctc", model.CategoryTravel},
		{"no keyword", "rs. 100 debited from account", model.CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorize(tt.body, "", model.DirectionDebit, 100))
		})
	}
}

func TestCategorize_TableOrderIsFirstMatchWins(t *testing.T) {
	// "zomato" (Food & Dining) and "uber" (Transportation) both present:
	// Food & Dining is declared first and must win.
	got := categorize("rs. 500 debited at zomato via uber eats", "", model.DirectionDebit, 500)
	assert.Equal(t, model.CategoryFoodDining, got)

	// "uber" and "amazon" both present: Transportation precedes Shopping.
	got = categorize("rs. 500 paid to uber for amazon delivery", "", model.DirectionDebit, 500)
	assert.Equal(t, model.CategoryTransportation, got)
}

func TestCategorize_MatchesDescriptionToo(t *testing.T) {
	// Merchant text appears only in the extracted description, not the body.
	got := categorize("rs. 300 debited from account", "Zomato Online", model.DirectionDebit, 300)

	assert.Equal(t, model.CategoryFoodDining, got)
}

func TestCategorize_LargeUPIFallsBackToTransferRent(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      float64
		want        model.Category
	}{
		{"above threshold", "UPI: ramesh@upi", 5001, model.CategoryTransferRent},
		{"at threshold stays uncategorized", "UPI: ramesh@upi", 5000, model.CategoryUncategorized},
		{"below threshold", "UPI: ramesh@upi", 3500, model.CategoryUncategorized},
		{"non-UPI description never transfers", "Some Merchant", 9000, model.CategoryUncategorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categorize("rs. x sent to someone", tt.description, model.DirectionDebit, tt.amount)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryTable_PinnedOrder(t *testing.T) {
	table := CategoryTable()

	want := []model.Category{
		model.CategoryFoodDining,
		model.CategoryTransportation,
		model.CategoryEntertainment,
		model.CategoryShopping,
		model.CategoryUtilities,
		model.CategoryHealth,
		model.CategoryTravel,
	}
	require.Len(t, table, len(want))
	for i, cat := range want {
		assert.Equal(t, cat, table[i].Category, "table position %d", i)
	}
}

func TestCategoryTable_ReturnsACopy(t *testing.T) {
	table := CategoryTable()
	table[0].Keywords[0] = "mutated"

	assert.Equal(t, "zomato", CategoryTable()[0].Keywords[0])
}
