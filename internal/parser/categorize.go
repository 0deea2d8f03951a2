package parser

import (
	"strings"

	"github.com/paisatrail/paisa-trail/internal/model"
)

// transferThreshold marks the amount above which an otherwise-uncategorized
// UPI debit is presumed a peer-to-peer transfer (typically rent) rather
// than retail spend.
const transferThreshold = 5000

// categoryRules is the pinned keyword table. It is an ordered slice, never a
// map: categories are mutually exclusive by first match, so the declared
// order is part of the contract ("zomato" resolves to Food & Dining even if
// a later list coincidentally shared a term). Treated as immutable after
// process start.
var categoryRules = []model.CategoryRule{
	{Category: model.CategoryFoodDining, Keywords: []string{
		"zomato", "swiggy", "pizza", "burger", "kfc", "mcdonalds", "starbucks",
		"cafe", "coffee", "restaurant", "dining", "food", "bakery", "blinkit", "zepto",
	}},
	{Category: model.CategoryTransportation, Keywords: []string{
		"uber", "ola", "rapido", "petrol", "fuel", "pump", "shell", "indian oil",
		"hpcl", "bpcl", "metro", "toll", "parking", "fastag",
	}},
	{Category: model.CategoryEntertainment, Keywords: []string{
		"netflix", "spotify", "youtube", "prime", "hotstar", "cinema", "movie",
		"bookmyshow", "pvr", "inox", "theatre", "game", "steam", "playstation",
	}},
	{Category: model.CategoryShopping, Keywords: []string{
		"amazon", "flipkart", "myntra", "ajio", "zara", "h&m", "uniqlo",
		"decathlon", "retail", "store", "fashion", "cloth", "mall", "mart", "supermarket",
	}},
	{Category: model.CategoryUtilities, Keywords: []string{
		"electricity", "power", "bescom", "water", "gas", "bill", "recharge",
		"jio", "airtel", "vodafone", "bsnl", "broadband", "internet", "wifi",
	}},
	{Category: model.CategoryHealth, Keywords: []string{
		"pharmacy", "medical", "hospital", "clinic", "doctor", "apollo",
		"1mg", "pharmeasy", "medplus",
	}},
	{Category: model.CategoryTravel, Keywords: []string{
		"irctc", "rail", "flight", "indigo", "air india", "makemytrip",
		"hotel", "booking.com", "airbnb", "goibibo",
	}},
}

// categorize assigns exactly one category. Credits are always Income.
// Debits take the first rule whose keyword appears in the body or the
// extracted description (merchant text sometimes survives only in the
// description), then the large-UPI transfer heuristic, then Uncategorized.
func categorize(lowerBody, description string, direction model.Direction, amount float64) model.Category {
	if direction == model.DirectionCredit {
		return model.CategoryIncome
	}

	lowerDesc := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, k := range rule.Keywords {
			if strings.Contains(lowerBody, k) || strings.Contains(lowerDesc, k) {
				return rule.Category
			}
		}
	}

	if strings.HasPrefix(description, "UPI: ") && amount > transferThreshold {
		return model.CategoryTransferRent
	}
	return model.CategoryUncategorized
}

// CategoryTable returns a copy of the ordered category keyword table for
// display and API use.
func CategoryTable() []model.CategoryRule {
	out := make([]model.CategoryRule, len(categoryRules))
	for i, rule := range categoryRules {
		out[i] = model.CategoryRule{
			Category: rule.Category,
			Keywords: append([]string(nil), rule.Keywords...),
		}
	}
	return out
}
