package model

// Category is one of a fixed, closed set of spending categories. The set is
// static; there is no user-defined taxonomy.
type Category string

// The full category taxonomy. Debits resolve to one of the spend categories
// via keyword matching, credits are always Income.
const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryShopping       Category = "Shopping"
	CategoryUtilities      Category = "Utilities"
	CategoryHealth         Category = "Health"
	CategoryTravel         Category = "Travel"
	CategoryIncome         Category = "Income"
	CategoryTransferRent   Category = "Transfer/Rent"
	CategoryUncategorized  Category = "Uncategorized"
)

// CategoryRule binds a category to the keywords that select it. Rules live
// in an ordered slice, never a map: matching is first-rule-wins and the
// declared order is part of the contract.
type CategoryRule struct {
	Category Category `json:"category"`
	Keywords []string `json:"keywords"`
}
