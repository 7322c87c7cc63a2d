package models

// DefaultCategories is the category list seeded for every new user.
// "Other" is the fallback for expenses created without a category.
var DefaultCategories = []string{
	"Groceries",
	"Utilities",
	"Rent",
	"Internet",
	"Household Items",
	"Entertainment",
	"Other",
}

// Expense represents one shared cost recorded by a user.
// Expenses are immutable: they are created, possibly deleted, never edited.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// UserID is the owning user's account ID.
	UserID string

	// Description is free text ("Rent May", "Pizza night").
	Description string

	// Amount is the full cost of the expense. Non-negative.
	Amount float64

	// Payer is the roster name of whoever paid.
	// Validated against the roster at entry time only.
	Payer string

	// SplitWith lists the roster names sharing this expense.
	// Empty means "split across the entire roster as it stands when
	// balances are computed", not the roster at entry time.
	SplitWith []string

	// Category is a label from the user's category list.
	Category string

	// Date is the expense date in YYYY-MM-DD form.
	Date string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
