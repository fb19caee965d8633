// internal/domain/seed.go
package domain

type DefaultCategory struct {
	Name   string
	Type   TransactionType
	Bucket Bucket // пусто для доходов
	Icon   string
}

// DefaultCategories is the starter set created together with a user's profile.
var DefaultCategories = []DefaultCategory{
	{"Rent/Mortgage", TransactionExpense, BucketNeeds, "🏠"},
	{"Groceries", TransactionExpense, BucketNeeds, "🛒"},
	{"Utilities", TransactionExpense, BucketNeeds, "⚡"},
	{"Insurance", TransactionExpense, BucketNeeds, "🛡️"},
	{"Transportation", TransactionExpense, BucketNeeds, "🚗"},
	{"Healthcare", TransactionExpense, BucketNeeds, "🏥"},

	{"Dining Out", TransactionExpense, BucketWants, "🍽️"},
	{"Entertainment", TransactionExpense, BucketWants, "🎬"},
	{"Shopping", TransactionExpense, BucketWants, "🛍️"},
	{"Subscriptions", TransactionExpense, BucketWants, "📺"},
	{"Hobbies", TransactionExpense, BucketWants, "🎨"},

	{"Savings", TransactionExpense, BucketFuture, "💰"},
	{"Investments", TransactionExpense, BucketFuture, "📈"},
	{"Emergency Fund", TransactionExpense, BucketFuture, "🏦"},
	{"Debt Repayment", TransactionExpense, BucketFuture, "💳"},

	{"Salary", TransactionIncome, "", "💵"},
	{"Freelance", TransactionIncome, "", "💼"},
	{"Other Income", TransactionIncome, "", "💸"},
}
