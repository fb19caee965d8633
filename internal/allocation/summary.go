package allocation

import (
	"errors"
	"sort"

	"budget-tracker/internal/domain"

	"github.com/shopspring/decimal"
)

// UncategorizedLabel names the group for transactions without a category.
const UncategorizedLabel = "Uncategorized"

var (
	// ErrMissingProfile means the user has not configured a profile yet;
	// an allocation summary has no meaning without targets.
	ErrMissingProfile = errors.New("financial profile not found")
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
	ErrInvalidPeriod  = errors.New("period must be one of week, month, year")
)

var hundred = decimal.NewFromInt(100)

type BucketAmounts struct {
	Needs  decimal.Decimal `json:"needs"`
	Wants  decimal.Decimal `json:"wants"`
	Future decimal.Decimal `json:"future"`
}

func (a BucketAmounts) Get(b domain.Bucket) decimal.Decimal {
	switch b {
	case domain.BucketNeeds:
		return a.Needs
	case domain.BucketWants:
		return a.Wants
	case domain.BucketFuture:
		return a.Future
	}
	return decimal.Zero
}

func (a *BucketAmounts) add(b domain.Bucket, v decimal.Decimal) {
	switch b {
	case domain.BucketNeeds:
		a.Needs = a.Needs.Add(v)
	case domain.BucketWants:
		a.Wants = a.Wants.Add(v)
	case domain.BucketFuture:
		a.Future = a.Future.Add(v)
	}
}

type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Targets BucketAmounts   `json:"targets"`
	Actual  BucketAmounts   `json:"actual"`
}

// Targets computes the dollar target of every bucket from the profile.
func Targets(p domain.Profile) BucketAmounts {
	var t BucketAmounts
	for _, b := range domain.BucketOrder {
		t.add(b, p.MonthlyIncomeTarget.Mul(p.Percentage(b)).Div(hundred))
	}
	return t
}

// SummarizeAllocation sums expenses per bucket for dates in [start, end) and
// sets them against the profile targets. Expenses whose category has no
// bucket are left out of the bucket sums. Reported income falls back to the
// profile target while no income is logged for the period.
func SummarizeAllocation(txs []domain.Transaction, profile *domain.Profile, start, end domain.Date) (Summary, error) {
	if profile == nil {
		return Summary{}, ErrMissingProfile
	}

	var actual BucketAmounts
	income := decimal.Zero
	for _, t := range txs {
		if t.Date.Before(start.Time) || !t.Date.Before(end.Time) {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			income = income.Add(t.Amount)
		case domain.TransactionExpense:
			if b, ok := t.Bucket(); ok {
				actual.add(b, t.Amount)
			}
		}
	}

	if income.IsZero() {
		income = profile.MonthlyIncomeTarget
	}

	return Summary{
		Income:  income,
		Targets: Targets(*profile),
		Actual:  actual,
	}, nil
}

type BucketCompliance struct {
	Percent int  `json:"percent"`
	Over    bool `json:"over"`
}

type Compliance struct {
	Needs  BucketCompliance `json:"needs"`
	Wants  BucketCompliance `json:"wants"`
	Future BucketCompliance `json:"future"`
}

// ComplianceOf rates actual spend against target per bucket as a whole
// percent. A zero target yields 0 rather than a division by zero.
func ComplianceOf(s Summary) Compliance {
	rate := func(b domain.Bucket) BucketCompliance {
		target, actual := s.Targets.Get(b), s.Actual.Get(b)
		if !target.IsPositive() {
			return BucketCompliance{}
		}
		return BucketCompliance{
			Percent: int(actual.Div(target).Mul(hundred).Round(0).IntPart()),
			Over:    actual.GreaterThan(target),
		}
	}
	return Compliance{
		Needs:  rate(domain.BucketNeeds),
		Wants:  rate(domain.BucketWants),
		Future: rate(domain.BucketFuture),
	}
}

type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type Insights struct {
	TotalExpenses      decimal.Decimal  `json:"total_expenses"`
	TotalIncome        decimal.Decimal  `json:"total_income"`
	Balance            decimal.Decimal  `json:"balance"`
	SpendingByCategory []CategoryAmount `json:"spending_by_category"`
	IncomeByCategory   []CategoryAmount `json:"income_by_category"`
	TransactionCount   int              `json:"transaction_count"`
}

// SummarizeInsights aggregates every transaction dated on or after start in
// one pass. Category lists are sorted by value, largest first; equal values
// keep the order in which the categories were first seen.
func SummarizeInsights(txs []domain.Transaction, start domain.Date) Insights {
	type groupKey struct {
		typ  domain.TransactionType
		name string
	}

	index := make(map[groupKey]int)
	var groups []CategoryAmount
	var groupTypes []domain.TransactionType

	out := Insights{
		TotalExpenses: decimal.Zero,
		TotalIncome:   decimal.Zero,
	}
	for _, t := range txs {
		if t.Date.Before(start.Time) {
			continue
		}
		out.TransactionCount++

		name := UncategorizedLabel
		if t.Category != nil && t.Category.Name != "" {
			name = t.Category.Name
		}
		key := groupKey{typ: t.Type, name: name}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, CategoryAmount{Name: name, Value: decimal.Zero})
			groupTypes = append(groupTypes, t.Type)
		}
		groups[i].Value = groups[i].Value.Add(t.Amount)

		switch t.Type {
		case domain.TransactionExpense:
			out.TotalExpenses = out.TotalExpenses.Add(t.Amount)
		case domain.TransactionIncome:
			out.TotalIncome = out.TotalIncome.Add(t.Amount)
		}
	}

	out.SpendingByCategory = make([]CategoryAmount, 0)
	out.IncomeByCategory = make([]CategoryAmount, 0)
	for i, g := range groups {
		switch groupTypes[i] {
		case domain.TransactionExpense:
			out.SpendingByCategory = append(out.SpendingByCategory, g)
		case domain.TransactionIncome:
			out.IncomeByCategory = append(out.IncomeByCategory, g)
		}
	}
	sortByValueDesc(out.SpendingByCategory)
	sortByValueDesc(out.IncomeByCategory)

	out.Balance = out.TotalIncome.Sub(out.TotalExpenses)
	return out
}

func sortByValueDesc(items []CategoryAmount) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Value.GreaterThan(items[j].Value)
	})
}

// SavingsRate is the share of income not spent, in percent. It is 0 when
// there is no income.
func SavingsRate(in Insights) decimal.Decimal {
	if in.TotalIncome.IsZero() {
		return decimal.Zero
	}
	return in.TotalIncome.Sub(in.TotalExpenses).Div(in.TotalIncome).Mul(hundred)
}
