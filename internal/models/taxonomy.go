package models

// The fixed category taxonomy. Both the classifier and the presentation layer
// reference these lists so the two cannot drift apart. Order matters for
// display; the classifier carries its own priority-ordered keyword tables.

// ExpenseCategories is the closed set of expense categories.
var ExpenseCategories = []string{
	CategoryHousing,
	CategoryTransportation,
	CategoryFood,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryTravel,
	CategoryOther,
}

// IncomeCategories is the closed set of income categories.
var IncomeCategories = []string{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryBusiness,
	CategoryGift,
	CategoryOther,
}

// Expense category names.
const (
	CategoryHousing        = "Housing"
	CategoryTransportation = "Transportation"
	CategoryFood           = "Food"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryEducation      = "Education"
	CategoryTravel         = "Travel"
)

// Income category names.
const (
	CategorySalary     = "Salary"
	CategoryFreelance  = "Freelance"
	CategoryInvestment = "Investment"
	CategoryBusiness   = "Business"
	CategoryGift       = "Gift"
)

// CategoryOther is the catch-all in both taxonomies.
const CategoryOther = "Other"

// CategoriesFor returns the taxonomy for the given transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// KnownCategory reports whether name belongs to the taxonomy for type t.
func KnownCategory(name string, t TransactionType) bool {
	for _, c := range CategoriesFor(t) {
		if c == name {
			return true
		}
	}
	return false
}

// CategoryConfig represents one category's keyword list, in priority order.
type CategoryConfig struct {
	Name     string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// KeywordTables represents the structure of the keyword override YAML file:
// two ordered lists of category/keyword entries, one per transaction type.
type KeywordTables struct {
	Expense []CategoryConfig `yaml:"expense"`
	Income  []CategoryConfig `yaml:"income"`
}
