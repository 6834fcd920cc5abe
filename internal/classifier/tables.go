package classifier

import "fjacquet/budget-planner/internal/models"

// Built-in keyword tables. Order is significant twice over: categories are
// scanned in declaration order (priority order, not best-match order), and
// keywords within a category are scanned in declaration order. All keywords
// are lowercase. An optional YAML file can replace these tables wholesale;
// see LoadTables.
//
// Some keywords deliberately appear under more than one category ("gas" under
// both Transportation and Utilities, "insurance" under Transportation and
// Healthcare); the priority order resolves the ambiguity for single
// suggestions, and RankCategories exposes the alternatives.

func defaultExpenseTable() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryFood,
			Keywords: []string{
				"starbucks", "coffee", "cafe", "restaurant", "food", "lunch", "dinner",
				"breakfast", "pizza", "burger", "sushi", "mcdonald", "kfc", "subway",
				"doordash", "ubereats", "grubhub", "grocery", "supermarket", "whole foods",
				"trader joe", "safeway", "kroger", "walmart", "target", "latte", "drink",
				"meal", "snack", "bakery", "deli", "bar", "pub",
			},
		},
		{
			Name: models.CategoryTransportation,
			Keywords: []string{
				"uber", "lyft", "taxi", "gas", "fuel", "parking", "metro", "bus",
				"train", "subway", "transit", "car", "vehicle", "auto", "mechanic",
				"repair", "oil change", "tire", "registration", "insurance", "toll",
				"flight", "airline", "bike", "scooter", "rideshare",
			},
		},
		{
			Name: models.CategoryHousing,
			Keywords: []string{
				"rent", "mortgage", "landlord", "apartment", "house", "home",
				"property", "hoa", "maintenance", "repair", "furniture", "ikea",
				"home depot", "lowes", "decor", "renovation", "lease", "property tax",
			},
		},
		{
			Name: models.CategoryUtilities,
			Keywords: []string{
				"electric", "electricity", "gas", "water", "internet", "wifi",
				"phone", "mobile", "cable", "streaming", "netflix", "spotify",
				"hulu", "disney", "amazon prime", "utility", "bill", "comcast",
				"verizon", "at&t", "t-mobile", "heating", "cooling", "trash",
				"sewage", "youtube premium", "apple music",
			},
		},
		{
			Name: models.CategoryHealthcare,
			Keywords: []string{
				"doctor", "hospital", "pharmacy", "medicine", "prescription",
				"clinic", "dentist", "dental", "vision", "eye", "health",
				"medical", "insurance", "copay", "therapy", "therapist",
				"cvs", "walgreens", "rite aid", "urgent care", "checkup",
			},
		},
		{
			Name: models.CategoryEntertainment,
			Keywords: []string{
				"movie", "cinema", "theater", "concert", "show", "event",
				"game", "gaming", "xbox", "playstation", "nintendo", "steam",
				"museum", "park", "zoo", "amusement", "hobby",
				"sports", "gym", "fitness", "magazine",
			},
		},
		{
			Name: models.CategoryShopping,
			Keywords: []string{
				"amazon", "ebay", "shop", "store", "mall", "clothing", "clothes",
				"fashion", "shoes", "accessories", "jewelry", "electronics",
				"best buy", "apple store", "nike", "adidas", "zara", "h&m",
				"target", "walmart", "costco", "online", "purchase", "buy",
				"macys", "nordstrom", "sephora", "ulta",
			},
		},
		{
			Name: models.CategoryEducation,
			Keywords: []string{
				"school", "tuition", "college", "university", "course", "class",
				"textbook", "student", "education", "learning", "udemy",
				"coursera", "skillshare", "training", "workshop", "seminar",
				"certification", "degree", "supplies", "stationery",
			},
		},
		{
			Name: models.CategoryTravel,
			Keywords: []string{
				"hotel", "airbnb", "flight", "airline", "vacation", "trip",
				"travel", "expedia", "kayak", "resort", "cruise",
				"luggage", "passport", "visa", "tour", "tourist", "sightseeing",
				"hostel", "motel", "accommodation", "marriott", "hilton", "hyatt",
				"booking",
			},
		},
	}
}

func defaultIncomeTable() []models.CategoryConfig {
	return []models.CategoryConfig{
		{
			Name: models.CategoryInvestment,
			Keywords: []string{
				"dividend", "stock", "investment", "interest", "capital gain",
				"profit", "return", "portfolio", "trading", "crypto", "bitcoin",
				"ethereum", "robinhood", "etrade", "schwab", "fidelity", "vanguard",
				"bond", "mutual fund", "etf", "real estate", "payout",
			},
		},
		{
			Name: models.CategoryFreelance,
			Keywords: []string{
				"freelance", "contract", "consulting", "gig", "upwork", "fiverr",
				"client", "project", "freelancer", "independent", "contractor",
				"commission", "invoice",
			},
		},
		{
			Name: models.CategorySalary,
			Keywords: []string{
				"salary", "paycheck", "wage", "payroll", "direct deposit",
				"employer", "company", "job", "work", "income", "payment",
				"compensation", "pay", "monthly pay", "biweekly",
			},
		},
		{
			Name: models.CategoryBusiness,
			Keywords: []string{
				"business", "revenue", "sales", "customer", "client payment",
				"stripe", "paypal", "square", "shopify", "store", "shop",
				"ecommerce", "merchant", "transaction", "order",
			},
		},
		{
			Name: models.CategoryGift,
			Keywords: []string{
				"gift", "present", "bonus", "reward", "prize", "birthday",
				"holiday", "christmas", "wedding", "graduation", "cash gift",
				"money gift", "donation received", "rebate", "refund",
			},
		},
	}
}

// DefaultTables returns a fresh copy of the built-in keyword tables.
func DefaultTables() models.KeywordTables {
	return models.KeywordTables{
		Expense: defaultExpenseTable(),
		Income:  defaultIncomeTable(),
	}
}
