package constant

// CategoryAll is the sentinel that bypasses category filtering.
const CategoryAll = "All"

const (
	CategoryCasual  = "Casual"
	CategoryVintage = "Vintage"
	CategoryUrban   = "Urban"
	CategoryClassic = "Classic"
	CategoryBoho    = "Boho"
	CategoryMinimal = "Minimal"
	CategorySporty  = "Sporty"
	CategoryEvening = "Evening"
)

// Categories is the fixed category enumeration, in display order.
var Categories = []string{
	CategoryAll,
	CategoryCasual,
	CategoryVintage,
	CategoryUrban,
	CategoryClassic,
	CategoryBoho,
	CategoryMinimal,
	CategorySporty,
	CategoryEvening,
}

// Sort options for the catalog listing. Popular is the default.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)
