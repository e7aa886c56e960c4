// models/filters.go
package models

import "github.com/samber/lo"

// SortOptionID identifies a catalog sort order understood by the API.
type SortOptionID string

const (
	SortPriceHigh SortOptionID = "PRICE_HIGH"
	SortPriceLow  SortOptionID = "PRICE_LOW"
)

// CategoryOption is a selectable category in the filters group.
type CategoryOption struct {
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

// SortOption is an entry of the sort-by dropdown in the products header.
type SortOption struct {
	OptionID    SortOptionID `json:"optionId"`
	DisplayText string       `json:"displayText"`
}

// RatingOption is a selectable minimum rating, rendered as a star image.
type RatingOption struct {
	RatingID string `json:"ratingId"`
	ImageURL string `json:"imageUrl"`
}

// FilterMetadata represents all filter data for the storefront
type FilterMetadata struct {
	Categories  []CategoryOption `json:"categories"`
	SortOptions []SortOption     `json:"sortOptions"`
	Ratings     []RatingOption   `json:"ratings"`
}

var (
	CategoryOptions = []CategoryOption{
		{Name: "Clothing", CategoryID: "1"},
		{Name: "Electronics", CategoryID: "2"},
		{Name: "Appliances", CategoryID: "3"},
		{Name: "Grocery", CategoryID: "4"},
		{Name: "Toys", CategoryID: "5"},
	}

	SortOptions = []SortOption{
		{OptionID: SortPriceHigh, DisplayText: "Price (High-Low)"},
		{OptionID: SortPriceLow, DisplayText: "Price (Low-High)"},
	}

	RatingOptions = []RatingOption{
		{RatingID: "4", ImageURL: "https://assets.ccbp.in/frontend/react-js/rating-four-stars-img.png"},
		{RatingID: "3", ImageURL: "https://assets.ccbp.in/frontend/react-js/rating-three-stars-img.png"},
		{RatingID: "2", ImageURL: "https://assets.ccbp.in/frontend/react-js/rating-two-stars-img.png"},
		{RatingID: "1", ImageURL: "https://assets.ccbp.in/frontend/react-js/rating-one-star-img.png"},
	}
)

// GetFilterMetadata returns the static option tables.
func GetFilterMetadata() FilterMetadata {
	return FilterMetadata{
		Categories:  CategoryOptions,
		SortOptions: SortOptions,
		Ratings:     RatingOptions,
	}
}

// DefaultSortOptionID is the first entry of SortOptions.
func DefaultSortOptionID() SortOptionID {
	return SortOptions[0].OptionID
}

// IsKnownCategory reports whether id is empty or one of CategoryOptions.
func IsKnownCategory(id string) bool {
	return id == "" || lo.ContainsBy(CategoryOptions, func(o CategoryOption) bool { return o.CategoryID == id })
}

// IsKnownRating reports whether id is empty or one of RatingOptions.
func IsKnownRating(id string) bool {
	return id == "" || lo.ContainsBy(RatingOptions, func(o RatingOption) bool { return o.RatingID == id })
}

// FindSortOption looks up a sort option by id.
func FindSortOption(id SortOptionID) (SortOption, bool) {
	return lo.Find(SortOptions, func(o SortOption) bool { return o.OptionID == id })
}

// FilterState holds the user's current search, category, rating and sort selections.
type FilterState struct {
	SearchInput        string       `json:"searchInput"`
	ActiveCategoryID   string       `json:"activeCategoryId"`
	ActiveRatingID     string       `json:"activeRatingId"`
	ActiveSortOptionID SortOptionID `json:"activeOptionId"`
}

// NewFilterState returns the selections a freshly mounted screen starts with.
func NewFilterState() FilterState {
	return FilterState{ActiveSortOptionID: DefaultSortOptionID()}
}
