package models

// RequestStatus is the lifecycle flag of the products request.
type RequestStatus string

const (
	StatusInitial RequestStatus = "INITIAL"
	StatusLoading RequestStatus = "LOADING"
	StatusSuccess RequestStatus = "SUCCESS"
	StatusFailure RequestStatus = "FAILURE"
)

// ProductsState is one of InitialState, LoadingState, SuccessState or FailureState.
// Only SuccessState carries products.
type ProductsState interface {
	Status() RequestStatus
	isProductsState()
}

type InitialState struct{}

type LoadingState struct{}

type SuccessState struct {
	Products []Product
}

type FailureState struct{}

func (InitialState) Status() RequestStatus { return StatusInitial }
func (LoadingState) Status() RequestStatus { return StatusLoading }
func (SuccessState) Status() RequestStatus { return StatusSuccess }
func (FailureState) Status() RequestStatus { return StatusFailure }

func (InitialState) isProductsState() {}
func (LoadingState) isProductsState() {}
func (SuccessState) isProductsState() {}
func (FailureState) isProductsState() {}

// Screen is the whole state of one product catalog screen.
type Screen struct {
	Filters  FilterState
	Products ProductsState
}

// NewScreen returns an unmounted screen with default selections.
func NewScreen() Screen {
	return Screen{
		Filters:  NewFilterState(),
		Products: InitialState{},
	}
}

// ViewKind names the render branch chosen for the products area.
type ViewKind string

const (
	ViewNone     ViewKind = "none"
	ViewLoading  ViewKind = "loading"
	ViewFailure  ViewKind = "failure"
	ViewEmpty    ViewKind = "empty"
	ViewProducts ViewKind = "products"
)

// StatusPanel is a static image + text block.
type StatusPanel struct {
	ImageURL    string `json:"imageUrl"`
	ImageAlt    string `json:"imageAlt"`
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

var (
	FailurePanel = StatusPanel{
		ImageURL:    "https://assets.ccbp.in/frontend/react-js/nxt-trendz/nxt-trendz-products-error-view.png",
		ImageAlt:    "products failure",
		Heading:     "Oops! Something Went Wrong",
		Description: "We are having trouble processing your request. Please try again.",
	}

	EmptyPanel = StatusPanel{
		ImageURL:    "https://assets.ccbp.in/frontend/react-js/nxt-trendz/nxt-trendz-no-products-view.png",
		ImageAlt:    "no products",
		Heading:     "No Products Found",
		Description: "We could not find any products.Try other filters.",
	}
)

// ProductsHeader carries the props of the sort header.
type ProductsHeader struct {
	ActiveOptionID SortOptionID `json:"activeOptionId"`
	SortOptions    []SortOption `json:"sortOptions"`
}

// ProductsView is the output of the view selector.
type ProductsView struct {
	Kind     ViewKind        `json:"kind"`
	Header   *ProductsHeader `json:"header,omitempty"`
	Products []Product       `json:"products,omitempty"`
	Panel    *StatusPanel    `json:"panel,omitempty"`
}

// FiltersGroup carries the props of the filter controls.
type FiltersGroup struct {
	CategoryOptions  []CategoryOption `json:"categoryOptions"`
	RatingOptions    []RatingOption   `json:"ratingsList"`
	ActiveCategoryID string           `json:"activeCategoryId"`
	ActiveRatingID   string           `json:"activeRatingId"`
	SearchInput      string           `json:"searchInput"`
}

// ScreenPage is everything needed to render the screen.
type ScreenPage struct {
	Status  RequestStatus `json:"status"`
	Filters FiltersGroup  `json:"filters"`
	Content ProductsView  `json:"content"`
}
