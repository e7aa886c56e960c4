package services

import "github.com/Modeva-Ecommerce/modeva-storefront/models"

// SelectView maps the request status to exactly one render branch.
func SelectView(screen models.Screen) models.ProductsView {
	switch st := screen.Products.(type) {
	case models.LoadingState:
		return models.ProductsView{Kind: models.ViewLoading}
	case models.FailureState:
		panel := models.FailurePanel
		return models.ProductsView{Kind: models.ViewFailure, Panel: &panel}
	case models.SuccessState:
		if len(st.Products) == 0 {
			panel := models.EmptyPanel
			return models.ProductsView{Kind: models.ViewEmpty, Panel: &panel}
		}
		return models.ProductsView{
			Kind: models.ViewProducts,
			Header: &models.ProductsHeader{
				ActiveOptionID: screen.Filters.ActiveSortOptionID,
				SortOptions:    models.SortOptions,
			},
			Products: st.Products,
		}
	default:
		return models.ProductsView{Kind: models.ViewNone}
	}
}

// BuildScreenPage assembles the filter group props and the selected view.
func BuildScreenPage(screen models.Screen) models.ScreenPage {
	status := models.StatusInitial
	if screen.Products != nil {
		status = screen.Products.Status()
	}

	return models.ScreenPage{
		Status: status,
		Filters: models.FiltersGroup{
			CategoryOptions:  models.CategoryOptions,
			RatingOptions:    models.RatingOptions,
			ActiveCategoryID: screen.Filters.ActiveCategoryID,
			ActiveRatingID:   screen.Filters.ActiveRatingID,
			SearchInput:      screen.Filters.SearchInput,
		},
		Content: SelectView(screen),
	}
}
