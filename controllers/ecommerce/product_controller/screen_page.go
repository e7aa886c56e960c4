package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// RenderProductsPage serves the server-rendered products screen.
func RenderProductsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "products.tmpl", gin.H{
		"Page": currentPage(c),
	})
}

// The form handlers below apply one user interaction and redirect back to the
// page, which renders the stored outcome without fetching again.

func SubmitSearchForm(c *gin.Context) {
	runActions(c,
		services.SetSearchInput{Value: c.PostForm("search_input")},
		services.SubmitSearch{},
	)
	c.Redirect(http.StatusSeeOther, StorefrontPagePath)
}

func ChangeCategoryForm(c *gin.Context) {
	submitForm(c, categoryAction, "category_id")
}

func ChangeRatingForm(c *gin.Context) {
	submitForm(c, ratingAction, "rating_id")
}

func ChangeSortOptionForm(c *gin.Context) {
	submitForm(c, sortAction, "sort_option_id")
}

func ClearFiltersForm(c *gin.Context) {
	runActions(c, services.ClearFilters{})
	c.Redirect(http.StatusSeeOther, StorefrontPagePath)
}

func submitForm(c *gin.Context, build func(string) (services.Action, error), field string) {
	action, err := build(c.PostForm(field))
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	runActions(c, action)
	c.Redirect(http.StatusSeeOther, StorefrontPagePath)
}
