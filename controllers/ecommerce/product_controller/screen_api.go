package product_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

type searchInputRequest struct {
	Value string `json:"value"`
}

type categoryRequest struct {
	CategoryID string `json:"category_id"`
}

type ratingRequest struct {
	RatingID string `json:"rating_id"`
}

type sortOptionRequest struct {
	SortOptionID string `json:"sort_option_id" binding:"required"`
}

// GetProductsScreen godoc
// @Summary Get the products screen
// @Description Returns the filter controls and the products view of the caller's session. A fresh session fetches products first.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Router /store/screen [get]
func GetProductsScreen(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products screen fetched successfully", currentPage(c)))
}

// UpdateSearchInput godoc
// @Summary Change the search text
// @Description Records the typed search text. Products are not fetched until the search is submitted.
// @Tags store
// @Accept json
// @Produce json
// @Param body body searchInputRequest true "Search text"
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Failure 400 {object} models.ApiResponse
// @Router /store/screen/search-input [patch]
func UpdateSearchInput(c *gin.Context) {
	var req searchInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	page := runActions(c, services.SetSearchInput{Value: req.Value})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Search input updated", page))
}

// SubmitSearch godoc
// @Summary Submit the search
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Router /store/screen/search [post]
func SubmitSearch(c *gin.Context) {
	page := runActions(c, services.SubmitSearch{})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", page))
}

// ChangeCategory godoc
// @Summary Select a category
// @Tags store
// @Accept json
// @Produce json
// @Param body body categoryRequest true "Category ID, empty to unset"
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Failure 400 {object} models.ApiResponse
// @Router /store/screen/category [put]
func ChangeCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	action, err := categoryAction(req.CategoryID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", runActions(c, action)))
}

// ChangeRating godoc
// @Summary Select a minimum rating
// @Tags store
// @Accept json
// @Produce json
// @Param body body ratingRequest true "Rating ID, empty to unset"
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Failure 400 {object} models.ApiResponse
// @Router /store/screen/rating [put]
func ChangeRating(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	action, err := ratingAction(req.RatingID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", runActions(c, action)))
}

// ChangeSortOption godoc
// @Summary Change the sort order
// @Tags store
// @Accept json
// @Produce json
// @Param body body sortOptionRequest true "Sort option ID"
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Failure 400 {object} models.ApiResponse
// @Router /store/screen/sort [put]
func ChangeSortOption(c *gin.Context) {
	var req sortOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "sort_option_id is required"))
		return
	}

	action, err := sortAction(req.SortOptionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched", runActions(c, action)))
}

// ClearFilters godoc
// @Summary Clear search, category and rating
// @Description Sort order is kept.
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ScreenPage}
// @Router /store/screen/clear [post]
func ClearFilters(c *gin.Context) {
	page := runActions(c, services.ClearFilters{})
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filters cleared", page))
}
