package filter_controller

import (
	"net/http"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/gin-gonic/gin"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Returns the category, sort and rating option tables used by the filter controls
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched", models.GetFilterMetadata()))
}
