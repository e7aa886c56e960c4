package product_controller

import (
	"errors"

	session_cache "github.com/Modeva-Ecommerce/modeva-storefront/cache"
	"github.com/Modeva-Ecommerce/modeva-storefront/middleware"
	"github.com/Modeva-Ecommerce/modeva-storefront/models"
	"github.com/Modeva-Ecommerce/modeva-storefront/services"
	"github.com/gin-gonic/gin"
)

// StorefrontPagePath is where the server-rendered products screen lives.
const StorefrontPagePath = "/store/products"

var (
	screens       *session_cache.Registry
	screenService *services.ScreenService

	errUnknownCategory   = errors.New("unknown category")
	errUnknownRating     = errors.New("unknown rating")
	errUnknownSortOption = errors.New("unknown sort option")
)

// InitCatalogScreen wires the session registry and screen service used by the handlers.
func InitCatalogScreen(registry *session_cache.Registry, service *services.ScreenService) {
	screens = registry
	screenService = service
}

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// runActions applies actions to the caller's screen and persists the selections.
func runActions(c *gin.Context, actions ...services.Action) models.ScreenPage {
	sessionID := middleware.GetSessionIDFromContext(c)
	store := screens.Get(sessionID)

	screen := screenService.Do(
		c.Request.Context(),
		store,
		middleware.GetCatalogTokenFromContext(c),
		actions...,
	)
	screens.Persist(sessionID, screen.Filters)

	return services.BuildScreenPage(screen)
}

// currentPage renders the caller's screen, mounting it first when it has never fetched.
func currentPage(c *gin.Context) models.ScreenPage {
	store := screens.Get(middleware.GetSessionIDFromContext(c))

	screen := store.Snapshot()
	if screen.Products.Status() == models.StatusInitial {
		return runActions(c, services.Mount{})
	}
	return services.BuildScreenPage(screen)
}

func categoryAction(id string) (services.Action, error) {
	if !models.IsKnownCategory(id) {
		return nil, errUnknownCategory
	}
	return services.SetCategory{CategoryID: id}, nil
}

func ratingAction(id string) (services.Action, error) {
	if !models.IsKnownRating(id) {
		return nil, errUnknownRating
	}
	return services.SetRating{RatingID: id}, nil
}

func sortAction(id string) (services.Action, error) {
	option, ok := models.FindSortOption(models.SortOptionID(id))
	if !ok {
		return nil, errUnknownSortOption
	}
	return services.SetSortOption{OptionID: option.OptionID}, nil
}
