package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

const productsPath = "/products"

// ProductQuery is everything needed to build one catalog request.
type ProductQuery struct {
	Filters models.FilterState
	Token   string
}

// ProductsPath builds the catalog request path. Parameters keep a fixed order
// and are sent even when empty.
func ProductsPath(f models.FilterState) string {
	params := [][2]string{
		{"sort_by", string(f.ActiveSortOptionID)},
		{"category", f.ActiveCategoryID},
		{"title_search", f.SearchInput},
		{"rating", f.ActiveRatingID},
	}

	pairs := make([]string, 0, len(params))
	for _, p := range params {
		pairs = append(pairs, p[0]+"="+url.QueryEscape(p[1]))
	}

	return productsPath + "?" + strings.Join(pairs, "&")
}

// BearerAuthorization returns the Authorization header value for token.
// An empty token still yields a header; the API is expected to reject it.
func BearerAuthorization(token string) string {
	return "Bearer " + token
}

// CatalogClient talks to the remote product catalog API.
type CatalogClient struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewCatalogClient creates a client for the API rooted at baseURL.
// No timeout and no retries are configured.
func NewCatalogClient(baseURL string, logger *zap.Logger) *CatalogClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &CatalogClient{
		http:   client,
		logger: logger.Named("catalog_client"),
	}
}

// FetchProducts performs GET /products for the query and maps the payload.
func (c *CatalogClient) FetchProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	path := ProductsPath(q.Filters)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", BearerAuthorization(q.Token)).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	if !resp.IsSuccess() {
		c.logger.Warn("catalog request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode()),
		)
		return nil, &StatusError{Code: resp.StatusCode()}
	}

	var payload models.CatalogProductsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if payload.Products == nil {
		return nil, ErrMalformedPayload
	}

	products := lo.Map(*payload.Products, func(p models.CatalogProduct, _ int) models.Product {
		return p.ToProduct()
	})

	c.logger.Debug("catalog request succeeded",
		zap.String("path", path),
		zap.Int("products", len(products)),
		zap.Duration("took", resp.Time()),
	)

	return products, nil
}
