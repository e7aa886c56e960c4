package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

type fakeFetcher struct {
	mu       sync.Mutex
	queries  []ProductQuery
	ctxErrs  []error
	products []models.Product
	err      error
}

func (f *fakeFetcher) FetchProducts(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeFetcher) Queries() []ProductQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ProductQuery(nil), f.queries...)
}

func (f *fakeFetcher) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

var sampleProducts = []models.Product{
	{ID: models.ProductID(`1`), Title: "Slim Fit Shirt", Brand: "Peter England", Price: 1299, ImageURL: "https://x/1.png", Rating: 4.1},
	{ID: models.ProductID(`2`), Title: "Smart Watch", Brand: "Noise", Price: 3999, ImageURL: "https://x/2.png", Rating: 3.7},
}

func TestReduce(t *testing.T) {
	tests := []struct {
		name        string
		action      Action
		wantFetch   bool
		wantFilters models.FilterState
	}{
		{
			name:        "mount",
			action:      Mount{},
			wantFetch:   true,
			wantFilters: models.FilterState{SearchInput: "hat", ActiveCategoryID: "1", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceHigh},
		},
		{
			name:        "search input does not fetch",
			action:      SetSearchInput{Value: "watch"},
			wantFetch:   false,
			wantFilters: models.FilterState{SearchInput: "watch", ActiveCategoryID: "1", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceHigh},
		},
		{
			name:        "submit search",
			action:      SubmitSearch{},
			wantFetch:   true,
			wantFilters: models.FilterState{SearchInput: "hat", ActiveCategoryID: "1", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceHigh},
		},
		{
			name:        "category",
			action:      SetCategory{CategoryID: "5"},
			wantFetch:   true,
			wantFilters: models.FilterState{SearchInput: "hat", ActiveCategoryID: "5", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceHigh},
		},
		{
			name:        "rating",
			action:      SetRating{RatingID: "2"},
			wantFetch:   true,
			wantFilters: models.FilterState{SearchInput: "hat", ActiveCategoryID: "1", ActiveRatingID: "2", ActiveSortOptionID: models.SortPriceHigh},
		},
		{
			name:        "sort",
			action:      SetSortOption{OptionID: models.SortPriceLow},
			wantFetch:   true,
			wantFilters: models.FilterState{SearchInput: "hat", ActiveCategoryID: "1", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceLow},
		},
		{
			name:        "clear keeps sort",
			action:      ClearFilters{},
			wantFetch:   true,
			wantFilters: models.FilterState{ActiveSortOptionID: models.SortPriceHigh},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := models.Screen{
				Filters:  models.FilterState{SearchInput: "hat", ActiveCategoryID: "1", ActiveRatingID: "3", ActiveSortOptionID: models.SortPriceHigh},
				Products: models.SuccessState{Products: sampleProducts},
			}

			after, fetch := Reduce(before, tt.action)

			require.Equal(t, tt.wantFetch, fetch)
			require.Equal(t, tt.wantFilters, after.Filters)
			require.Equal(t, before.Products, after.Products, "reduce must not touch the request status")
		})
	}
}

func TestScreenService_SettersIssueOneFetch(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, q ProductQuery)
	}{
		{
			name:   "submit search",
			action: SubmitSearch{},
			check: func(t *testing.T, q ProductQuery) {
				require.Equal(t, models.NewFilterState(), q.Filters)
			},
		},
		{
			name:   "category",
			action: SetCategory{CategoryID: "2"},
			check: func(t *testing.T, q ProductQuery) {
				require.Equal(t, "2", q.Filters.ActiveCategoryID)
			},
		},
		{
			name:   "rating",
			action: SetRating{RatingID: "4"},
			check: func(t *testing.T, q ProductQuery) {
				require.Equal(t, "4", q.Filters.ActiveRatingID)
			},
		},
		{
			name:   "sort",
			action: SetSortOption{OptionID: models.SortPriceLow},
			check: func(t *testing.T, q ProductQuery) {
				require.Equal(t, models.SortPriceLow, q.Filters.ActiveSortOptionID)
			},
		},
		{
			name:   "clear",
			action: ClearFilters{},
			check: func(t *testing.T, q ProductQuery) {
				require.Equal(t, models.NewFilterState(), q.Filters)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &fakeFetcher{products: sampleProducts}
			svc := NewScreenService(fetcher, zap.NewNop())
			store := NewStore()

			screen := svc.Do(context.Background(), store, "abc", tt.action)

			queries := fetcher.Queries()
			require.Len(t, queries, 1)
			require.Equal(t, "abc", queries[0].Token)
			tt.check(t, queries[0])
			require.Equal(t, models.SuccessState{Products: sampleProducts}, screen.Products)
		})
	}
}

func TestScreenService_SearchInputDoesNotFetch(t *testing.T) {
	fetcher := &fakeFetcher{products: sampleProducts}
	svc := NewScreenService(fetcher, zap.NewNop())
	store := NewStore()

	screen := svc.Do(context.Background(), store, "abc", SetSearchInput{Value: "watch"})
	require.Empty(t, fetcher.Queries())
	require.Equal(t, "watch", screen.Filters.SearchInput)
	require.Equal(t, models.StatusInitial, screen.Products.Status())

	svc.Do(context.Background(), store, "abc", SubmitSearch{})
	queries := fetcher.Queries()
	require.Len(t, queries, 1)
	require.Equal(t, "watch", queries[0].Filters.SearchInput)
}

func TestScreenService_ClearFilters(t *testing.T) {
	fetcher := &fakeFetcher{products: sampleProducts}
	svc := NewScreenService(fetcher, zap.NewNop())
	store := NewStore()

	svc.Do(context.Background(), store, "abc",
		SetSearchInput{Value: "shoes"},
		SetCategory{CategoryID: "1"},
		SetRating{RatingID: "3"},
		SetSortOption{OptionID: models.SortPriceLow},
	)
	require.Len(t, fetcher.Queries(), 3)

	screen := svc.Do(context.Background(), store, "abc", ClearFilters{})

	want := models.FilterState{ActiveSortOptionID: models.SortPriceLow}
	require.Equal(t, want, screen.Filters)

	queries := fetcher.Queries()
	require.Len(t, queries, 4)
	require.Equal(t, want, queries[3].Filters)
}

func TestScreenService_CategoryThenRating(t *testing.T) {
	fetcher := &fakeFetcher{products: sampleProducts}
	svc := NewScreenService(fetcher, zap.NewNop())
	store := NewStore()

	svc.Do(context.Background(), store, "abc", SetCategory{CategoryID: "2"})
	svc.Do(context.Background(), store, "abc", SetRating{RatingID: "4"})

	queries := fetcher.Queries()
	require.Len(t, queries, 2)
	require.Equal(t, "/products?sort_by=PRICE_HIGH&category=2&title_search=&rating=", ProductsPath(queries[0].Filters))
	require.Equal(t, "/products?sort_by=PRICE_HIGH&category=2&title_search=&rating=4", ProductsPath(queries[1].Filters))
}

func TestScreenService_Outcomes(t *testing.T) {
	t.Run("empty list is success", func(t *testing.T) {
		fetcher := &fakeFetcher{products: []models.Product{}}
		svc := NewScreenService(fetcher, zap.NewNop())

		screen := svc.Do(context.Background(), NewStore(), "abc", Mount{})

		require.Equal(t, models.StatusSuccess, screen.Products.Status())
		require.Equal(t, models.ViewEmpty, SelectView(screen).Kind)
	})

	t.Run("nil list is success with no products", func(t *testing.T) {
		fetcher := &fakeFetcher{}
		svc := NewScreenService(fetcher, zap.NewNop())

		screen := svc.Do(context.Background(), NewStore(), "abc", Mount{})

		require.Equal(t, models.SuccessState{Products: []models.Product{}}, screen.Products)
	})

	t.Run("failure drops the previous list", func(t *testing.T) {
		fetcher := &fakeFetcher{products: sampleProducts}
		svc := NewScreenService(fetcher, zap.NewNop())
		store := NewStore()

		screen := svc.Do(context.Background(), store, "abc", Mount{})
		require.Equal(t, models.ViewProducts, SelectView(screen).Kind)

		fetcher.fail(&StatusError{Code: 401})
		screen = svc.Do(context.Background(), store, "abc", SetCategory{CategoryID: "3"})

		require.Equal(t, models.FailureState{}, screen.Products)
		view := SelectView(screen)
		require.Equal(t, models.ViewFailure, view.Kind)
		require.Empty(t, view.Products)
		require.Equal(t, "3", screen.Filters.ActiveCategoryID)
	})

	t.Run("transport error is failure", func(t *testing.T) {
		fetcher := &fakeFetcher{err: errors.Join(ErrCatalogUnavailable, errors.New("connection refused"))}
		svc := NewScreenService(fetcher, zap.NewNop())

		screen := svc.Do(context.Background(), NewStore(), "", Mount{})
		require.Equal(t, models.StatusFailure, screen.Products.Status())
	})

	t.Run("fetch survives caller cancellation", func(t *testing.T) {
		fetcher := &fakeFetcher{products: sampleProducts}
		svc := NewScreenService(fetcher, zap.NewNop())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		screen := svc.Do(ctx, NewStore(), "abc", Mount{})
		require.Equal(t, models.StatusSuccess, screen.Products.Status())
		require.NoError(t, fetcher.ctxErrs[0])
	})
}

func TestStore_LastResolutionWins(t *testing.T) {
	store := NewStore()

	first, ok := store.Dispatch(SetCategory{CategoryID: "1"})
	require.True(t, ok)
	second, ok := store.Dispatch(SetCategory{CategoryID: "2"})
	require.True(t, ok)
	require.Greater(t, second.Seq, first.Seq)
	require.Equal(t, models.StatusLoading, store.Snapshot().Products.Status())

	// the later request resolves first, the earlier one last
	store.Resolve(sampleProducts[1:], nil)
	store.Resolve(sampleProducts[:1], nil)

	require.Equal(t, models.SuccessState{Products: sampleProducts[:1]}, store.Snapshot().Products)
	require.Equal(t, "2", store.Snapshot().Filters.ActiveCategoryID)
}

func TestStore_DispatchWithoutFetchKeepsStatus(t *testing.T) {
	store := NewStore()

	_, ok := store.Dispatch(SetSearchInput{Value: "tv"})
	require.False(t, ok)
	require.Equal(t, models.InitialState{}, store.Snapshot().Products)
}
