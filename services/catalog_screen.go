package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Modeva-Ecommerce/modeva-storefront/models"
)

// Action is a user interaction with the catalog screen.
type Action interface {
	apply(f models.FilterState) (models.FilterState, bool)
}

type (
	// Mount is the first render of the screen.
	Mount struct{}
	// SetSearchInput records typed text without fetching.
	SetSearchInput struct{ Value string }
	// SubmitSearch fetches with the current search text.
	SubmitSearch struct{}
	// SetCategory selects a category; empty unsets it.
	SetCategory struct{ CategoryID string }
	// SetRating selects a minimum rating; empty unsets it.
	SetRating struct{ RatingID string }
	// SetSortOption changes the sort order.
	SetSortOption struct{ OptionID models.SortOptionID }
	// ClearFilters empties search, category and rating. Sort is kept.
	ClearFilters struct{}
)

func (Mount) apply(f models.FilterState) (models.FilterState, bool) { return f, true }

func (a SetSearchInput) apply(f models.FilterState) (models.FilterState, bool) {
	f.SearchInput = a.Value
	return f, false
}

func (SubmitSearch) apply(f models.FilterState) (models.FilterState, bool) { return f, true }

func (a SetCategory) apply(f models.FilterState) (models.FilterState, bool) {
	f.ActiveCategoryID = a.CategoryID
	return f, true
}

func (a SetRating) apply(f models.FilterState) (models.FilterState, bool) {
	f.ActiveRatingID = a.RatingID
	return f, true
}

func (a SetSortOption) apply(f models.FilterState) (models.FilterState, bool) {
	f.ActiveSortOptionID = a.OptionID
	return f, true
}

func (ClearFilters) apply(f models.FilterState) (models.FilterState, bool) {
	f.SearchInput = ""
	f.ActiveCategoryID = ""
	f.ActiveRatingID = ""
	return f, true
}

// Reduce applies an action to the screen filters and reports whether a fetch
// was requested. It does not touch the request status.
func Reduce(s models.Screen, a Action) (models.Screen, bool) {
	filters, fetch := a.apply(s.Filters)
	s.Filters = filters
	return s, fetch
}

// FetchRequest is a fetch the store has moved into LOADING for.
type FetchRequest struct {
	Seq     uint64
	Filters models.FilterState
}

// Store owns the state of one screen. Results are applied in resolution
// order: whichever fetch resolves last wins.
type Store struct {
	mu     sync.Mutex
	screen models.Screen
	seq    uint64
}

func NewStore() *Store {
	return NewStoreWithFilters(models.NewFilterState())
}

// NewStoreWithFilters returns an unmounted store with restored selections.
func NewStoreWithFilters(f models.FilterState) *Store {
	return &Store{screen: models.Screen{Filters: f, Products: models.InitialState{}}}
}

func (s *Store) Snapshot() models.Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// Dispatch reduces the action. When it requests a fetch the status becomes
// LOADING and the caller must perform the request and call Resolve.
func (s *Store) Dispatch(a Action) (FetchRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, fetch := Reduce(s.screen, a)
	s.screen = next
	if !fetch {
		return FetchRequest{}, false
	}

	s.seq++
	s.screen.Products = models.LoadingState{}
	return FetchRequest{Seq: s.seq, Filters: next.Filters}, true
}

// Resolve records the outcome of a fetch.
func (s *Store) Resolve(products []models.Product, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.screen.Products = models.FailureState{}
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	s.screen.Products = models.SuccessState{Products: products}
}

// ProductFetcher performs one catalog request.
type ProductFetcher interface {
	FetchProducts(ctx context.Context, q ProductQuery) ([]models.Product, error)
}

// ScreenService runs actions against a store and performs the fetches they request.
type ScreenService struct {
	fetcher ProductFetcher
	logger  *zap.Logger
}

func NewScreenService(fetcher ProductFetcher, logger *zap.Logger) *ScreenService {
	return &ScreenService{
		fetcher: fetcher,
		logger:  logger.Named("catalog_screen"),
	}
}

// Do dispatches the actions in order. Every action that requests a fetch
// issues exactly one catalog request, awaited before the next action.
// Fetches are not cancelled when ctx is.
func (s *ScreenService) Do(ctx context.Context, store *Store, token string, actions ...Action) models.Screen {
	for _, a := range actions {
		req, ok := store.Dispatch(a)
		if !ok {
			continue
		}

		products, err := s.fetcher.FetchProducts(context.WithoutCancel(ctx), ProductQuery{
			Filters: req.Filters,
			Token:   token,
		})
		if err != nil {
			s.logger.Warn("products fetch failed",
				zap.Uint64("seq", req.Seq),
				zap.Error(err),
			)
		}
		store.Resolve(products, err)
	}

	return store.Snapshot()
}
