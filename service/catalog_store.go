package service

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
)

// SelectionChange describes the selected product after its model identity changed
type SelectionChange struct {
	Product models.Product
	Version uint64 // Incremented on every identity change
}

// catalogState is the single record owning both copies of a product:
// the list entry and the selection snapshot.
type catalogState struct {
	products  []models.Product
	selection *models.Product
	version   uint64
}

// CatalogStore owns the ordered product list and the current selection.
// All changes go through update, so the list entry and the selection never diverge.
type CatalogStore struct {
	mu          sync.Mutex
	state       catalogState
	subscribers []func(SelectionChange)
	log         *zap.SugaredLogger
}

// Ensure CatalogStore implements CatalogStoreInterface
var _ CatalogStoreInterface = (*CatalogStore)(nil)

// NewCatalogStore creates a CatalogStore holding copies of products, with nothing selected
func NewCatalogStore(products []models.Product, log *zap.SugaredLogger) *CatalogStore {
	return &CatalogStore{
		state: catalogState{products: cloneProducts(products)},
		log:   logger.OrNop(log),
	}
}

// Products returns copies of all products in order
func (s *CatalogStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneProducts(s.state.products)
}

// Product returns a copy of the product with id
func (s *CatalogStore) Product(id int) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.state.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Product{}, false
}

// SelectProduct makes product the current selection without touching the list.
// Subscribers are notified unless the same product with an equal model is already selected.
func (s *CatalogStore) SelectProduct(product models.Product) {
	s.update(func(st *catalogState) bool {
		prev := st.selection
		selected := product.Clone()
		st.selection = &selected

		changed := prev == nil || prev.ID != selected.ID || !prev.Model.Equal(selected.Model)
		s.log.Infof("👉 Catalog: selected product id=%d (%s), identity changed=%t", selected.ID, selected.Name, changed)
		return changed
	})
}

// Selected returns a copy of the selected product; ok is false while nothing is selected
func (s *CatalogStore) Selected() (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.selection == nil {
		return models.Product{}, false
	}
	return s.state.selection.Clone(), true
}

// SaveModel replaces the selected product's model in the list and in the selection.
// It is a no-op while nothing is selected.
func (s *CatalogStore) SaveModel(updated models.Model) {
	s.update(func(st *catalogState) bool {
		if st.selection == nil {
			s.log.Infof("⚠️  Catalog: save ignored, no product selected")
			return false
		}

		id := st.selection.ID
		products := make([]models.Product, len(st.products))
		for i, p := range st.products {
			if p.ID == id {
				p.Model = updated.Clone()
			}
			products[i] = p
		}

		selected := *st.selection
		selected.Model = updated.Clone()

		st.products = products
		st.selection = &selected

		s.log.Infof("✓ Catalog: saved model for product id=%d (%d params, %d colors)", id, len(updated.ParamValues), len(updated.Colors))
		return true
	})
}

// Subscribe registers fn for selection identity changes.
// Callbacks run synchronously on the goroutine that caused the change, after the store lock is released.
func (s *CatalogStore) Subscribe(fn func(SelectionChange)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}

// update applies fn to the state as one transaction. fn reports whether the
// selected model's identity changed.
func (s *CatalogStore) update(fn func(st *catalogState) bool) {
	s.mu.Lock()
	changed := fn(&s.state)
	var change SelectionChange
	var subscribers []func(SelectionChange)
	if changed {
		s.state.version++
		change = SelectionChange{Product: s.state.selection.Clone(), Version: s.state.version}
		subscribers = append(subscribers, s.subscribers...)
	}
	s.mu.Unlock()

	for _, notify := range subscribers {
		notify(change)
	}
}

func cloneProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
