package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
)

// ErrProductNotFound is returned when selecting an id that is not in the catalog
var ErrProductNotFound = errors.New("product not found")

// EditorSession connects the model editor to the catalog store.
// Any change of the selected model replaces the editor's working copy, and a commit
// is saved back into the store. UI events are serialized through one mutex; the
// store must only be driven through the session once it is attached.
type EditorSession struct {
	mu     sync.Mutex
	store  CatalogStoreInterface
	editor *ModelEditor
	params []models.ParameterSchema
	log    *zap.SugaredLogger
}

// Ensure EditorSession implements EditorSessionInterface
var _ EditorSessionInterface = (*EditorSession)(nil)

// NewEditorSession creates the editor for params and subscribes it to store selection changes
func NewEditorSession(store CatalogStoreInterface, params []models.ParameterSchema, log *zap.SugaredLogger) *EditorSession {
	log = logger.OrNop(log)

	initial := models.Model{}
	if selected, ok := store.Selected(); ok {
		initial = selected.Model
	}

	s := &EditorSession{
		store:  store,
		editor: NewModelEditor(params, initial, store.SaveModel, log),
		params: append([]models.ParameterSchema(nil), params...),
		log:    log,
	}

	// Runs under the caller's lock: every store change is issued from a session method.
	store.Subscribe(func(change SelectionChange) {
		s.log.Debugf("🔁 Session: selection changed to product id=%d (version %d)", change.Product.ID, change.Version)
		s.editor.OnInitialModelChange(change.Product.Model)
	})

	return s
}

// Select makes the product with productID the current selection
func (s *EditorSession) Select(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.store.Product(productID)
	if !ok {
		s.log.Warnf("❌ Session: product id=%d does not exist", productID)
		return fmt.Errorf("select product %d: %w", productID, ErrProductNotFound)
	}
	s.store.SelectProduct(product)
	return nil
}

// SetParamValue edits a parameter value in the working copy
func (s *EditorSession) SetParamValue(paramID int, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.SetParamValue(paramID, value)
}

// SetColorName renames a color in the working copy
func (s *EditorSession) SetColorName(colorID int, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.SetColorName(colorID, name)
}

// RemoveColor deletes a color from the working copy
func (s *EditorSession) RemoveColor(colorID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.RemoveColor(colorID)
}

// AddColor appends an unnamed color to the working copy and returns its id
func (s *EditorSession) AddColor() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.AddColor()
}

// Commit saves the working copy into the store; silently ignored while nothing is selected
func (s *EditorSession) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.Commit()
}

// WorkingCopy returns a snapshot of the editor's working copy
func (s *EditorSession) WorkingCopy() models.Model {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.editor.Model()
}

// EditorView returns the editor panel state, including the selected product
func (s *EditorSession) EditorView() models.EditorView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := s.editor.View()
	if selected, ok := s.store.Selected(); ok {
		view.ProductID = selected.ID
		view.ProductName = selected.Name
		view.Active = true
	}
	return view
}

// Products returns the catalog's products in order
func (s *EditorSession) Products() []models.Product {
	return s.store.Products()
}

// Selected returns the currently selected product
func (s *EditorSession) Selected() (models.Product, bool) {
	return s.store.Selected()
}

// Params returns the parameter schema
func (s *EditorSession) Params() []models.ParameterSchema {
	return append([]models.ParameterSchema(nil), s.params...)
}
