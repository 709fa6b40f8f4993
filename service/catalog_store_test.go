package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/service"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Платье", ImageRef: "dress.jpg", Model: dressModel()},
		{
			ID:       2,
			Name:     "Рубашка",
			ImageRef: "https://example.com/shirt.jpg",
			Model: models.Model{
				ParamValues: []models.ParamValue{
					{ParamID: 1, Value: "офисное"},
					{ParamID: 2, Value: "короткая"},
					{ParamID: 3, Value: "синтетика"},
				},
				Colors: []models.Color{{ID: 1, Name: "Белый"}, {ID: 2, Name: "Черный"}},
			},
		},
	}
}

func TestCatalogStoreStartsUnselected(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	_, ok := store.Selected()
	require.False(t, ok)
	require.Equal(t, sampleProducts(), store.Products())
}

func TestCatalogStoreCopiesInput(t *testing.T) {
	t.Parallel()

	products := sampleProducts()
	store := service.NewCatalogStore(products, nil)
	products[0].Model.Colors[0].Name = "mutated"

	listed := store.Products()
	require.Equal(t, "Красный", listed[0].Model.Colors[0].Name)

	listed[0].Model.Colors[0].Name = "mutated again"
	p, ok := store.Product(1)
	require.True(t, ok)
	require.Equal(t, "Красный", p.Model.Colors[0].Name)
}

func TestCatalogStoreProductLookup(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	p, ok := store.Product(2)
	require.True(t, ok)
	require.Equal(t, "Рубашка", p.Name)

	_, ok = store.Product(99)
	require.False(t, ok)
}

func TestCatalogStoreSelectDoesNotTouchList(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	other := models.Product{ID: 1, Name: "Другое", Model: models.Model{}}
	store.SelectProduct(other)

	selected, ok := store.Selected()
	require.True(t, ok)
	require.Equal(t, "Другое", selected.Name)
	require.Equal(t, sampleProducts(), store.Products())
}

func TestCatalogStoreSaveModelWithoutSelectionIsNoop(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	notified := 0
	store.Subscribe(func(service.SelectionChange) { notified++ })

	store.SaveModel(models.Model{Colors: []models.Color{{ID: 9, Name: "x"}}})

	require.Equal(t, sampleProducts(), store.Products())
	_, ok := store.Selected()
	require.False(t, ok)
	require.Zero(t, notified)
}

func TestCatalogStoreSaveModelUpdatesListAndSelection(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	p, _ := store.Product(2)
	store.SelectProduct(p)

	updated := models.Model{
		ParamValues: []models.ParamValue{{ParamID: 1, Value: "спортивное"}},
		Colors:      []models.Color{{ID: 3, Name: "Серый"}},
	}
	store.SaveModel(updated)

	listed := store.Products()
	require.Equal(t, dressModel(), listed[0].Model)
	require.Equal(t, updated, listed[1].Model)

	selected, ok := store.Selected()
	require.True(t, ok)
	require.Equal(t, 2, selected.ID)
	require.Equal(t, updated, selected.Model)

	// The store keeps its own copy of the saved model.
	updated.Colors[0].Name = "changed"
	selected, _ = store.Selected()
	require.Equal(t, "Серый", selected.Model.Colors[0].Name)
}

func TestCatalogStoreNotifiesOnIdentityChange(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	var changes []service.SelectionChange
	store.Subscribe(func(c service.SelectionChange) { changes = append(changes, c) })
	store.Subscribe(nil)

	first, _ := store.Product(1)
	second, _ := store.Product(2)

	store.SelectProduct(first)
	store.SelectProduct(first)
	store.SelectProduct(second)
	store.SaveModel(models.Model{})

	require.Len(t, changes, 3)
	require.Equal(t, 1, changes[0].Product.ID)
	require.Equal(t, 2, changes[1].Product.ID)
	require.Equal(t, 2, changes[2].Product.ID)
	require.Equal(t, models.Model{}, changes[2].Product.Model)
	require.Equal(t, []uint64{1, 2, 3}, []uint64{changes[0].Version, changes[1].Version, changes[2].Version})
}

func TestCatalogStoreSubscriberMayReadStore(t *testing.T) {
	t.Parallel()

	store := service.NewCatalogStore(sampleProducts(), nil)
	var seen models.Product
	store.Subscribe(func(service.SelectionChange) {
		seen, _ = store.Selected()
	})

	p, _ := store.Product(1)
	store.SelectProduct(p)
	require.Equal(t, 1, seen.ID)
}
