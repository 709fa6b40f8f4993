package service

import "github.com/Yalanday/test-selsup/models"

// CatalogStoreInterface defines the contract for the product catalog and its selection
type CatalogStoreInterface interface {
	Products() []models.Product
	Product(id int) (models.Product, bool)
	SelectProduct(product models.Product)
	Selected() (models.Product, bool)
	SaveModel(updated models.Model)
	// Subscribe registers fn to be called after every change of the selected model's identity:
	// a different product selected, or the selected product's model replaced by SaveModel.
	Subscribe(fn func(SelectionChange))
}
