package repository

import (
	"context"

	"github.com/Yalanday/test-selsup/models"
)

// CatalogRepositoryInterface defines the contract for loading the catalog seed
type CatalogRepositoryInterface interface {
	Load(ctx context.Context) (*models.Catalog, error)
}
