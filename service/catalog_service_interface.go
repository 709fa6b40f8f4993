package service

import "context"

// CatalogServiceInterface defines the contract for catalog page rendering and export
type CatalogServiceInterface interface {
	RenderCatalogHTML(data PageData) (string, error)
	GeneratePDF(ctx context.Context) ([]byte, error)
}
