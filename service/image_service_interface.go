package service

import "github.com/Yalanday/test-selsup/models"

// ImageServiceInterface defines the contract for serving product images
type ImageServiceInterface interface {
	ProductImage(product models.Product, size string) ([]byte, error)
}
