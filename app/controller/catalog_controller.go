package controller

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/service"
)

// CatalogController handles HTTP requests for the product list, selection and export
type CatalogController struct {
	session        service.EditorSessionInterface
	catalogService service.CatalogServiceInterface
	imageService   service.ImageServiceInterface
	log            *zap.SugaredLogger
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(
	session service.EditorSessionInterface,
	catalogService service.CatalogServiceInterface,
	imageService service.ImageServiceInterface,
	log *zap.SugaredLogger,
) *CatalogController {
	return &CatalogController{
		session:        session,
		catalogService: catalogService,
		imageService:   imageService,
		log:            logger.OrNop(log),
	}
}

func (c *CatalogController) summaries() []models.ProductSummary {
	selected, ok := c.session.Selected()
	return service.Summaries(c.session.Params(), c.session.Products(), selected.ID, ok)
}

// Page handles GET /
// Renders the product list together with the editor panel
func (c *CatalogController) Page(w http.ResponseWriter, r *http.Request) {
	c.writePage(w, "Page", service.PageData{
		Products:   c.summaries(),
		Editor:     c.session.EditorView(),
		ShowEditor: true,
	})
}

// RenderCatalog handles GET /catalog/render
// Returns the product list without editing controls (used by chromedp for PDF export)
func (c *CatalogController) RenderCatalog(w http.ResponseWriter, r *http.Request) {
	c.writePage(w, "RenderCatalog", service.PageData{
		Title:    "Каталог товаров",
		Products: c.summaries(),
	})
}

func (c *CatalogController) writePage(w http.ResponseWriter, handler string, data service.PageData) {
	htmlContent, err := c.catalogService.RenderCatalogHTML(data)
	if err != nil {
		c.log.Errorf("❌ %s: Error rendering HTML: %v", handler, err)
		http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		c.log.Errorf("❌ %s: Error writing HTML response: %v", handler, err)
	}
}

// ListProducts handles GET /api/products
func (c *CatalogController) ListProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, c.log, http.StatusOK, c.summaries())
}

// SelectProduct handles POST /products/{id}/select
// Makes the product the editor's source; unsaved edits of the previous product are discarded
func (c *CatalogController) SelectProduct(w http.ResponseWriter, r *http.Request) {
	c.log.Infof("📥 SelectProduct: Received %s request to %s", r.Method, r.URL.Path)

	id, err := pathID(r, "id")
	if err != nil {
		c.log.Warnf("❌ SelectProduct: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.session.Select(id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to select product: %v", err), http.StatusInternalServerError)
		return
	}

	c.log.Infof("✅ SelectProduct: product id=%d selected", id)

	if isFormRequest(r) {
		redirectHome(w, r)
		return
	}
	writeJSON(w, c.log, http.StatusOK, models.SelectProductResponse{
		ProductID: id,
		Editor:    c.session.EditorView(),
	})
}

// ProductImage handles GET /products/{id}/image?size=thumb|medium
// Serves the optimized JPEG for products whose image is a local file
func (c *CatalogController) ProductImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var product models.Product
	found := false
	for _, p := range c.session.Products() {
		if p.ID == id {
			product, found = p, true
			break
		}
	}
	if !found {
		http.Error(w, fmt.Sprintf("Product not found: %d", id), http.StatusNotFound)
		return
	}

	data, err := c.imageService.ProductImage(product, r.URL.Query().Get("size"))
	if err != nil {
		if errors.Is(err, service.ErrNoImage) || errors.Is(err, service.ErrRemoteImage) {
			http.Error(w, "No local image for product", http.StatusNotFound)
			return
		}
		c.log.Errorf("❌ ProductImage: product id=%d: %v", id, err)
		http.Error(w, fmt.Sprintf("Failed to load image: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		c.log.Errorf("❌ ProductImage: Error writing response: %v", err)
	}
}

// ExportPDF handles GET /catalog/export.pdf
func (c *CatalogController) ExportPDF(w http.ResponseWriter, r *http.Request) {
	pdfData, err := c.catalogService.GeneratePDF(r.Context())
	if err != nil {
		c.log.Errorf("❌ ExportPDF: Error generating PDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="catalog.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfData); err != nil {
		c.log.Errorf("❌ ExportPDF: Error writing PDF response: %v", err)
	}
}
