package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/templates"
	"github.com/Yalanday/test-selsup/utils"
)

const catalogTemplate = "catalog.html"

// PageData represents the data structure passed to the catalog template
type PageData struct {
	Title      string
	Products   []models.ProductSummary
	Editor     models.EditorView
	ShowEditor bool // False for the export view
}

// CatalogService renders the catalog page and exports it to PDF
type CatalogService struct {
	tmpl          *template.Template
	baseURL       string // Base URL for the render endpoint (e.g., "http://localhost:8080")
	chromePath    string
	exportTimeout time.Duration
	log           *zap.SugaredLogger
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService with the embedded templates parsed once
func NewCatalogService(baseURL, chromePath string, exportTimeout time.Duration, log *zap.SugaredLogger) (*CatalogService, error) {
	tmpl, err := template.ParseFS(templates.FS, catalogTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	if exportTimeout <= 0 {
		exportTimeout = 30 * time.Second
	}

	return &CatalogService{
		tmpl:          tmpl,
		baseURL:       baseURL,
		chromePath:    chromePath,
		exportTimeout: exportTimeout,
		log:           logger.OrNop(log),
	}, nil
}

// Summaries resolves each product's parameter values against the schema for display.
// A value whose ParamID has no schema entry gets an empty label.
func Summaries(params []models.ParameterSchema, products []models.Product, selectedID int, hasSelection bool) []models.ProductSummary {
	names := utils.ParamNames(params)

	summaries := make([]models.ProductSummary, 0, len(products))
	for _, p := range products {
		lines := make([]models.ParamLine, 0, len(p.Model.ParamValues))
		for _, pv := range p.Model.ParamValues {
			lines = append(lines, models.ParamLine{
				ParamID: pv.ParamID,
				Label:   utils.TitleLabel(names[pv.ParamID]),
				Value:   pv.Value,
			})
		}

		colors := make([]models.Color, len(p.Model.Colors))
		copy(colors, p.Model.Colors)

		summaries = append(summaries, models.ProductSummary{
			ID:       p.ID,
			Name:     p.Name,
			ImageURL: ImageURL(p, "thumb"),
			Params:   lines,
			Colors:   colors,
			Selected: hasSelection && p.ID == selectedID,
		})
	}
	return summaries
}

// ImageURL returns the URL used in <img src> for a product.
// Remote references are used as-is; local ones go through the image endpoint.
func ImageURL(p models.Product, size string) string {
	switch {
	case p.ImageRef == "":
		return ""
	case utils.IsRemoteRef(p.ImageRef):
		return p.ImageRef
	default:
		return fmt.Sprintf("/products/%d/image?size=%s", p.ID, size)
	}
}

// RenderCatalogHTML renders the catalog template
func (s *CatalogService) RenderCatalogHTML(data PageData) (string, error) {
	if data.Title == "" {
		data.Title = "Список товаров"
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, catalogTemplate, data); err != nil {
		s.log.Errorf("❌ Error rendering catalog: %v", err)
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// GeneratePDF prints the catalog render page to PDF using headless Chrome
func (s *CatalogService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.exportTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath := detectChromePath(s.chromePath); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		s.log.Warnf("⚠️  GeneratePDF: no Chrome binary found, relying on chromedp auto-detection")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := s.baseURL + "/catalog/render"
	s.log.Infof("📄 GeneratePDF: rendering %s", renderURL)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		s.log.Errorf("❌ GeneratePDF: %v", err)
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	s.log.Infof("✓ GeneratePDF: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
