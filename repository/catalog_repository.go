package repository

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Yalanday/test-selsup/logger"
	"github.com/Yalanday/test-selsup/models"
	"github.com/Yalanday/test-selsup/utils"
)

//go:embed seed/catalog.yaml
var defaultCatalog []byte

// CatalogRepository loads the parameter schema and the initial products from YAML
type CatalogRepository struct {
	path string // Empty means the embedded sample catalog
	log  *zap.SugaredLogger
}

// NewCatalogRepository creates a new CatalogRepository reading path, or the embedded sample when path is empty
func NewCatalogRepository(path string, log *zap.SugaredLogger) *CatalogRepository {
	return &CatalogRepository{
		path: strings.TrimSpace(path),
		log:  logger.OrNop(log),
	}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// Load reads and decodes the catalog
func (r *CatalogRepository) Load(ctx context.Context) (*models.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source := "embedded sample"
	data := defaultCatalog
	if r.path != "" {
		source = r.path
		fileData, err := os.ReadFile(r.path)
		if err != nil {
			r.log.Errorf("❌ Error reading catalog seed %s: %v", r.path, err)
			return nil, fmt.Errorf("failed to read catalog seed: %w", err)
		}
		data = fileData
	}

	r.log.Infof("🔍 Loading catalog from %s", source)

	catalog, err := DecodeCatalog(bytes.NewReader(data))
	if err != nil {
		r.log.Errorf("❌ Error decoding catalog seed %s: %v", source, err)
		return nil, err
	}

	r.log.Infof("✓ Loaded catalog: %d params, %d products", len(catalog.Params), len(catalog.Products))
	return catalog, nil
}

// DecodeCatalog parses a YAML catalog document.
// Parameter kinds are normalized (empty means text); references and kinds are not validated.
func DecodeCatalog(r io.Reader) (*models.Catalog, error) {
	var catalog models.Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return &models.Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	for i := range catalog.Params {
		catalog.Params[i].Kind = utils.NormalizeParamKind(string(catalog.Params[i].Kind))
	}

	return &catalog, nil
}
