package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/guttosm/fipepulse/internal/domain/models"
)

// DefaultCatalogURL is the public FIPE v2 taxonomy API.
const DefaultCatalogURL = "https://parallelum.com.br/fipe/api/v2"

// Catalog resolves the vehicle taxonomy and a vehicle's current attributes.
type Catalog interface {
	ListBrands(ctx context.Context, vt models.VehicleType) ([]models.CatalogEntry, error)
	ListModels(ctx context.Context, vt models.VehicleType, brand string) ([]models.CatalogEntry, error)
	ListYears(ctx context.Context, vt models.VehicleType, brand, model string) ([]models.CatalogEntry, error)
	VehicleAttributes(ctx context.Context, id models.VehicleIdentity) (models.VehicleAttributes, error)
}

// CatalogClient talks to the FIPE v2 REST API. Each call is one best-effort
// round trip (plus transport-level retries); it holds no state.
type CatalogClient struct {
	t *transport
}

// NewCatalogClient creates a client for baseURL. A nil client uses DefaultHTTPOptions.
func NewCatalogClient(baseURL string, client *retryablehttp.Client) *CatalogClient {
	if baseURL == "" {
		baseURL = DefaultCatalogURL
	}
	return &CatalogClient{t: newTransport(client, baseURL, nil)}
}

var _ Catalog = (*CatalogClient)(nil)

// ListBrands handles GET {type}/brands.
func (c *CatalogClient) ListBrands(ctx context.Context, vt models.VehicleType) ([]models.CatalogEntry, error) {
	return c.list(ctx, fmt.Sprintf("%s/brands", vt))
}

// ListModels handles GET {type}/brands/{brand}/models.
func (c *CatalogClient) ListModels(ctx context.Context, vt models.VehicleType, brand string) ([]models.CatalogEntry, error) {
	return c.list(ctx, fmt.Sprintf("%s/brands/%s/models", vt, url.PathEscape(brand)))
}

// ListYears handles GET {type}/brands/{brand}/models/{model}/years.
func (c *CatalogClient) ListYears(ctx context.Context, vt models.VehicleType, brand, model string) ([]models.CatalogEntry, error) {
	return c.list(ctx, fmt.Sprintf("%s/brands/%s/models/%s/years", vt, url.PathEscape(brand), url.PathEscape(model)))
}

func (c *CatalogClient) list(ctx context.Context, path string) ([]models.CatalogEntry, error) {
	raw, _, err := c.t.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	out := []models.CatalogEntry{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrCatalogUnavailable, path, err)
	}
	if out == nil {
		out = []models.CatalogEntry{}
	}
	return out, nil
}

// attributesPayload is the FIPE v2 .../years/{year} response body.
type attributesPayload struct {
	Price          string `json:"price"`
	Brand          string `json:"brand"`
	Model          string `json:"model"`
	ModelYear      int    `json:"modelYear"`
	Fuel           string `json:"fuel"`
	CodeFipe       string `json:"codeFipe"`
	ReferenceMonth string `json:"referenceMonth"`
	VehicleType    int    `json:"vehicleType"`
	FuelAcronym    string `json:"fuelAcronym"`
}

// VehicleAttributes handles GET {type}/brands/{brand}/models/{model}/years/{year}.
// A 404, or a 2xx body without a model, yields ErrVehicleNotFound.
func (c *CatalogClient) VehicleAttributes(ctx context.Context, id models.VehicleIdentity) (models.VehicleAttributes, error) {
	path := fmt.Sprintf("%s/brands/%s/models/%s/years/%s",
		id.VehicleType, url.PathEscape(id.BrandCode), url.PathEscape(id.ModelCode), url.PathEscape(id.YearCode))

	raw, status, err := c.t.do(ctx, http.MethodGet, path, nil)
	if status == http.StatusNotFound {
		return models.VehicleAttributes{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id.Key())
	}
	if err != nil {
		return models.VehicleAttributes{}, err
	}

	var p attributesPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return models.VehicleAttributes{}, fmt.Errorf("%w: decode %s: %v", ErrCatalogUnavailable, path, err)
	}
	if p.Model == "" && p.CodeFipe == "" {
		return models.VehicleAttributes{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id.Key())
	}

	return models.VehicleAttributes{
		PriceLabel:      p.Price,
		BrandName:       p.Brand,
		ModelName:       p.Model,
		ModelYear:       p.ModelYear,
		Fuel:            p.Fuel,
		VehicleTypeCode: p.VehicleType,
		FipeCode:        p.CodeFipe,
		ReferenceMonth:  p.ReferenceMonth,
	}, nil
}
