package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/guttosm/fipepulse/internal/domain/models"
)

const (
	// DefaultPricingURL is the pricing reference service.
	DefaultPricingURL = "https://fipe.contrateumdev.com.br/api"

	referenceTablePath = "ConsultarTabelaDeReferencia"
	pricePath          = "ConsultarValorComTodosParametros"
	apiKeyHeader       = "chave"
)

// PeriodSource yields the catalog-wide reference period list, most recent first.
type PeriodSource interface {
	ReferencePeriods(ctx context.Context) ([]models.ReferencePeriod, error)
}

// PriceQuery is the request body of a single-period price lookup.
type PriceQuery struct {
	PeriodCode      int    `json:"codigoTabelaReferencia"`
	VehicleTypeCode int    `json:"codigoTipoVeiculo"`
	BrandCode       string `json:"codigoMarca"`
	Year            string `json:"ano"`
	FuelTypeCode    int    `json:"codigoTipoCombustivel"`
	ModelYear       int    `json:"anoModelo"`
	ModelCode       string `json:"codigoModelo"`
}

// PricingOptions configures PricingClient.
type PricingOptions struct {
	BaseURL string
	APIKey  string
	// RatePerSecond throttles requests to the pricing service. <= 0 disables throttling.
	RatePerSecond float64
	Burst         int
}

// PricingClient talks to the pricing reference service. Every request carries
// the pre-shared key header and passes through a shared rate limiter.
type PricingClient struct {
	t       *transport
	limiter *rate.Limiter
}

// NewPricingClient creates a PricingClient. A nil client uses DefaultHTTPOptions.
func NewPricingClient(opts PricingOptions, client *retryablehttp.Client) *PricingClient {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultPricingURL
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	if opts.Burst < 1 {
		opts.Burst = 1
	}
	var headers map[string]string
	if opts.APIKey != "" {
		headers = map[string]string{apiKeyHeader: opts.APIKey}
	}
	return &PricingClient{
		t:       newTransport(client, opts.BaseURL, headers),
		limiter: rate.NewLimiter(limit, opts.Burst),
	}
}

var _ PeriodSource = (*PricingClient)(nil)

// ReferencePeriods fetches the full reference table list, most recent first,
// exactly as the service orders it.
func (p *PricingClient) ReferencePeriods(ctx context.Context) ([]models.ReferencePeriod, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrCatalogUnavailable, err)
	}
	raw, _, err := p.t.do(ctx, http.MethodPost, referenceTablePath, []byte("{}"))
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: %s: invalid json", ErrCatalogUnavailable, referenceTablePath)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: %s: %s", ErrCatalogUnavailable, referenceTablePath, errorMessage(doc))
	}

	items := doc.Array()
	out := make([]models.ReferencePeriod, 0, len(items))
	for _, it := range items {
		out = append(out, models.ReferencePeriod{
			Code:  int(it.Get("Codigo").Int()),
			Label: strings.TrimSpace(it.Get("Mes").String()),
		})
	}
	return out, nil
}

// Price looks up the masked price of one vehicle at one reference period.
// Every failure, including transport errors, is wrapped in ErrPeriodLookupFailed.
func (p *PricingClient) Price(ctx context.Context, q PriceQuery) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: period %d: %w", ErrPeriodLookupFailed, q.PeriodCode, err)
	}
	body, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("%w: encode query: %w", ErrPeriodLookupFailed, err)
	}
	raw, _, err := p.t.do(ctx, http.MethodPost, pricePath, body)
	if err != nil {
		return "", fmt.Errorf("%w: period %d: %w", ErrPeriodLookupFailed, q.PeriodCode, err)
	}
	if !gjson.ValidBytes(raw) {
		return "", fmt.Errorf("%w: period %d: invalid json", ErrPeriodLookupFailed, q.PeriodCode)
	}
	doc := gjson.ParseBytes(raw)
	if doc.Get("erro").Exists() {
		return "", fmt.Errorf("%w: period %d: %s", ErrPeriodLookupFailed, q.PeriodCode, errorMessage(doc))
	}
	valor := doc.Get("Valor").String()
	if valor == "" {
		return "", fmt.Errorf("%w: period %d: empty Valor", ErrPeriodLookupFailed, q.PeriodCode)
	}
	return valor, nil
}

// errorMessage extracts the service's {"codigo":..,"erro":..} payload.
func errorMessage(doc gjson.Result) string {
	if e := doc.Get("erro"); e.Exists() {
		return fmt.Sprintf("codigo=%s erro=%s", doc.Get("codigo").String(), e.String())
	}
	return "unexpected payload"
}
