package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fipepulse/internal/domain/dto"
	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/series"
	"github.com/guttosm/fipepulse/internal/service"
)

// mockService implements service.ComparisonService with canned answers.
type mockService struct {
	options   []models.CatalogEntry
	attrs     models.VehicleAttributes
	periods   []models.ReferencePeriod
	points    []models.PricePoint
	view      service.SessionView
	selection service.SelectionResult
	entry     models.SeriesEntry
	chart     models.Chart
	err       error

	gotMonths  int
	gotVehicle *models.VehicleIdentity
	gotLevel   string
	gotCode    string
	gotRemoved models.VehicleIdentity
}

var _ service.ComparisonService = (*mockService)(nil)

func (m *mockService) Brands(context.Context, models.VehicleType) ([]models.CatalogEntry, error) {
	return m.options, m.err
}
func (m *mockService) Models(context.Context, models.VehicleType, string) ([]models.CatalogEntry, error) {
	return m.options, m.err
}
func (m *mockService) Years(context.Context, models.VehicleType, string, string) ([]models.CatalogEntry, error) {
	return m.options, m.err
}
func (m *mockService) Attributes(context.Context, models.VehicleIdentity) (models.VehicleAttributes, error) {
	return m.attrs, m.err
}
func (m *mockService) Periods(context.Context) ([]models.ReferencePeriod, error) {
	return m.periods, m.err
}
func (m *mockService) History(_ context.Context, _ models.VehicleIdentity, months int) ([]models.PricePoint, error) {
	m.gotMonths = months
	return m.points, m.err
}
func (m *mockService) CreateSession(months int) (service.SessionView, error) {
	m.gotMonths = months
	return m.view, m.err
}
func (m *mockService) GetSession(string) (service.SessionView, error) { return m.view, m.err }
func (m *mockService) DeleteSession(string) error                      { return m.err }
func (m *mockService) SetMonths(_ string, months int) (service.SessionView, error) {
	m.gotMonths = months
	return m.view, m.err
}
func (m *mockService) Select(_ context.Context, _, level, code string) (service.SelectionResult, error) {
	m.gotLevel, m.gotCode = level, code
	return m.selection, m.err
}
func (m *mockService) AddVehicle(_ string, v *models.VehicleIdentity, months int) (models.SeriesEntry, error) {
	m.gotVehicle, m.gotMonths = v, months
	return m.entry, m.err
}
func (m *mockService) RemoveVehicle(_ string, v models.VehicleIdentity) error {
	m.gotRemoved = v
	return m.err
}
func (m *mockService) Chart(string) (models.Chart, error) { return m.chart, m.err }

func setupRouterWithMock(s service.ComparisonService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(NewHandler(s), RouterOptions{RateLimitPerMinute: 1000})
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCatalogEndpoints(t *testing.T) {
	brands := []models.CatalogEntry{{Code: "59", Name: "VW - VolksWagen"}}
	cases := []struct {
		name   string
		svc    *mockService
		path   string
		status int
		level  string
	}{
		{name: "brands", svc: &mockService{options: brands}, path: "/api/v1/catalog/cars/brands", status: 200, level: "brands"},
		{name: "models", svc: &mockService{options: brands}, path: "/api/v1/catalog/cars/brands/59/models", status: 200, level: "models"},
		{name: "years", svc: &mockService{options: brands}, path: "/api/v1/catalog/trucks/brands/59/models/5940/years", status: 200, level: "years"},
		{name: "invalid type", svc: &mockService{}, path: "/api/v1/catalog/boats/brands", status: 400},
		{name: "upstream down", svc: &mockService{err: fmt.Errorf("%w: status 503", fipe.ErrCatalogUnavailable)}, path: "/api/v1/catalog/cars/brands", status: 502},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMock(tc.svc), http.MethodGet, tc.path, "")
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.level == "" {
				return
			}
			var out dto.OptionsResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if out.Level != tc.level || len(out.Options) != 1 {
				t.Fatalf("unexpected body %+v", out)
			}
		})
	}
}

func TestGetAttributes(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{name: "found", status: 200},
		{name: "not found", err: fmt.Errorf("%w: cars_1_2_3", fipe.ErrVehicleNotFound), status: 404},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockService{attrs: models.VehicleAttributes{ModelYear: 2014, Fuel: "Gasolina"}, err: tc.err}
			w := do(setupRouterWithMock(svc), http.MethodGet, "/api/v1/catalog/cars/brands/59/models/5940/years/2014-1", "")
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d", w.Code, tc.status)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	points := []models.PricePoint{{Value: 50000, PeriodLabel: "março/2024"}}
	cases := []struct {
		name       string
		svc        *mockService
		query      string
		status     int
		wantMonths int
		wantError  bool
	}{
		{name: "default months", svc: &mockService{points: points}, status: 200, wantMonths: 0},
		{name: "explicit months", svc: &mockService{points: points}, query: "?months=12", status: 200, wantMonths: 12},
		{name: "zero months rejected", svc: &mockService{}, query: "?months=0", status: 400},
		{name: "non numeric months", svc: &mockService{}, query: "?months=abc", status: 400},
		{
			name:      "partial history",
			svc:       &mockService{points: points, err: fmt.Errorf("%w: period 309", fipe.ErrPeriodLookupFailed)},
			status:    206,
			wantError: true,
		},
		{
			name:   "failure before first point",
			svc:    &mockService{points: []models.PricePoint{}, err: fmt.Errorf("%w", fipe.ErrPeriodLookupFailed)},
			status: 502,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMock(tc.svc), http.MethodGet, "/api/v1/history/cars/59/5940/2014-1"+tc.query, "")
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.status >= 400 {
				return
			}
			if tc.svc.gotMonths != tc.wantMonths {
				t.Fatalf("months=%d want %d", tc.svc.gotMonths, tc.wantMonths)
			}
			var out dto.HistoryResponse
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if len(out.Points) != 1 || (out.Error != "") != tc.wantError {
				t.Fatalf("unexpected body %+v", out)
			}
		})
	}
}

func TestListPeriods(t *testing.T) {
	svc := &mockService{periods: []models.ReferencePeriod{{Code: 310, Label: "março/2024"}}}
	w := do(setupRouterWithMock(svc), http.MethodGet, "/api/v1/periods", "")
	if w.Code != 200 {
		t.Fatalf("status=%d", w.Code)
	}
	var out dto.PeriodsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Periods) != 1 || out.Periods[0].Code != 310 {
		t.Fatalf("unexpected body %+v", out)
	}
}

func TestSessionEndpoints(t *testing.T) {
	view := service.SessionView{ID: "abc", Months: 24}
	cases := []struct {
		name   string
		svc    *mockService
		method string
		path   string
		body   string
		status int
		check  func(t *testing.T, m *mockService, body []byte)
	}{
		{
			name: "create without body", svc: &mockService{view: view},
			method: http.MethodPost, path: "/api/v1/sessions", status: 201,
			check: func(t *testing.T, m *mockService, body []byte) {
				if m.gotMonths != 0 {
					t.Fatalf("months=%d", m.gotMonths)
				}
			},
		},
		{
			name: "create with months", svc: &mockService{view: view},
			method: http.MethodPost, path: "/api/v1/sessions", body: `{"months":6}`, status: 201,
			check: func(t *testing.T, m *mockService, _ []byte) {
				if m.gotMonths != 6 {
					t.Fatalf("months=%d", m.gotMonths)
				}
			},
		},
		{
			name: "get unknown", svc: &mockService{err: service.ErrSessionNotFound},
			method: http.MethodGet, path: "/api/v1/sessions/nope", status: 404,
		},
		{
			name: "delete", svc: &mockService{},
			method: http.MethodDelete, path: "/api/v1/sessions/abc", status: 204,
		},
		{
			name: "months missing", svc: &mockService{view: view},
			method: http.MethodPut, path: "/api/v1/sessions/abc/months", body: `{}`, status: 400,
		},
		{
			name: "select brand", svc: &mockService{selection: service.SelectionResult{NextLevel: "model"}},
			method: http.MethodPut, path: "/api/v1/sessions/abc/selection/brand", body: `{"code":"59"}`, status: 200,
			check: func(t *testing.T, m *mockService, body []byte) {
				if m.gotLevel != "brand" || m.gotCode != "59" {
					t.Fatalf("level=%q code=%q", m.gotLevel, m.gotCode)
				}
				var out dto.SelectionResponse
				_ = json.Unmarshal(body, &out)
				if out.NextLevel != "model" {
					t.Fatalf("next=%q", out.NextLevel)
				}
			},
		},
		{
			name: "select out of order", svc: &mockService{err: models.ErrSelectionOrder},
			method: http.MethodPut, path: "/api/v1/sessions/abc/selection/model", body: `{"code":"5940"}`, status: 400,
		},
		{
			name: "add from selection", svc: &mockService{entry: models.SeriesEntry{Status: models.StatusLoading}},
			method: http.MethodPost, path: "/api/v1/sessions/abc/vehicles", status: 202,
			check: func(t *testing.T, m *mockService, _ []byte) {
				if m.gotVehicle != nil {
					t.Fatalf("expected selection to be used, got %+v", m.gotVehicle)
				}
			},
		},
		{
			name: "add explicit", svc: &mockService{},
			method: http.MethodPost, path: "/api/v1/sessions/abc/vehicles",
			body:   `{"vehicle_type":"cars","brand_code":"59","model_code":"5940","year_code":"2014-1","months":3}`,
			status: 202,
			check: func(t *testing.T, m *mockService, _ []byte) {
				want := models.VehicleIdentity{VehicleType: models.Cars, BrandCode: "59", ModelCode: "5940", YearCode: "2014-1"}
				if m.gotVehicle == nil || *m.gotVehicle != want || m.gotMonths != 3 {
					t.Fatalf("vehicle=%+v months=%d", m.gotVehicle, m.gotMonths)
				}
			},
		},
		{
			name: "add duplicate", svc: &mockService{err: series.ErrDuplicateVehicle},
			method: http.MethodPost, path: "/api/v1/sessions/abc/vehicles", status: 409,
		},
		{
			name: "remove", svc: &mockService{},
			method: http.MethodDelete, path: "/api/v1/sessions/abc/vehicles/cars_59_5940_2014-1", status: 204,
			check: func(t *testing.T, m *mockService, _ []byte) {
				if m.gotRemoved.Key() != "cars_59_5940_2014-1" {
					t.Fatalf("removed %+v", m.gotRemoved)
				}
			},
		},
		{
			name: "remove malformed key", svc: &mockService{},
			method: http.MethodDelete, path: "/api/v1/sessions/abc/vehicles/cars_59", status: 400,
		},
		{
			name: "remove absent", svc: &mockService{err: service.ErrVehicleNotInComparison},
			method: http.MethodDelete, path: "/api/v1/sessions/abc/vehicles/cars_59_5940_2014-1", status: 404,
		},
		{
			name: "chart", svc: &mockService{chart: models.Chart{Labels: []string{"março/2024"}}},
			method: http.MethodGet, path: "/api/v1/sessions/abc/chart", status: 200,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(setupRouterWithMock(tc.svc), tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("status=%d want %d body=%s", w.Code, tc.status, w.Body.String())
			}
			if tc.check != nil {
				tc.check(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

func TestNewRouter_RequestID(t *testing.T) {
	w := do(setupRouterWithMock(&mockService{}), http.MethodGet, "/api/v1/periods", "")
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}
