package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/guttosm/fipepulse/internal/domain/models"
	"github.com/guttosm/fipepulse/internal/fipe"
	"github.com/guttosm/fipepulse/internal/history"
	"github.com/guttosm/fipepulse/internal/logger"
	"github.com/guttosm/fipepulse/internal/series"
	"github.com/guttosm/fipepulse/internal/storage"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("session not found")
	// ErrVehicleNotInComparison is returned when removing a vehicle that is not in the set.
	ErrVehicleNotInComparison = errors.New("vehicle not in comparison")
	// ErrInvalidLevel is returned for an unknown taxonomy level name.
	ErrInvalidLevel = errors.New("invalid selection level")
)

// Taxonomy levels accepted by Select.
const (
	LevelType  = "type"
	LevelBrand = "brand"
	LevelModel = "model"
	LevelYear  = "year"
)

// HistoryRunner is the slice of history.Fetcher the service depends on.
type HistoryRunner interface {
	FetchHistory(ctx context.Context, id models.VehicleIdentity, months int, onPoint history.PointFunc, onDone history.DoneFunc) error
}

// SessionView is a read-only snapshot of a session.
type SessionView struct {
	ID        string
	Selection models.VehicleSelection
	Months    int
	Vehicles  []models.SeriesEntry
}

// SelectionResult is the outcome of changing one taxonomy level: the new
// selection and the options of the level that follows (nil after the year).
type SelectionResult struct {
	Selection models.VehicleSelection
	NextLevel string
	Options   []models.CatalogEntry
}

// ComparisonService defines the operations the API exposes.
type ComparisonService interface {
	Brands(ctx context.Context, vt models.VehicleType) ([]models.CatalogEntry, error)
	Models(ctx context.Context, vt models.VehicleType, brand string) ([]models.CatalogEntry, error)
	Years(ctx context.Context, vt models.VehicleType, brand, model string) ([]models.CatalogEntry, error)
	Attributes(ctx context.Context, id models.VehicleIdentity) (models.VehicleAttributes, error)
	Periods(ctx context.Context) ([]models.ReferencePeriod, error)
	History(ctx context.Context, id models.VehicleIdentity, months int) ([]models.PricePoint, error)

	CreateSession(months int) (SessionView, error)
	GetSession(id string) (SessionView, error)
	DeleteSession(id string) error
	SetMonths(id string, months int) (SessionView, error)
	Select(ctx context.Context, id, level, code string) (SelectionResult, error)
	AddVehicle(id string, vehicle *models.VehicleIdentity, months int) (models.SeriesEntry, error)
	RemoveVehicle(id string, vehicle models.VehicleIdentity) error
	Chart(id string) (models.Chart, error)
}

// Options configures the comparison service.
type Options struct {
	// DefaultMonths is used when a session or request does not specify a count.
	DefaultMonths int
	// BaseContext parents every background fetch run; cancelling it stops them all.
	BaseContext context.Context
}

type comparisonService struct {
	catalog  fipe.Catalog
	periods  fipe.PeriodSource
	fetcher  HistoryRunner
	sessions storage.SessionRepository
	opts     Options
}

// NewComparisonService creates a new ComparisonService instance.
//
// Parameters:
//   - catalog (fipe.Catalog): Vehicle taxonomy and attributes.
//   - periods (fipe.PeriodSource): Shared reference period list.
//   - fetcher (HistoryRunner): Runs one vehicle's price history fetch.
//   - sessions (storage.SessionRepository): Session storage.
//   - opts (Options): Default month count and the parent context of background runs.
//
// Returns:
//   - ComparisonService: A ready-to-use service implementation.
func NewComparisonService(catalog fipe.Catalog, periods fipe.PeriodSource, fetcher HistoryRunner, sessions storage.SessionRepository, opts Options) ComparisonService {
	if opts.DefaultMonths < 1 {
		opts.DefaultMonths = 24
	}
	if opts.BaseContext == nil {
		opts.BaseContext = context.Background()
	}
	return &comparisonService{catalog: catalog, periods: periods, fetcher: fetcher, sessions: sessions, opts: opts}
}

func (s *comparisonService) Brands(ctx context.Context, vt models.VehicleType) ([]models.CatalogEntry, error) {
	return s.catalog.ListBrands(ctx, vt)
}

func (s *comparisonService) Models(ctx context.Context, vt models.VehicleType, brand string) ([]models.CatalogEntry, error) {
	return s.catalog.ListModels(ctx, vt, brand)
}

func (s *comparisonService) Years(ctx context.Context, vt models.VehicleType, brand, model string) ([]models.CatalogEntry, error) {
	return s.catalog.ListYears(ctx, vt, brand, model)
}

func (s *comparisonService) Attributes(ctx context.Context, id models.VehicleIdentity) (models.VehicleAttributes, error) {
	return s.catalog.VehicleAttributes(ctx, id)
}

func (s *comparisonService) Periods(ctx context.Context) ([]models.ReferencePeriod, error) {
	return s.periods.ReferencePeriods(ctx)
}

// History runs a fetch synchronously and returns every point it produced.
// On a period failure the partial points are returned along with the error.
func (s *comparisonService) History(ctx context.Context, id models.VehicleIdentity, months int) ([]models.PricePoint, error) {
	if months == 0 {
		months = s.opts.DefaultMonths
	}
	points := []models.PricePoint{}
	err := s.fetcher.FetchHistory(ctx, id, months, func(p models.PricePoint) {
		points = append(points, p)
	}, nil)
	return points, err
}

func (s *comparisonService) CreateSession(months int) (SessionView, error) {
	if months == 0 {
		months = s.opts.DefaultMonths
	}
	if months < 1 {
		return SessionView{}, fmt.Errorf("%w: got %d", history.ErrInvalidMonthCount, months)
	}
	sess := s.sessions.Create(months)
	logger.L().Info().Str("session", sess.ID).Int("months", months).Msg("session created")
	return view(sess), nil
}

func (s *comparisonService) GetSession(id string) (SessionView, error) {
	sess, err := s.session(id)
	if err != nil {
		return SessionView{}, err
	}
	return view(sess), nil
}

func (s *comparisonService) DeleteSession(id string) error {
	if !s.sessions.Delete(id) {
		return ErrSessionNotFound
	}
	logger.L().Info().Str("session", id).Msg("session deleted")
	return nil
}

func (s *comparisonService) SetMonths(id string, months int) (SessionView, error) {
	if months < 1 {
		return SessionView{}, fmt.Errorf("%w: got %d", history.ErrInvalidMonthCount, months)
	}
	sess, err := s.session(id)
	if err != nil {
		return SessionView{}, err
	}
	sess.SetMonths(months)
	return view(sess), nil
}

// Select changes one taxonomy level of the session's selection, clearing the
// levels after it, and loads the option list for the next level. The
// selection is only committed once that list has been fetched.
func (s *comparisonService) Select(ctx context.Context, id, level, code string) (SelectionResult, error) {
	sess, err := s.session(id)
	if err != nil {
		return SelectionResult{}, err
	}
	current := sess.Selection()
	code = strings.TrimSpace(code)

	var (
		next      models.VehicleSelection
		nextLevel string
		remember  string
		options   []models.CatalogEntry
	)
	switch level {
	case LevelType:
		vt, perr := models.ParseVehicleType(code)
		if perr != nil {
			return SelectionResult{}, perr
		}
		if next, err = current.WithVehicleType(vt); err != nil {
			return SelectionResult{}, err
		}
		nextLevel, remember = LevelBrand, storage.LevelBrands
		options, err = s.catalog.ListBrands(ctx, next.VehicleType)
	case LevelBrand:
		if next, err = current.WithBrand(code); err != nil {
			return SelectionResult{}, err
		}
		nextLevel, remember = LevelModel, storage.LevelModels
		options, err = s.catalog.ListModels(ctx, next.VehicleType, next.BrandCode)
	case LevelModel:
		if next, err = current.WithModel(code); err != nil {
			return SelectionResult{}, err
		}
		nextLevel, remember = LevelYear, storage.LevelYears
		options, err = s.catalog.ListYears(ctx, next.VehicleType, next.BrandCode, next.ModelCode)
	case LevelYear:
		if next, err = current.WithYear(code); err != nil {
			return SelectionResult{}, err
		}
	default:
		return SelectionResult{}, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
	if err != nil {
		return SelectionResult{}, err
	}

	sess.SetSelection(next)
	if remember != "" {
		sess.RememberOptions(remember, options)
	}
	return SelectionResult{Selection: next, NextLevel: nextLevel, Options: options}, nil
}

// AddVehicle puts a vehicle into the session's comparison set and starts its
// fetch run in the background. vehicle == nil uses the session's selection;
// months == 0 uses the session's month count. Points stream into the set as
// they arrive; the returned entry is the initial, empty one.
func (s *comparisonService) AddVehicle(id string, vehicle *models.VehicleIdentity, months int) (models.SeriesEntry, error) {
	sess, err := s.session(id)
	if err != nil {
		return models.SeriesEntry{}, err
	}

	var ident models.VehicleIdentity
	if vehicle != nil {
		ident = *vehicle
		if err := ident.Validate(); err != nil {
			return models.SeriesEntry{}, err
		}
	} else if ident, err = sess.Selection().Identity(); err != nil {
		return models.SeriesEntry{}, err
	}
	if months == 0 {
		months = sess.Months()
	}
	if months < 1 {
		return models.SeriesEntry{}, fmt.Errorf("%w: got %d", history.ErrInvalidMonthCount, months)
	}

	runCtx, cancel := context.WithCancel(s.opts.BaseContext)
	gen, err := sess.StartVehicle(ident, displayName(sess, ident), cancel)
	if err != nil {
		cancel()
		return models.SeriesEntry{}, err
	}
	agg := sess.Series

	go func() {
		_ = s.fetcher.FetchHistory(runCtx, ident, months,
			func(p models.PricePoint) {
				agg.AppendPointLive(runCtx, ident, p)
			},
			func(err error) {
				// Only this run's own cancellation leaves the entry as is; any
				// other outcome, wrapped cancel errors included, settles it.
				switch {
				case runCtx.Err() != nil:
				case err == nil:
					agg.SetStatusLive(runCtx, ident, models.StatusDone, nil)
				default:
					agg.SetStatusLive(runCtx, ident, models.StatusFailed, err)
				}
				sess.FinishRun(ident, gen)
				cancel()
			})
	}()

	logger.L().Info().Str("session", sess.ID).Str("vehicle", ident.Key()).Int("months", months).Msg("vehicle added")
	entry, _ := agg.Entry(ident)
	return entry, nil
}

// RemoveVehicle cancels the vehicle's fetch run and discards its series.
// Cancelling first guarantees no late point lands in a later re-add.
func (s *comparisonService) RemoveVehicle(id string, vehicle models.VehicleIdentity) error {
	sess, err := s.session(id)
	if err != nil {
		return err
	}
	if !sess.StopVehicle(vehicle) {
		return ErrVehicleNotInComparison
	}
	logger.L().Info().Str("session", sess.ID).Str("vehicle", vehicle.Key()).Msg("vehicle removed")
	return nil
}

func (s *comparisonService) Chart(id string) (models.Chart, error) {
	sess, err := s.session(id)
	if err != nil {
		return models.Chart{}, err
	}
	return series.BuildChart(sess.Series.Snapshot()), nil
}

func (s *comparisonService) session(id string) (*storage.Session, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func view(sess *storage.Session) SessionView {
	return SessionView{
		ID:        sess.ID,
		Selection: sess.Selection(),
		Months:    sess.Months(),
		Vehicles:  sess.Series.Snapshot(),
	}
}

// displayName joins the remembered brand, model and year names, falling back
// to the identity key when the session never listed them.
func displayName(sess *storage.Session, id models.VehicleIdentity) string {
	brand := sess.OptionName(storage.LevelBrands, id.BrandCode)
	model := sess.OptionName(storage.LevelModels, id.ModelCode)
	year := sess.OptionName(storage.LevelYears, id.YearCode)
	if brand == "" || model == "" || year == "" {
		return id.Key()
	}
	return strings.Join([]string{brand, model, year}, " ")
}
