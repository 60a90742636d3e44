package catalogs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-ids/svcs/catalogs")

var ErrNoSuchCatalog error = fmt.Errorf("no such catalog")

//go:generate moq -rm -out catalogsvc_mock.go . CatalogService
type CatalogService interface {
	ApiURL() string
	Names() []string

	GetByName(ctx context.Context, name string) (*worldbank.CatalogResult, error)
	GetRecord(ctx context.Context, name, code string) (*worldbank.CatalogRecord, error)
	GetMetadata(ctx context.Context, name, code, field string) (string, error)

	Refresh(ctx context.Context) (int, error)
	Start(ctx context.Context)
	Shutdown(ctx context.Context)
}

func NewCatalogService(ctx context.Context, logger zerolog.Logger, apiURL string, cfgs []CatalogConfig) CatalogService {
	svc := &catalogSvc{
		ctx:          ctx,
		apiURL:       apiURL,
		client:       worldbank.NewClient(apiURL),
		cfgs:         cfgs,
		catalogs:     map[string]*worldbank.CatalogResult{},
		catalogIndex: map[string]map[string]int{},
		log:          logger,
		keepRunning:  true,
	}

	return svc
}

type catalogSvc struct {
	ctx    context.Context
	apiURL string
	client worldbank.Client
	cfgs   []CatalogConfig

	catalogMutex sync.Mutex
	catalogs     map[string]*worldbank.CatalogResult
	catalogIndex map[string]map[string]int

	log         zerolog.Logger
	keepRunning bool
}

func (svc *catalogSvc) ApiURL() string {
	return svc.apiURL
}

func (svc *catalogSvc) Names() []string {
	names := make([]string, 0, len(svc.cfgs))
	for _, cfg := range svc.cfgs {
		names = append(names, cfg.Name)
	}

	return names
}

func (svc *catalogSvc) GetByName(ctx context.Context, name string) (*worldbank.CatalogResult, error) {
	svc.catalogMutex.Lock()
	defer svc.catalogMutex.Unlock()

	result, ok := svc.catalogs[name]
	if !ok {
		return nil, ErrNoSuchCatalog
	}

	return result, nil
}

func (svc *catalogSvc) GetRecord(ctx context.Context, name, code string) (*worldbank.CatalogRecord, error) {
	svc.catalogMutex.Lock()
	defer svc.catalogMutex.Unlock()

	result, ok := svc.catalogs[name]
	if !ok {
		return nil, ErrNoSuchCatalog
	}

	index, ok := svc.catalogIndex[name][code]
	if !ok {
		return nil, worldbank.ErrNotFound
	}

	return &result.Records[index], nil
}

func (svc *catalogSvc) GetMetadata(ctx context.Context, name, code, field string) (string, error) {
	svc.catalogMutex.Lock()
	defer svc.catalogMutex.Unlock()

	result, ok := svc.catalogs[name]
	if !ok {
		return "", ErrNoSuchCatalog
	}

	return worldbank.FindMetadata(result, code, field)
}

func (svc *catalogSvc) Start(ctx context.Context) {
	svc.log.Info().Msg("starting catalog service")
	// TODO: Prevent multiple starts on the same service
	go svc.run()
}

func (svc *catalogSvc) Shutdown(ctx context.Context) {
	svc.log.Info().Msg("shutting down catalog service")
	svc.keepRunning = false
}

func (svc *catalogSvc) run() {
	nextRefreshTime := time.Now()

	for svc.keepRunning {
		if time.Now().After(nextRefreshTime) {
			svc.log.Info().Msg("refreshing catalogs")
			count, err := svc.Refresh(svc.ctx)

			if err != nil {
				svc.log.Error().Err(err).Msg("failed to refresh catalogs")
				// Retry after 10 minutes on error
				nextRefreshTime = time.Now().Add(10 * time.Minute)
			} else {
				svc.log.Info().Msgf("refreshed %d catalog records", count)
				// Catalog lists change rarely, so refresh daily on success
				nextRefreshTime = time.Now().Add(24 * time.Hour)
			}
		}

		// TODO: Use blocking channels instead of sleeps
		time.Sleep(1 * time.Second)
	}

	svc.log.Info().Msg("catalog service exiting")
}

func (svc *catalogSvc) Refresh(ctx context.Context) (count int, err error) {
	ctx, span := tracer.Start(ctx, "refresh-catalogs")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, svc.log, ctx)

	for _, cfg := range svc.cfgs {
		result, fetchErr := svc.client.FetchAll(ctx, cfg.request())
		if fetchErr != nil {
			err = fmt.Errorf("failed to fetch catalog %s: %w", cfg.Name, fetchErr)
			return
		}

		if result.Total > len(result.Records) {
			logger.Warn().Msgf(
				"catalog %s holds %d records upstream but page size is %d, result is truncated",
				cfg.Name, result.Total, cfg.PerPage,
			)
		}

		svc.storeCatalog(cfg.Name, result)
		count += len(result.Records)
	}

	return
}

func (svc *catalogSvc) storeCatalog(name string, result *worldbank.CatalogResult) {
	svc.catalogMutex.Lock()
	defer svc.catalogMutex.Unlock()

	svc.catalogs[name] = result
	svc.catalogIndex[name] = map[string]int{}

	for index := range result.Records {
		code := result.Records[index].Code
		// first record wins if the upstream ever repeats a code
		if _, exists := svc.catalogIndex[name][code]; !exists {
			svc.catalogIndex[name][code] = index
		}
	}
}
