package presentation

import (
	"bytes"
	"compress/flate"
	"context"
	"net/http"

	"github.com/debtstats/api-ids/internal/pkg/application/services/catalogs"
	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/debtstats/api-ids/internal/pkg/presentation/handlers"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

type API interface {
	Start(port string) error
}

func NewAPI(r chi.Router, ctx context.Context, svc catalogs.CatalogService, openapiResponse *bytes.Buffer) API {
	return newIdsAPI(r, ctx, svc, openapiResponse)
}

func newIdsAPI(r chi.Router, ctx context.Context, svc catalogs.CatalogService, openapiResponse *bytes.Buffer) *idsAPI {
	log := logging.GetFromContext(ctx)

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	// Enable gzip compression for our responses
	compressor := middleware.NewCompressor(
		flate.DefaultCompression,
		"text/csv", "application/json",
	)
	r.Use(compressor.Handler)
	r.Use(otelchi.Middleware("api-ids", otelchi.WithChiRoutes(r)))

	a := &idsAPI{
		router: r,
		log:    log,
	}

	a.addCatalogHandlers(r, log, svc)
	a.addProbeHandlers(r)

	a.router.Get("/api/openapi", a.newRetrieveOpenAPIHandler(log, openapiResponse))

	return a
}

type idsAPI struct {
	router chi.Router
	log    zerolog.Logger
}

func (a *idsAPI) Start(port string) error {
	a.log.Info().Msgf("Starting api-ids on port:%s", port)
	return http.ListenAndServe(":"+port, a.router)
}

func (a *idsAPI) addCatalogHandlers(r chi.Router, log zerolog.Logger, svc catalogs.CatalogService) {
	r.Get(
		"/api/catalogs",
		handlers.NewRetrieveCatalogsHandler(log, svc),
	)
	r.Get(
		"/api/catalogs/{name}",
		handlers.NewRetrieveCatalogByNameHandler(log, svc),
	)
	r.Get(
		"/api/catalogs/{name}/{code}",
		handlers.NewRetrieveCatalogRecordHandler(log, svc),
	)
	r.Get(
		"/api/debt/{indicator}",
		handlers.NewRetrieveDebtSeriesHandler(log, worldbank.NewClient(svc.ApiURL())),
	)
}

func (a *idsAPI) addProbeHandlers(r chi.Router) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (a *idsAPI) newRetrieveOpenAPIHandler(log zerolog.Logger, openapiResponse *bytes.Buffer) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if openapiResponse == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(openapiResponse.Bytes())
	})
}
