package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/debtstats/api-ids/internal/pkg/application/services/catalogs"
	"github.com/debtstats/api-ids/internal/pkg/domain"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-ids/api")

func NewRetrieveCatalogsHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalogs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		summaries := []domain.CatalogSummary{}

		for _, name := range svc.Names() {
			result, getErr := svc.GetByName(ctx, name)
			if getErr != nil {
				// not fetched yet, serve the name with empty counts
				summaries = append(summaries, domain.CatalogSummary{Name: name})
				continue
			}

			summaries = append(summaries, domain.CatalogSummary{
				Name:  name,
				Count: len(result.Records),
				Total: result.Total,
			})
		}

		var body []byte
		body, err = json.Marshal(struct {
			Data []domain.CatalogSummary `json:"data"`
		}{Data: summaries})

		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.Write(body)
	})
}

func NewRetrieveCatalogByNameHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		acceptedContentType := r.Header.Get("Accept")
		if strings.HasPrefix(acceptedContentType, "application/json") {
			serveCatalogAsJSON(logger, svc, w, r)
		} else {
			serveCatalogAsTextCSV(logger, svc, w, r)
		}
	})
}

func serveCatalogAsJSON(logger zerolog.Logger, svc catalogs.CatalogService, w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracer.Start(r.Context(), "retrieve-catalog")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

	name := chi.URLParam(r, "name")

	result, err := svc.GetByName(ctx, name)
	if err != nil {
		log.Error().Err(err).Msgf("failed to get catalog %s", name)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	entries := make([]domain.CatalogEntry, 0, len(result.Records))
	for _, record := range result.Records {
		entries = append(entries, domain.CatalogEntry{
			Code:     record.Code,
			Name:     record.Name,
			Metadata: record.Extra,
		})
	}

	var body []byte
	body, err = json.Marshal(struct {
		Data  []domain.CatalogEntry `json:"data"`
		Total int                   `json:"total"`
	}{Data: entries, Total: result.Total})

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Header().Add("Cache-Control", "max-age=3600")
	w.Write(body)
}

func serveCatalogAsTextCSV(logger zerolog.Logger, svc catalogs.CatalogService, w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracer.Start(r.Context(), "retrieve-catalog-csv")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

	name := chi.URLParam(r, "name")

	result, err := svc.GetByName(ctx, name)
	if err != nil {
		log.Error().Err(err).Msgf("failed to get catalog %s", name)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	catalogCsv := bytes.NewBufferString("code;name")

	for _, record := range result.Records {
		row := fmt.Sprintf("\r\n%s;\"%s\"",
			record.Code,
			strings.ReplaceAll(record.Name, "\"", "\"\""),
		)

		catalogCsv.Write([]byte(row))
	}

	w.Header().Add("Content-Type", "text/csv")
	w.Write(catalogCsv.Bytes())
}

func NewRetrieveCatalogRecordHandler(logger zerolog.Logger, svc catalogs.CatalogService) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-catalog-record")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		name := chi.URLParam(r, "name")
		code, _ := url.QueryUnescape(chi.URLParam(r, "code"))
		if code == "" {
			err = fmt.Errorf("no record code supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		record, err := svc.GetRecord(ctx, name, code)
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var body []byte
		body, err = json.Marshal(struct {
			Data domain.CatalogEntry `json:"data"`
		}{Data: domain.CatalogEntry{
			Code:     record.Code,
			Name:     record.Name,
			Metadata: record.Extra,
		}})

		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.Header().Add("Cache-Control", "max-age=600")
		w.Write(body)
	})
}
