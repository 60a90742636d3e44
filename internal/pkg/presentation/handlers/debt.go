package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/debtstats/api-ids/internal/pkg/domain"
	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	// IDS is source 6 within the World Bank Data API
	DebtStatisticsSourceID int = 6
	SeriesPageSize         int = 500
)

func NewRetrieveDebtSeriesHandler(logger zerolog.Logger, client worldbank.Client) http.HandlerFunc {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		ctx, span := tracer.Start(r.Context(), "retrieve-debt-series")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		_, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logger, ctx)

		indicator := chi.URLParam(r, "indicator")
		if indicator == "" {
			err = fmt.Errorf("no indicator code supplied in query")
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		req := worldbank.SeriesRequest{
			Indicator: indicator,
			SourceID:  DebtStatisticsSourceID,
			PerPage:   SeriesPageSize,
		}

		if locations := r.URL.Query().Get("locations"); locations != "" {
			req.Locations = strings.Split(locations, ",")
		}

		req.FromYear, err = yearParam(r, "from")
		if err == nil {
			req.ToYear, err = yearParam(r, "to")
		}
		if err != nil {
			log.Error().Err(err).Msg("bad request")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		result, err := client.FetchSeries(ctx, req)
		if err != nil {
			log.Error().Err(err).Msgf("failed to fetch series %s from %s", indicator, client.ApiURL())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		inBillions := r.URL.Query().Get("unit") == "billions"

		observations := make([]domain.DebtObservation, 0, len(result.Observations))
		for _, o := range result.Observations {
			value := o.Value
			if inBillions {
				value = domain.ToBillions(value)
			}

			observations = append(observations, domain.DebtObservation{
				Indicator:    o.Indicator,
				Location:     o.Location,
				LocationCode: o.LocationCode,
				Year:         o.Year,
				Value:        value,
			})
		}

		acceptedContentType := r.Header.Get("Accept")
		if strings.HasPrefix(acceptedContentType, "application/json") {
			serveObservationsAsJSON(observations, w)
		} else {
			serveObservationsAsTextCSV(observations, w)
		}
	})
}

func serveObservationsAsJSON(observations []domain.DebtObservation, w http.ResponseWriter) {
	body, err := json.Marshal(struct {
		Data []domain.DebtObservation `json:"data"`
	}{Data: observations})

	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.Write(body)
}

func serveObservationsAsTextCSV(observations []domain.DebtObservation, w http.ResponseWriter) {
	seriesCsv := bytes.NewBufferString("location;year;value")

	for _, o := range observations {
		row := fmt.Sprintf("\r\n%s;%s;%s",
			o.LocationCode, o.Year,
			strconv.FormatFloat(o.Value, 'f', -1, 64),
		)

		seriesCsv.Write([]byte(row))
	}

	w.Header().Add("Content-Type", "text/csv")
	w.Write(seriesCsv.Bytes())
}

func yearParam(r *http.Request, name string) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}

	year, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("malformed %s year: %s", name, err.Error())
	}

	return year, nil
}
