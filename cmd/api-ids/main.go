package main

import (
	"bytes"
	"context"
	"flag"
	"io"
	"os"

	"github.com/debtstats/api-ids/internal/pkg/application/services/catalogs"
	"github.com/debtstats/api-ids/internal/pkg/infrastructure/clients/worldbank"
	"github.com/debtstats/api-ids/internal/pkg/presentation"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
)

func openCatalogsFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	cfgfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the catalogs configuration file %s.", path)
		return nil
	}
	return cfgfile
}

func openOASFile(ctx context.Context, path string) *os.File {
	log := logging.GetFromContext(ctx)
	oasfile, err := os.Open(path)
	if err != nil {
		log.Info().Msgf("failed to open the OpenAPI specification file %s.", path)
		return nil
	}
	return oasfile
}

var catalogsFileName string
var openApiSpecFileName string

func main() {
	serviceName := "api-ids"
	serviceVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion)
	defer cleanup()

	log.Info().Msgf("Starting up %s ...", serviceName)

	flag.StringVar(&catalogsFileName, "catalogs", "/opt/api-ids/catalogs.yaml", "A yaml file listing the catalogs to fetch and serve")
	flag.StringVar(&openApiSpecFileName, "oas", "/opt/api-ids/openapi.json", "An OpenAPI specification to be served on /api/openapi")
	flag.Parse()

	cfgfile := openCatalogsFile(ctx, catalogsFileName)
	if cfgfile == nil {
		log.Fatal().Msg("Unable to open catalogs configuration file. Exiting.")
	}

	cfgs, err := catalogs.LoadConfiguration(cfgfile)
	cfgfile.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog configuration")
	}

	var oasResponseBuffer *bytes.Buffer
	oasfile := openOASFile(ctx, openApiSpecFileName)
	if oasfile != nil {
		defer oasfile.Close()
		oasResponseBuffer = bytes.NewBuffer(nil)
		written, err := io.Copy(oasResponseBuffer, oasfile)
		if err != nil {
			log.Error().Err(err).Msgf("failed to copy OpenAPI specification into response buffer")
			oasResponseBuffer = nil
		} else {
			log.Info().Msgf("copied %d bytes from %s into openapi response buffer.", written, openApiSpecFileName)
		}
	}

	apiURL := env.GetVariableOrDefault(log, "WORLDBANK_API_URL", worldbank.DefaultApiURL)
	port := env.GetVariableOrDefault(log, "SERVICE_PORT", "8880")

	svc := catalogs.NewCatalogService(ctx, log, apiURL, cfgs)
	svc.Start(ctx)
	defer svc.Shutdown(ctx)

	r := chi.NewRouter()

	api := presentation.NewAPI(r, ctx, svc, oasResponseBuffer)
	err = api.Start(port)
	if err != nil {
		log.Fatal().Msgf("failed to start router: %s", err.Error())
	}
}
