package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-caesar-cipher/internal/adapter"
	"github.com/MKhiriev/go-caesar-cipher/internal/client"
	"github.com/MKhiriev/go-caesar-cipher/internal/config"
	"github.com/MKhiriev/go-caesar-cipher/internal/logger"
	"github.com/MKhiriev/go-caesar-cipher/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("caesar-cipher-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "usage: %s -op info|encrypt|decrypt|analyze|brute-force|interactive [-shift N] [-copy] [-server URL] text...\n", os.Args[0])
		os.Exit(2)
	}

	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Stringer("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Send()

	cipherAdapter, err := adapter.NewHTTPCipherAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := client.NewApp(cipherAdapter, cfg.Command, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
