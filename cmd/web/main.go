package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-agent-console/internal/client"
	"github.com/MKhiriev/go-agent-console/internal/config"
	myHTTP "github.com/MKhiriev/go-agent-console/internal/handler/http"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/server"
	"github.com/MKhiriev/go-agent-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("web")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("unknown log level, keeping debug")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	console, err := client.NewConsole(cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error mounting app")
	}

	handler := myHTTP.NewHandler(console.Handler(), cfg.Web.BasePath, log, myHTTP.WithBuildInfo(buildInfo))

	srv, err := server.NewServer(handler.Init(), cfg.Web, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
