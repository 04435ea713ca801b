package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-agent-console/internal/client"
	"github.com/MKhiriev/go-agent-console/internal/config"
	"github.com/MKhiriev/go-agent-console/internal/devproxy"
	myHTTP "github.com/MKhiriev/go-agent-console/internal/handler/http"
	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/server"
	"github.com/MKhiriev/go-agent-console/internal/tui"
	"github.com/MKhiriev/go-agent-console/internal/views"
	"github.com/MKhiriev/go-agent-console/internal/workers"
	"github.com/MKhiriev/go-agent-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewConsoleLogger("devserver")
	cfg, err := config.GetDevServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.Log.Level).Msg("unknown log level, keeping debug")
	}

	aliases, err := devproxy.NewAliases(cfg.SourceDir)
	if err != nil {
		log.Fatal().Err(err).Msg("error resolving aliases")
	}
	templatesDir := aliases.Resolve(devproxy.SourceAlias + "/templates")

	console, err := client.NewConsole(cfg.App, os.DirFS(templatesDir), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error mounting app")
	}

	rules := devproxy.DefaultRules(cfg.APITarget, cfg.WSTarget)
	table, err := devproxy.NewTable(rules)
	if err != nil {
		log.Fatal().Err(err).Msg("error building proxy table")
	}

	handler := myHTTP.NewHandler(console.Handler(), cfg.App.Web.BasePath, log,
		myHTTP.WithProxy(devproxy.New(table, log)),
		myHTTP.WithBuildInfo(buildInfo),
	)

	srv, err := server.NewServer(handler.Init(), config.Web{
		HTTPAddress:    cfg.HTTPAddress,
		RequestTimeout: cfg.App.Web.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if !cfg.NoWatch {
		workers.NewWorkers(
			workers.NewSourceWatcher(templatesDir, console, log, views.ChatRoute),
		).Run(ctx)
	}

	fmt.Fprintln(os.Stderr, tui.Banner(tui.BannerInfo{
		Title:     client.AppName + " dev server",
		Address:   cfg.HTTPAddress,
		BasePath:  cfg.App.Web.BasePath,
		Rules:     table.Rules(),
		SourceDir: aliases.Resolve(devproxy.SourceAlias),
		Watching:  !cfg.NoWatch,
		Build:     buildInfo,
	}))

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("dev server stopped")
	}
}
