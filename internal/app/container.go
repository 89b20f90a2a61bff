package app

import (
	"context"

	"github.com/descry-dev/descry/internal/application/decode"
	"github.com/descry-dev/descry/internal/domain"
	"github.com/descry-dev/descry/internal/engine"
	"github.com/descry-dev/descry/internal/infrastructure/config"
	"github.com/descry-dev/descry/internal/infrastructure/files"
	"github.com/descry-dev/descry/internal/infrastructure/history"
	"github.com/descry-dev/descry/internal/pkg/logger"
	"github.com/descry-dev/descry/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	DecodeService *decode.Service
	ConfigLoader  *config.FileLoader
	Config        domain.Config
	HistoryStore  ports.HistoryRepository
	FileIntake    ports.FileIntake
	Logger        ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	eng := engine.New()
	historyStore := buildHistoryStore(cfg, log)

	decodeService := &decode.Service{
		ConfigProvider: cfgLoader,
		Classifier:     eng,
		Decoder:        eng,
		HistoryStore:   historyStore,
		Logger:         log,
	}

	return &Container{
		DecodeService: decodeService,
		ConfigLoader:  cfgLoader,
		Config:        cfg,
		HistoryStore:  historyStore,
		FileIntake:    files.NewReader(cfg),
		Logger:        log,
	}, nil
}

// buildHistoryStore honors the configured backend; "off" leaves the decode
// service without a store, which disables recording entirely.
func buildHistoryStore(cfg domain.Config, log ports.Logger) ports.HistoryRepository {
	switch cfg.ResolvedHistoryBackend() {
	case domain.HistoryBackendFile:
		return history.NewFileStore()
	case domain.HistoryBackendOff:
		return nil
	default:
		return history.NewSQLiteStore(log)
	}
}
