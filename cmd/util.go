package cmd

import (
	"fmt"
	"strategyalign/api"
	"strategyalign/internal/app"
	"strategyalign/internal/repository"
	l3_service "strategyalign/internal/service/l3"
	"strategyalign/internal/util"
)

func InitializeAlignmentApp(cfg util.Config) (app.AlignmentApp, error) {
	alignmentService, err := l3_service.NewAlignmentServiceFromConfig(cfg.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to construct alignment service: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(cfg.Gpt.ApiKey)
	if err != nil {
		return nil, err
	}

	return app.NewAlignmentApp(
		alignmentService,
		repository.NewTableRepository(),
		repository.NewExportRepository(),
		gptRepository,
	), nil
}

// InitializeDependencies loads config from configPath (or the ALIGN_ENV
// default) and wires the api handler
func InitializeDependencies(configPath string) (*api.ApiHandler, *util.Config, error) {
	cfg, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	alignmentApp, err := InitializeAlignmentApp(*cfg)
	if err != nil {
		return nil, nil, err
	}

	apiHandler := &api.ApiHandler{
		AlignmentApp:   alignmentApp,
		AllowedOrigins: cfg.Api.AllowedOrigins,
		MaxUploadBytes: cfg.Api.MaxUploadBytes,
	}

	return apiHandler, cfg, nil
}
