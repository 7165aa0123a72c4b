package main

import (
	"log"
	"os"
	"strategyalign/cmd"
	"strategyalign/internal/logger"
)

func main() {
	apiHandler, cfg, err := cmd.InitializeDependencies(os.Getenv("ALIGN_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}

	logger.New().Infow("starting api", "port", cfg.Api.Port, "commit", os.Getenv("commit_hash"))
	err = apiHandler.StartApi(cfg.Api.Port)
	if err != nil {
		log.Fatal(err)
	}
}
