package main

import (
	"flag"
	"log"

	"github.com/quantfold/wfo-parser/cmd/common"
	"github.com/quantfold/wfo-parser/internal/logger"
	"github.com/quantfold/wfo-parser/internal/server"
	"github.com/quantfold/wfo-parser/pkg/config"
	"github.com/quantfold/wfo-parser/pkg/reporting"
)

func main() {
	envFile := flag.String("env", ".env", "Path to the optional .env file")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		common.PrintVersion("wfo-server")
		return
	}

	cfg, err := config.LoadServerConfig(*envFile)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fileLog, err := logger.NewLogger(cfg.LogDir, "wfo-server")
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer fileLog.Close()

	srv := server.New(
		cfg,
		fileLog,
		server.NewMemoryStore(cfg.DownloadTTL),
		reporting.NewDefaultExcelReporter(),
	)

	log.Printf("🚀 %s listening on %s", common.ProjectName, cfg.ListenAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
