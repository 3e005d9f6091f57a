package main

import (
	"go.uber.org/zap"

	"github.com/mohsinshafique7/clays-notes-backend/config"
	"github.com/mohsinshafique7/clays-notes-backend/controllers"
	"github.com/mohsinshafique7/clays-notes-backend/repositories"
	"github.com/mohsinshafique7/clays-notes-backend/routes"
	"github.com/mohsinshafique7/clays-notes-backend/services"
)

func main() {
	cfg := config.Load()

	var zl *zap.Logger
	var err error
	if cfg.Env == "production" {
		zl, err = zap.NewProduction()
	} else {
		zl, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatalw("database init failed", "error", err)
	}

	accountRepo := repositories.NewAccountRepository(db)
	recordRepo := repositories.NewSleepRecordRepository(db)
	noteRepo := repositories.NewNoteRepository(db)

	ledger := services.NewLedgerService()
	accountSvc := services.NewAccountService(accountRepo, recordRepo, ledger)
	recordSvc := services.NewSleepRecordService(recordRepo, ledger)
	reportSvc := services.NewReportService(recordRepo)
	noteSvc := services.NewNoteService(noteRepo)

	r := routes.SetupRouter(
		controllers.NewAccountController(accountSvc, logger),
		controllers.NewSleepRecordController(recordSvc, reportSvc, logger),
		controllers.NewNoteController(noteSvc, logger),
		logger,
	)

	logger.Infow("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}
