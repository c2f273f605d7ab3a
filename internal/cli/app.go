package cli

import (
	"context"
	"path/filepath"

	"github.com/fekuna/omnipos-local-store/config"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/storage"

	backupH "github.com/fekuna/omnipos-local-store/internal/backup/handler"
	backupUCPkg "github.com/fekuna/omnipos-local-store/internal/backup/usecase"

	custH "github.com/fekuna/omnipos-local-store/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-local-store/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-local-store/internal/customer/usecase"

	invH "github.com/fekuna/omnipos-local-store/internal/inventory/handler"
	invRepoPkg "github.com/fekuna/omnipos-local-store/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-local-store/internal/inventory/usecase"

	prodH "github.com/fekuna/omnipos-local-store/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-local-store/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-local-store/internal/product/usecase"

	reportH "github.com/fekuna/omnipos-local-store/internal/report/handler"
	reportUCPkg "github.com/fekuna/omnipos-local-store/internal/report/usecase"

	saleH "github.com/fekuna/omnipos-local-store/internal/sale/handler"
	saleRepoPkg "github.com/fekuna/omnipos-local-store/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-local-store/internal/sale/usecase"
)

// App is the fully wired store: one engine shared by every handler.
type App struct {
	Engine    *storage.Engine
	Products  *prodH.ProductHandler
	Customers *custH.CustomerHandler
	Sales     *saleH.SaleHandler
	Inventory *invH.InventoryHandler
	Backup    *backupH.BackupHandler
	Reports   *reportH.ReportHandler
}

func NewApp(ctx context.Context, cfg *config.Config, log logger.ZapLogger) (*App, error) {
	engine, err := storage.Open(ctx, storage.Config{
		Path:       filepath.Join(cfg.Store.DataDir, cfg.Store.FileName),
		FileMode:   cfg.Store.FileMode,
		StrictLoad: cfg.Store.StrictLoad,
	}, log)
	if err != nil {
		return nil, err
	}

	prodUC := prodUCPkg.NewProductUseCase(prodRepoPkg.NewDocumentRepository(engine), log)
	custUC := custUCPkg.NewCustomerUseCase(custRepoPkg.NewDocumentRepository(engine), log)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepoPkg.NewDocumentRepository(engine), log)
	invUC := invUCPkg.NewInventoryUseCase(invRepoPkg.NewDocumentRepository(engine), log)
	backupUC := backupUCPkg.NewBackupUseCase(engine, log)
	reportUC := reportUCPkg.NewReportUseCase(engine, log)

	return &App{
		Engine:    engine,
		Products:  prodH.NewProductHandler(prodUC, log),
		Customers: custH.NewCustomerHandler(custUC, log),
		Sales:     saleH.NewSaleHandler(saleUC, log),
		Inventory: invH.NewInventoryHandler(invUC, log),
		Backup:    backupH.NewBackupHandler(backupUC, log),
		Reports:   reportH.NewReportHandler(reportUC, cfg.Report.RecentSales),
	}, nil
}
