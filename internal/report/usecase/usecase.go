package usecase

import (
	"context"
	"sort"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/report"
	"github.com/fekuna/omnipos-local-store/internal/report/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type reportUseCase struct {
	reader report.Reader
	logger logger.ZapLogger
}

func NewReportUseCase(reader report.Reader, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		reader: reader,
		logger: log,
	}
}

func (uc *reportUseCase) Summary(ctx context.Context, recent int) (*dto.Summary, error) {
	if recent < 0 {
		return nil, apperror.Validation("recent sales count must not be negative")
	}

	s := &dto.Summary{RecentSales: []dto.RecentSale{}}
	err := uc.reader.View(ctx, func(doc *model.Document) error {
		s.SaleCount = len(doc.Sales)
		s.CustomerCount = len(doc.Customers)
		s.TotalSales = decimal.Zero
		for _, sale := range doc.Sales {
			s.TotalSales = s.TotalSales.Add(sale.Total)
		}
		s.AverageTicket = decimal.Zero
		if s.SaleCount > 0 {
			s.AverageTicket = s.TotalSales.DivRound(decimal.NewFromInt(int64(s.SaleCount)), 2)
		}
		for _, p := range doc.Products {
			s.TotalStock += p.StockBySize.Total()
		}

		names := make(map[string]string, len(doc.Customers))
		for _, c := range doc.Customers {
			names[c.ID] = c.Name
		}
		order := make([]int, len(doc.Sales))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return doc.Sales[order[a]].Date.After(doc.Sales[order[b]].Date)
		})
		if len(order) > recent {
			order = order[:recent]
		}
		for _, i := range order {
			sale := doc.Sales[i]
			s.RecentSales = append(s.RecentSales, dto.RecentSale{
				ID:            sale.ID,
				Date:          sale.Date,
				CustomerID:    sale.CustomerID,
				CustomerName:  names[sale.CustomerID],
				Quantity:      sale.Quantity(),
				PaymentMethod: sale.PaymentMethod,
				Total:         sale.Total,
			})
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("failed to build summary", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (uc *reportUseCase) StockDetail(ctx context.Context) ([]dto.ProductStock, error) {
	rows := []dto.ProductStock{}
	err := uc.reader.View(ctx, func(doc *model.Document) error {
		for _, p := range doc.Products {
			rows = append(rows, dto.ProductStock{
				ProductID:   p.ID,
				Name:        p.Name,
				Total:       p.StockBySize.Total(),
				InStock:     p.StockBySize.InStock(),
				StockBySize: p.StockBySize.Clone(),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
