package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/backup"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"github.com/fekuna/omnipos-local-store/internal/storage"
	"go.uber.org/zap"
)

const backupFileMode = 0o644

type backupUseCase struct {
	store  backup.Store
	logger logger.ZapLogger
}

func NewBackupUseCase(store backup.Store, log logger.ZapLogger) backup.UseCase {
	return &backupUseCase{
		store:  store,
		logger: log,
	}
}

// DefaultBackupName is the file name suggested for a backup taken at now.
func DefaultBackupName(now time.Time) string {
	return "backup-sales-" + now.Format("2006-01-02") + ".json"
}

func (uc *backupUseCase) LoadData(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return uc.store.Snapshot(), nil
}

func (uc *backupUseCase) Export(ctx context.Context, w io.Writer) error {
	return uc.store.Export(ctx, w)
}

func (uc *backupUseCase) ExportToFile(ctx context.Context, path string) error {
	var buf bytes.Buffer
	if err := uc.store.Export(ctx, &buf); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperror.Storage("create backup directory", err)
	}
	if err := storage.WriteFileAtomic(path, buf.Bytes(), backupFileMode); err != nil {
		uc.logger.Error("failed to write backup", zap.String("path", path), zap.Error(err))
		return apperror.Storage("write backup", err)
	}
	uc.logger.Info("backup written", zap.String("path", path), zap.Int("bytes", buf.Len()))
	return nil
}

func (uc *backupUseCase) Import(ctx context.Context, r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperror.Storage("read import", err)
	}
	doc, err := parseCandidate(data)
	if err != nil {
		uc.logger.Warn("import rejected", zap.Error(err))
		return nil, err
	}
	if err := uc.store.Replace(ctx, doc); err != nil {
		return nil, err
	}
	uc.logger.Info("document imported",
		zap.Int("products", len(doc.Products)),
		zap.Int("customers", len(doc.Customers)),
		zap.Int("sales", len(doc.Sales)),
	)
	return doc, nil
}

func (uc *backupUseCase) ImportFile(ctx context.Context, path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperror.Storage("open import file", err)
	}
	defer f.Close()
	return uc.Import(ctx, f)
}

// parseCandidate requires all three collection keys at the top level before
// handing the document to the regular decoder.
func parseCandidate(data []byte) (*model.Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperror.Format("backup file is not a JSON object: %v", err)
	}
	for _, key := range []string{storage.KeyProducts, storage.KeyCustomers, storage.KeySales} {
		if _, ok := raw[key]; !ok {
			return nil, apperror.Format("backup file is missing %q", key)
		}
	}
	doc, err := storage.Decode(data)
	if err != nil {
		return nil, apperror.Format("backup file has the wrong shape: %v", err)
	}
	if err := storage.Check(doc); err != nil {
		return nil, apperror.Format("backup file is inconsistent: %v", err)
	}
	return doc, nil
}

func (uc *backupUseCase) Reset(ctx context.Context) error {
	if err := uc.store.Replace(ctx, model.NewDocument()); err != nil {
		uc.logger.Error("failed to reset document", zap.Error(err))
		return err
	}
	uc.logger.Warn("document reset to defaults")
	return nil
}
