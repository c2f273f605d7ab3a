package handler

import (
	"context"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/backup"
	"github.com/fekuna/omnipos-local-store/internal/envelope"
	"github.com/fekuna/omnipos-local-store/internal/logger"
)

type BackupHandler struct {
	uc     backup.UseCase
	logger logger.ZapLogger
}

func NewBackupHandler(uc backup.UseCase, log logger.ZapLogger) *BackupHandler {
	return &BackupHandler{
		uc:     uc,
		logger: log,
	}
}

type PathResponse struct {
	Path string `json:"path"`
}

func (h *BackupHandler) LoadData(ctx context.Context) envelope.Envelope {
	return envelope.From(h.uc.LoadData(ctx))
}

func (h *BackupHandler) ResetData(ctx context.Context) envelope.Envelope {
	if err := h.uc.Reset(ctx); err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(true)
}

// BackupData writes the document to destination. An empty destination means
// the caller dismissed the save prompt.
func (h *BackupHandler) BackupData(ctx context.Context, destination string) envelope.Envelope {
	if destination == "" {
		return envelope.Fail(apperror.Cancelled("backup cancelled"))
	}
	if err := h.uc.ExportToFile(ctx, destination); err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(PathResponse{Path: destination})
}

func (h *BackupHandler) ImportData(ctx context.Context, source string) envelope.Envelope {
	if source == "" {
		return envelope.Fail(apperror.Cancelled("import cancelled"))
	}
	if _, err := h.uc.ImportFile(ctx, source); err != nil {
		return envelope.Fail(err)
	}
	return envelope.OK(PathResponse{Path: source})
}
