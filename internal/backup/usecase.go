package backup

import (
	"context"
	"io"

	"github.com/fekuna/omnipos-local-store/internal/model"
)

// Store is the slice of the persistence engine the backup authority needs.
type Store interface {
	Snapshot() *model.Document
	Replace(ctx context.Context, doc *model.Document) error
	Export(ctx context.Context, w io.Writer) error
}

type UseCase interface {
	LoadData(ctx context.Context) (*model.Document, error)
	Export(ctx context.Context, w io.Writer) error
	ExportToFile(ctx context.Context, path string) error

	// Import replaces the whole document with candidate. The current
	// document is untouched unless candidate passes every check.
	Import(ctx context.Context, r io.Reader) (*model.Document, error)
	ImportFile(ctx context.Context, path string) (*model.Document, error)

	Reset(ctx context.Context) error
}
