package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fekuna/omnipos-local-store/internal/apperror"
	"github.com/fekuna/omnipos-local-store/internal/logger"
	"github.com/fekuna/omnipos-local-store/internal/model"
	"go.uber.org/zap"
)

type Config struct {
	Path       string
	FileMode   os.FileMode
	StrictLoad bool
}

type Engine struct {
	mu     sync.RWMutex
	cfg    Config
	doc    *model.Document
	logger logger.ZapLogger
	now    func() time.Time
}

// Open creates the data directory if needed and loads the document.
func Open(ctx context.Context, cfg Config, log logger.ZapLogger) (*Engine, error) {
	if cfg.FileMode == 0 {
		cfg.FileMode = 0o644
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, apperror.Storage("create data directory", err)
	}

	e := &Engine{
		cfg:    cfg,
		doc:    model.NewDocument(),
		logger: log.With(zap.String("path", cfg.Path)),
		now:    time.Now,
	}
	if _, err := e.Load(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) Path() string {
	return e.cfg.Path
}

// Load reads the document from disk, replacing the in-memory state.
//
// An absent file is created with the default document. An unreadable or
// unparseable file is moved aside to <path>.corrupt-<timestamp> and replaced
// by the default document, unless StrictLoad is set, in which case the
// file is left alone and an error is returned.
func (e *Engine) Load(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := os.ReadFile(e.cfg.Path)
	if errors.Is(err, fs.ErrNotExist) {
		e.doc = model.NewDocument()
		if err := e.persistLocked(); err != nil {
			return nil, err
		}
		e.logger.Info("created empty document")
		return e.doc.Clone(), nil
	}
	if err == nil {
		var doc *model.Document
		doc, err = Decode(data)
		if err == nil {
			if cerr := Check(doc); cerr != nil {
				e.logger.Warn("document breaks an invariant", zap.Error(cerr))
			}
			e.doc = doc
			e.logger.Info("loaded document",
				zap.Int("products", len(doc.Products)),
				zap.Int("customers", len(doc.Customers)),
				zap.Int("sales", len(doc.Sales)),
			)
			return e.doc.Clone(), nil
		}
	}

	e.logger.Error("failed to load document", zap.Error(err))
	if e.cfg.StrictLoad {
		return nil, apperror.Storage("load document", err)
	}
	if err := e.quarantineLocked(); err != nil {
		return nil, err
	}
	e.doc = model.NewDocument()
	if err := e.persistLocked(); err != nil {
		return nil, err
	}
	return e.doc.Clone(), nil
}

// quarantineLocked renames the current file aside. The default document is
// never written over a file that could not be preserved.
func (e *Engine) quarantineLocked() error {
	aside := e.cfg.Path + ".corrupt-" + e.now().UTC().Format("20060102T150405Z")
	if err := os.Rename(e.cfg.Path, aside); err != nil {
		e.logger.Error("failed to move corrupt document aside", zap.Error(err))
		return apperror.Storage("preserve corrupt document", err)
	}
	e.logger.Warn("corrupt document moved aside, starting empty", zap.String("quarantine", aside))
	return nil
}

func (e *Engine) persistLocked() error {
	data, err := Encode(e.doc)
	if err != nil {
		return apperror.Storage("encode document", err)
	}
	if err := WriteFileAtomic(e.cfg.Path, data, e.cfg.FileMode); err != nil {
		e.logger.Error("failed to persist document", zap.Error(err))
		return apperror.Storage("persist document", err)
	}
	return nil
}

// View runs fn with the live document under a read lock. fn must not mutate
// it or keep references past its return.
func (e *Engine) View(ctx context.Context, fn func(doc *model.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.doc)
}

// Update runs fn under the write lock and persists the result. If fn returns
// an error nothing is written, so fn must validate before it mutates. If the
// write fails the mutation stays in memory and a storage error is returned.
func (e *Engine) Update(ctx context.Context, fn func(doc *model.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := fn(e.doc); err != nil {
		return err
	}
	return e.persistLocked()
}

// Replace swaps the whole document and persists it.
func (e *Engine) Replace(ctx context.Context, doc *model.Document) error {
	return e.Update(ctx, func(cur *model.Document) error {
		*cur = *doc.Clone()
		return nil
	})
}

// Snapshot returns a deep copy of the current document.
func (e *Engine) Snapshot() *model.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Export writes the current document in its stored form.
func (e *Engine) Export(ctx context.Context, w io.Writer) error {
	var data []byte
	err := e.View(ctx, func(doc *model.Document) error {
		var err error
		data, err = Encode(doc)
		return err
	})
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
