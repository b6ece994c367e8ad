// Package export turns the product list into the artifacts the static site
// consumes: the products.js bundle and an xlsx workbook.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"go.uber.org/zap"
)

// JSExporter writes the catalog as a `const products = [...];` bundle. The
// previous bundle is backed up first and the write is atomic, mirroring the
// product file repository.
type JSExporter struct {
	jsFile     string
	backupsDir string
	logger     *zap.Logger
}

func NewJSExporter(jsFile, backupsDir string, log *zap.Logger) (*JSExporter, error) {
	if err := os.MkdirAll(backupsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backups dir: %w", err)
	}
	if dir := filepath.Dir(jsFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}
	return &JSExporter{jsFile: jsFile, backupsDir: backupsDir, logger: log}, nil
}

func (e *JSExporter) Export(products []model.Product) error {
	if err := e.backupCurrent(); err != nil {
		e.logger.Warn("could not back up js bundle", zap.Error(err))
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}
	content := fmt.Sprintf("const products = %s;", data)

	tmp := e.jsFile + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, e.jsFile); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", e.jsFile, err)
	}

	e.logger.Info("js bundle exported",
		zap.String("path", e.jsFile),
		zap.Int("products", len(products)),
	)
	return nil
}

func (e *JSExporter) backupCurrent() error {
	data, err := os.ReadFile(e.jsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	name := fmt.Sprintf("products_%s.js", time.Now().Format("20060102_150405"))
	return os.WriteFile(filepath.Join(e.backupsDir, name), data, 0o644)
}
