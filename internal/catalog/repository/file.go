package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/catalog"
	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FileRepository stores the product list as a single JSON document. Saves
// are atomic (temp file + rename) and the previous version is copied into
// the backups directory first.
type FileRepository struct {
	dataFile   string
	backupsDir string
	logger     *zap.Logger
}

func NewFileRepository(dataFile, backupsDir string, log *zap.Logger) (*FileRepository, error) {
	if err := os.MkdirAll(backupsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create backups dir: %w", err)
	}
	return &FileRepository{
		dataFile:   dataFile,
		backupsDir: backupsDir,
		logger:     log,
	}, nil
}

// productRecord mirrors the document format. Rating is a pointer so that an
// absent field can be told apart from an explicit zero and defaulted.
type productRecord struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Rating      *int            `json:"rating,omitempty"`
	Badge       string          `json:"badge,omitempty"`
	Description string          `json:"description,omitempty"`
	ImagePath   string          `json:"image_path,omitempty"`
	Icon        string          `json:"icon,omitempty"`
}

func (r *FileRepository) Load() ([]model.Product, error) {
	data, err := os.ReadFile(r.dataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Product{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.dataFile, err)
	}

	var records []productRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", r.dataFile, err)
	}

	products := make([]model.Product, 0, len(records))
	for _, rec := range records {
		rating := model.DefaultRating
		if rec.Rating != nil {
			rating = *rec.Rating
		}
		if rating < 0 {
			rating = 0
		}
		if rating > model.MaxRating {
			rating = model.MaxRating
		}
		products = append(products, model.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Category:    rec.Category,
			Price:       rec.Price,
			Rating:      rating,
			Badge:       rec.Badge,
			Description: rec.Description,
			ImagePath:   rec.ImagePath,
			Icon:        rec.Icon,
		})
	}
	return products, nil
}

func (r *FileRepository) Save(products []model.Product) error {
	if err := r.backupCurrent(); err != nil {
		r.logger.Warn("could not back up product file", zap.Error(err))
	}

	records := make([]productRecord, 0, len(products))
	for _, p := range products {
		rating := p.Rating
		records = append(records, productRecord{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Price:       p.Price,
			Rating:      &rating,
			Badge:       p.Badge,
			Description: p.Description,
			ImagePath:   p.ImagePath,
			Icon:        p.Icon,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	tmp := r.dataFile + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, r.dataFile); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", r.dataFile, err)
	}
	return nil
}

func (r *FileRepository) backupCurrent() error {
	data, err := os.ReadFile(r.dataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	name := fmt.Sprintf("products_%s.json", time.Now().Format("20060102_150405"))
	path := filepath.Join(r.backupsDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	r.logger.Debug("product file backed up", zap.String("path", path))
	return nil
}

var _ catalog.Repository = (*FileRepository)(nil)
