package export

import (
	"fmt"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// XLSXExporter writes the catalog as a spreadsheet for offline editing and
// reporting.
type XLSXExporter struct {
	sheetName string
	logger    *zap.Logger
}

func NewXLSXExporter(sheetName string, log *zap.Logger) *XLSXExporter {
	if sheetName == "" {
		sheetName = "Products"
	}
	return &XLSXExporter{sheetName: sheetName, logger: log}
}

func (e *XLSXExporter) Export(products []model.Product, path string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(e.sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headers := []string{
		"ID", "Name", "Category", "Price", "Rating",
		"Badge", "Description", "ImagePath", "Icon",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Category)
		price, _ := p.Price.Float64()
		row.AddCell().SetValue(price)
		row.AddCell().SetValue(p.Rating)
		row.AddCell().SetValue(p.Badge)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.ImagePath)
		row.AddCell().SetValue(p.Icon)
	}

	if err := file.Save(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	e.logger.Info("xlsx exported", zap.String("path", path), zap.Int("products", len(products)))
	return nil
}
