package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-complaint-report/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SheetName is the single sheet of spreadsheet exports
const SheetName = "Report"

// Export formats
const (
	FormatXLSX = "xlsx"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Formats lists every export format
var Formats = []string{FormatXLSX, FormatPNG, FormatJPEG, FormatPDF, FormatCSV, FormatJSON}

// NormalizeFormat maps a format name or file extension to a format
func NormalizeFormat(format string) (string, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	switch f {
	case "xlsx", "excel":
		return FormatXLSX, nil
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "pdf", "csv", "json":
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// Exporter writes report views to files
type Exporter struct {
	Logger      *zap.Logger
	Scale       int // snapshot scale factor
	JPEGQuality int
	Now         func() time.Time
}

// NewExporter creates an exporter with snapshot scale 2 and JPEG quality 95
func NewExporter(logger *zap.Logger) *Exporter {
	return &Exporter{Logger: logger, Scale: 2, JPEGQuality: 95, Now: time.Now}
}

// Export writes view to path. Failures are logged and reported in the
// result; they are never returned as errors.
func (e *Exporter) Export(view model.ReportView, format, path string) model.ExportResult {
	result := model.ExportResult{
		View:      view.ID,
		Type:      format,
		Path:      path,
		Timestamp: e.now(),
	}

	count, err := e.write(view, format, path)
	result.RecordCount = count
	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
		e.logger().Error("Export failed",
			zap.String("view", view.ID),
			zap.String("format", format),
			zap.String("path", path),
			zap.Error(err))
		return result
	}

	e.logger().Info("Export written",
		zap.String("view", view.ID),
		zap.String("format", format),
		zap.String("path", path),
		zap.Int("rows", count))
	return result
}

func (e *Exporter) write(view model.ReportView, format, path string) (int, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return 0, err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	switch f {
	case FormatXLSX:
		return len(view.Rows), writeXLSX(view.Rows, path)
	case FormatCSV:
		return len(view.Rows), writeCSV(view.Rows, path)
	case FormatJSON:
		return len(view.Rows), writeJSON(view, e.now(), path)
	case FormatPNG:
		return len(view.Rows), writeImage(path, func(buf *bytes.Buffer) error {
			return png.Encode(buf, RenderView(view, e.Scale))
		})
	case FormatJPEG:
		return len(view.Rows), writeImage(path, func(buf *bytes.Buffer) error {
			return encodeJPEG(buf, RenderView(view, e.Scale), e.JPEGQuality)
		})
	case FormatPDF:
		return len(view.Rows), writePDF(RenderView(view, e.Scale), e.JPEGQuality, path)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func (e *Exporter) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e *Exporter) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

// ------------------- Spreadsheet -------------------

// writeXLSX writes rows to a workbook with one sheet; the header row is the
// union of row columns in first-appearance order
func writeXLSX(rows []model.ReportRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := model.Headers(rows)
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(SheetName, cell, cell, headerStyle); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for r, row := range rows {
		for col, h := range headers {
			v, ok := row.Get(h)
			if !ok {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// ------------------- CSV / JSON -------------------

func writeCSV(rows []model.ReportRow, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	headers := model.Headers(rows)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := row.Get(h); ok {
				record[i] = fmt.Sprint(v)
			}
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func writeJSON(view model.ReportView, now time.Time, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	exportData := map[string]interface{}{
		"export_info": map[string]interface{}{
			"view":         view.ID,
			"title":        view.Title,
			"subtitle":     view.Subtitle,
			"exported_at":  now.UTC(),
			"record_count": len(view.Rows),
		},
		"rows": view.Rows,
	}
	if err := encoder.Encode(exportData); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ------------------- Snapshot / PDF -------------------

func encodeJPEG(buf *bytes.Buffer, img image.Image, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = 95
	}
	return jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
}

// writeImage encodes fully before touching the file, so a failed render leaves no file behind
func writeImage(path string, encode func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// writePDF places the snapshot on a single page of exactly its size,
// landscape when the image is wider than tall
func writePDF(img image.Image, quality int, path string) error {
	var buf bytes.Buffer
	if err := encodeJPEG(&buf, img, quality); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	w, h, landscape := PageSize(img)
	orientation, size := "P", fpdf.SizeType{Wd: w, Ht: h}
	if landscape {
		// fpdf swaps the dimensions for landscape pages
		orientation, size = "L", fpdf.SizeType{Wd: h, Ht: w}
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader("snapshot", opts, &buf)
	pdf.ImageOptions("snapshot", 0, 0, w, h, false, opts, 0, "")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// PageSize returns the PDF page size for a snapshot and whether it is landscape
func PageSize(img image.Image) (w, h float64, landscape bool) {
	w = float64(img.Bounds().Dx())
	h = float64(img.Bounds().Dy())
	return w, h, w > h
}
