// Package export writes channel video listings to spreadsheet files.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"tubelist/internal/domain/consts"
	"tubelist/internal/domain/errconsts"
	"tubelist/internal/models"
	"tubelist/internal/utils/logging"

	"github.com/xuri/excelize/v2"
)

// ErrExport wraps any underlying write failure, matched with errors.Is.
var ErrExport = errors.New("export failed")

// Export writes one xlsx file for the channel and returns its path.
//
// Rows are sorted newest first; an existing file of the same name is
// overwritten. Empty outputDir defaults to <cwd>/outputs, empty
// filenameFormat to the default template.
func Export(videos []*models.Video, channelName, outputDir, filenameFormat string) (string, error) {
	outputDir, err := resolveOutputDir(outputDir)
	if err != nil {
		return "", wrapExport(err)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", wrapExport(err)
	}

	if filenameFormat == "" {
		filenameFormat = consts.DefaultFilenameFormat
	}
	filename := FormatFilename(filenameFormat, SanitizeChannelName(channelName), time.Now())
	outputPath := filepath.Join(outputDir, filename)

	if err := writeWorkbook(sortByUploadDate(videos), outputPath); err != nil {
		return "", err
	}

	logging.D(1, "Wrote %d rows to %q", len(videos), outputPath)
	return outputPath, nil
}

// writeWorkbook builds the single-sheet workbook and saves it to outputPath.
func writeWorkbook(videos []*models.Video, outputPath string) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logging.E("Failed to close workbook for %q: %v", outputPath, err)
		}
	}()

	if err := f.SetSheetName("Sheet1", consts.SheetVideos); err != nil {
		return wrapExport(err)
	}

	header := make([]any, len(consts.ExcelColumns))
	for i, col := range consts.ExcelColumns {
		header[i] = col
	}
	if err := f.SetSheetRow(consts.SheetVideos, "A1", &header); err != nil {
		return wrapExport(err)
	}

	// Header is bold and centered; no other per-cell styling.
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return wrapExport(err)
	}
	endHeader, err := excelize.CoordinatesToCellName(len(consts.ExcelColumns), 1)
	if err != nil {
		return wrapExport(err)
	}
	if err := f.SetCellStyle(consts.SheetVideos, "A1", endHeader, styleID); err != nil {
		return wrapExport(err)
	}

	// Fixed widths, not content-adaptive.
	for i, width := range consts.ExcelColumnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return wrapExport(err)
		}
		if err := f.SetColWidth(consts.SheetVideos, col, col, width); err != nil {
			return wrapExport(err)
		}
	}

	for i, v := range videos {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return wrapExport(err)
		}
		row := []any{v.ID, v.Title, v.Description, v.URL}
		if err := f.SetSheetRow(consts.SheetVideos, cell, &row); err != nil {
			return wrapExport(err)
		}
	}

	if err := f.SaveAs(outputPath); err != nil {
		return wrapExport(fmt.Errorf(errconsts.SpreadsheetSaveFail, outputPath, err))
	}
	return nil
}

// sortByUploadDate returns a copy sorted by upload date descending. Records
// with an empty date sort last: empty is lexicographically smallest, which
// descending order places at the end. This tie-break is deliberate.
func sortByUploadDate(videos []*models.Video) []*models.Video {
	sorted := make([]*models.Video, len(videos))
	copy(sorted, videos)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UploadDate > sorted[j].UploadDate
	})
	return sorted
}

func resolveOutputDir(outputDir string) (string, error) {
	if outputDir != "" {
		return outputDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, consts.DefaultOutputDir), nil
}

func wrapExport(err error) error {
	return fmt.Errorf("%w: %v", ErrExport, err)
}
