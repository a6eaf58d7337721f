package export

import (
	"os"
	"path/filepath"
	"testing"

	"tubelist/internal/models"

	"github.com/xuri/excelize/v2"
)

func TestSortByUploadDate_NewestFirstEmptyLast(t *testing.T) {
	videos := []*models.Video{
		{ID: "a", UploadDate: "20230101"},
		{ID: "b", UploadDate: ""},
		{ID: "c", UploadDate: "20230301"},
	}

	sorted := sortByUploadDate(videos)

	want := []string{"c", "a", "b"}
	for i, v := range sorted {
		if v.ID != want[i] {
			t.Fatalf("sort order wrong at %d: got %q, want %q", i, v.ID, want[i])
		}
	}

	// Input slice must stay untouched.
	if videos[0].ID != "a" {
		t.Fatalf("input slice was mutated")
	}
}

func TestExport_WritesWorkbook(t *testing.T) {
	dir := t.TempDir()
	videos := []*models.Video{
		{ID: "old", Title: "Old", Description: "older", URL: "https://www.youtube.com/watch?v=old", UploadDate: "20230101"},
		{ID: "new", Title: "New", Description: "newer", URL: "https://www.youtube.com/watch?v=new", UploadDate: "20230301"},
	}

	path, err := Export(videos, "Test Channel", dir, "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filepath.Base(path) != "Test Channel_videos.xlsx" {
		t.Fatalf("unexpected filename: %q", filepath.Base(path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("failed to close workbook: %v", err)
		}
	}()

	rows, err := f.GetRows("Videos")
	if err != nil {
		t.Fatalf("sheet 'Videos' missing: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	header := rows[0]
	want := []string{"ID", "Title", "Description", "URL"}
	for i, col := range want {
		if header[i] != col {
			t.Fatalf("header column %d: got %q, want %q", i, header[i], col)
		}
	}

	// Newest first.
	if rows[1][0] != "new" || rows[2][0] != "old" {
		t.Fatalf("rows not sorted newest first: %v / %v", rows[1], rows[2])
	}
}

func TestExport_CreatesDirAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "outputs")
	videos := []*models.Video{{ID: "a", Title: "A", URL: "u"}}

	first, err := Export(videos, "Chan", dir, "{channel_name}.xlsx")
	if err != nil {
		t.Fatalf("first export failed: %v", err)
	}
	if _, err := os.Stat(first); err != nil {
		t.Fatalf("output file missing: %v", err)
	}

	// Same computed name: silently overwritten.
	second, err := Export(videos, "Chan", dir, "{channel_name}.xlsx")
	if err != nil {
		t.Fatalf("second export failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical paths, got %q and %q", first, second)
	}
}

func TestExport_SanitizedFilename(t *testing.T) {
	dir := t.TempDir()
	videos := []*models.Video{{ID: "a"}}

	path, err := Export(videos, "A/B:C*D", dir, "")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if filepath.Base(path) != "A_B_C_D_videos.xlsx" {
		t.Fatalf("unexpected filename: %q", filepath.Base(path))
	}
}
