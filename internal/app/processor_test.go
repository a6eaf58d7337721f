package app_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"tubelist/internal/app"
	"tubelist/internal/file"
	"tubelist/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "channels.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

// exportCall records one invocation of the export stub.
type exportCall struct {
	channelName string
	count       int
}

func TestBatch_ContinuesPastFailingChannel(t *testing.T) {
	path := writeConfig(t, `channels:
  - url: https://example.com/one
  - url: https://example.com/two
  - url: https://example.com/three
`)

	var exported []exportCall

	proc := &app.Processor{
		Extract: func(_ context.Context, channelURL string) ([]*models.Video, string, error) {
			if channelURL == "https://example.com/two" {
				return nil, "", errors.New("backend blew up")
			}
			return []*models.Video{{ID: "v"}}, "Extracted " + filepath.Base(channelURL), nil
		},
		Export: func(videos []*models.Video, channelName, _, _ string) (string, error) {
			exported = append(exported, exportCall{channelName, len(videos)})
			return "/tmp/" + channelName + ".xlsx", nil
		},
	}

	// Per-channel failure must not fail the batch.
	if err := proc.Batch(context.Background(), path); err != nil {
		t.Fatalf("batch should tolerate per-channel failure, got: %v", err)
	}

	if len(exported) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(exported))
	}
	if exported[0].channelName != "Extracted one" || exported[1].channelName != "Extracted three" {
		t.Fatalf("wrong channels exported: %+v", exported)
	}
}

func TestBatch_ExtractedNameReplacesPlaceholder(t *testing.T) {
	path := writeConfig(t, `channels:
  - url: https://example.com/named
    name: Declared Name
  - url: https://example.com/unnamed
`)

	var exported []exportCall

	proc := &app.Processor{
		Extract: func(context.Context, string) ([]*models.Video, string, error) {
			return []*models.Video{{ID: "v"}}, "Real Channel", nil
		},
		Export: func(videos []*models.Video, channelName, _, _ string) (string, error) {
			exported = append(exported, exportCall{channelName, len(videos)})
			return "", nil
		},
	}

	if err := proc.Batch(context.Background(), path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(exported) != 2 {
		t.Fatalf("expected 2 exports, got %d", len(exported))
	}
	if exported[0].channelName != "Declared Name" {
		t.Fatalf("declared name should win, got %q", exported[0].channelName)
	}
	if exported[1].channelName != "Real Channel" {
		t.Fatalf("placeholder should give way to extracted name, got %q", exported[1].channelName)
	}
}

func TestBatch_LoaderErrorAbortsBeforeExtraction(t *testing.T) {
	extractCalls := 0

	proc := &app.Processor{
		Extract: func(context.Context, string) ([]*models.Video, string, error) {
			extractCalls++
			return nil, "", nil
		},
		Export: func([]*models.Video, string, string, string) (string, error) {
			return "", nil
		},
	}

	err := proc.Batch(context.Background(), writeConfig(t, "channels: []\n"))
	if !errors.Is(err, file.ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got: %v", err)
	}
	if extractCalls != 0 {
		t.Fatalf("extraction attempted despite invalid config")
	}
}

func TestSingleChannel_NoVideosSkipsExport(t *testing.T) {
	exportCalls := 0

	proc := &app.Processor{
		Extract: func(context.Context, string) ([]*models.Video, string, error) {
			return nil, "Empty Channel", nil
		},
		Export: func([]*models.Video, string, string, string) (string, error) {
			exportCalls++
			return "", nil
		},
	}

	if err := proc.SingleChannel(context.Background(), "https://example.com/empty", "", ""); err != nil {
		t.Fatalf("zero videos should not be an error: %v", err)
	}
	if exportCalls != 0 {
		t.Fatalf("export should not run for an empty listing")
	}
}

func TestSingleChannel_ErrorsPropagate(t *testing.T) {
	wantErr := fmt.Errorf("extraction failed somewhere")

	proc := &app.Processor{
		Extract: func(context.Context, string) ([]*models.Video, string, error) {
			return nil, "", wantErr
		},
		Export: func([]*models.Video, string, string, string) (string, error) {
			return "", nil
		},
	}

	if err := proc.SingleChannel(context.Background(), "https://example.com/x", "", ""); !errors.Is(err, wantErr) {
		t.Fatalf("expected extraction error to propagate, got: %v", err)
	}
}
