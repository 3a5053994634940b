package tasks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/boomboxfm/boombox/internal/playlist"
)

// setupStore seeds a store with two playlists
func setupStore(t *testing.T) *playlist.Store {
	t.Helper()

	store, err := playlist.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Save("roadtrip", []playlist.Entry{
		{Title: "Bruises", Duration: "210"},
		{Title: "Ocean Eyes", Duration: "200"},
	}); err != nil {
		t.Fatalf("failed to save playlist: %v", err)
	}

	if err := store.Save("focus", []playlist.Entry{
		{Title: "Borderline", Duration: "238"},
	}); err != nil {
		t.Fatalf("failed to save playlist: %v", err)
	}

	return store
}

func TestArchive(t *testing.T) {
	t.Run("TextFormat", func(t *testing.T) {
		store := setupStore(t)
		archiver := NewArchiver(store)
		outputDir := filepath.Join(t.TempDir(), "archive")

		result, err := archiver.Archive(context.Background(), nil, []string{"roadtrip", "focus"}, ArchiveOpts{
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("archive failed: %v", err)
		}

		if result.Archived != 2 || result.Failed != 0 {
			t.Errorf("expected 2 archived, got %+v", result)
		}

		data, err := os.ReadFile(filepath.Join(outputDir, "roadtrip.txt"))
		if err != nil {
			t.Fatalf("failed to read archived playlist: %v", err)
		}

		expected := "Song Title: Bruises, Duration: 210\nSong Title: Ocean Eyes, Duration: 200\n"
		if string(data) != expected {
			t.Errorf("expected %q, got %q", expected, string(data))
		}
	})

	t.Run("CSVFormat", func(t *testing.T) {
		store := setupStore(t)
		archiver := NewArchiver(store)
		outputDir := filepath.Join(t.TempDir(), "archive")

		result, err := archiver.Archive(context.Background(), nil, []string{"focus"}, ArchiveOpts{
			Format:    "csv",
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("archive failed: %v", err)
		}

		if result.Archived != 1 {
			t.Fatalf("expected 1 archived, got %+v", result)
		}

		data, err := os.ReadFile(filepath.Join(outputDir, "focus.csv"))
		if err != nil {
			t.Fatalf("failed to read archived playlist: %v", err)
		}

		if !strings.Contains(string(data), "Borderline,238") {
			t.Errorf("unexpected CSV contents: %q", string(data))
		}
	})

	t.Run("MissingPlaylistRecordedInManifest", func(t *testing.T) {
		store := setupStore(t)
		archiver := NewArchiver(store)
		outputDir := filepath.Join(t.TempDir(), "archive")

		result, err := archiver.Archive(context.Background(), nil, []string{"roadtrip", "nope"}, ArchiveOpts{
			OutputDir: outputDir,
		})
		if err != nil {
			t.Fatalf("archive failed: %v", err)
		}

		if result.Archived != 1 || result.Failed != 1 {
			t.Errorf("expected 1 archived and 1 failed, got %+v", result)
		}

		manifest, err := os.ReadFile(result.ManifestPath)
		if err != nil {
			t.Fatalf("failed to read manifest: %v", err)
		}

		var decoded ArchiveResult
		if err := json.Unmarshal(manifest, &decoded); err != nil {
			t.Fatalf("failed to decode manifest: %v", err)
		}

		if decoded.Failed != 1 {
			t.Errorf("expected manifest to record the failure, got %+v", decoded)
		}
	})

	t.Run("ProgressUpdates", func(t *testing.T) {
		store := setupStore(t)
		archiver := NewArchiver(store)
		prog := make(chan ProgressUpdate, 50)

		_, err := archiver.Archive(context.Background(), prog, []string{"roadtrip"}, ArchiveOpts{
			OutputDir: filepath.Join(t.TempDir(), "archive"),
		})
		if err != nil {
			t.Fatalf("archive failed: %v", err)
		}
		close(prog)

		var phases []Phase
		for update := range prog {
			phases = append(phases, update.Phase)
		}

		if len(phases) == 0 {
			t.Fatal("expected progress updates")
		}

		if phases[0] != LoadPlaylists {
			t.Errorf("expected first update to be load phase, got %s", phases[0])
		}

		if phases[len(phases)-1] != WriteManifest {
			t.Errorf("expected final update to be manifest phase, got %s", phases[len(phases)-1])
		}
	})
}
