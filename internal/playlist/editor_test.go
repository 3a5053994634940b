package playlist

import (
	"errors"
	"testing"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/shared"
)

// setupEditor saves a playlist and opens it for editing
func setupEditor(t *testing.T, entries []Entry) (*Editor, *Store) {
	t.Helper()

	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if err := store.Save("mix", entries); err != nil {
		t.Fatalf("failed to save playlist: %v", err)
	}

	editor, err := NewEditor(store, "mix")
	if err != nil {
		t.Fatalf("failed to open editor: %v", err)
	}

	return editor, store
}

func TestEditor(t *testing.T) {
	t.Run("OpenMissing", func(t *testing.T) {
		store, err := NewStore(t.TempDir())
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}

		if _, err := NewEditor(store, "nope"); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}

		if store.Exists("nope") {
			t.Error("opening a missing playlist should not create it")
		}
	})

	t.Run("AddAllowsDuplicates", func(t *testing.T) {
		editor, _ := setupEditor(t, []Entry{{Title: "Bruises", Duration: "210"}})

		editor.Add(models.SongInfo{Title: "Bruises", Duration: 210})

		if len(editor.Entries()) != 2 {
			t.Errorf("expected 2 entries, got %d", len(editor.Entries()))
		}

		if !editor.Dirty() {
			t.Error("editor should be dirty after add")
		}
	})

	t.Run("AddEntryAcceptsUnknownSongs", func(t *testing.T) {
		editor, _ := setupEditor(t, []Entry{{Title: "Bruises", Duration: "210"}})

		editor.AddEntry(Entry{Title: "Bootleg Demo", Duration: "245"})

		entries := editor.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		if entries[1].Title != "Bootleg Demo" || entries[1].Duration != "245" {
			t.Errorf("expected raw entry appended verbatim, got %v", entries[1])
		}

		if !editor.Dirty() {
			t.Error("editor should be dirty after add")
		}
	})

	t.Run("RemoveFirstMatchOnly", func(t *testing.T) {
		editor, _ := setupEditor(t, []Entry{
			{Title: "Bruises", Duration: "210"},
			{Title: "Ocean Eyes", Duration: "200"},
			{Title: "Bruises", Duration: "210"},
		})

		if !editor.Remove("Bruises") {
			t.Fatal("expected removal to be reported")
		}

		entries := editor.Entries()
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}

		if entries[0].Title != "Ocean Eyes" || entries[1].Title != "Bruises" {
			t.Errorf("expected only the first duplicate removed, got %v", entries)
		}
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		editor, _ := setupEditor(t, []Entry{{Title: "Bruises", Duration: "210"}})

		if editor.Remove("Unknown") {
			t.Error("expected no removal for missing title")
		}

		if editor.Dirty() {
			t.Error("failed removal should not mark the editor dirty")
		}
	})

	t.Run("ChangesStayInMemoryUntilSave", func(t *testing.T) {
		editor, store := setupEditor(t, []Entry{{Title: "Bruises", Duration: "210"}})

		editor.Add(models.SongInfo{Title: "Ocean Eyes", Duration: 200})

		onDisk, err := store.Load("mix")
		if err != nil {
			t.Fatalf("failed to load playlist: %v", err)
		}
		if len(onDisk) != 1 {
			t.Errorf("unsaved changes should not reach disk, got %v", onDisk)
		}

		if err := editor.Save(); err != nil {
			t.Fatalf("failed to save: %v", err)
		}

		if editor.Dirty() {
			t.Error("editor should be clean after save")
		}

		onDisk, err = store.Load("mix")
		if err != nil {
			t.Fatalf("failed to load playlist: %v", err)
		}
		if len(onDisk) != 2 {
			t.Errorf("expected 2 entries after save, got %v", onDisk)
		}
	})
}
