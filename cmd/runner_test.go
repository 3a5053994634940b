package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/boomboxfm/boombox/internal/shared"
	tu "github.com/boomboxfm/boombox/internal/testing"
)

// testEnv writes a config file pointing at a temp database and playlist
// directory, and returns the config path with a runner wired to buffers.
func testEnv(t *testing.T, input string) (string, *Runner, *bytes.Buffer) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.toml")

	contents := fmt.Sprintf(`[database]
path = %q
max_open_conns = 4
max_idle_conns = 2

[library]
playlist_dir = %q
log_level = "error"
`, filepath.Join(dir, "boombox.db"), dir)

	if err := os.WriteFile(configPath, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Logger: shared.NewLogger(output),
		Input:  strings.NewReader(input),
		Output: output,
	})

	return configPath, runner, output
}

// run executes a CLI invocation against the runner's registered commands
func run(t *testing.T, runner *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "boombox",
		Commands: runner.register(),
	}

	return app.Run(context.Background(), append([]string{"boombox"}, args...))
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			input := strings.NewReader("")

			runner := NewRunner(RunnerOpts{
				Config: config,
				Logger: logger,
				Input:  input,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.input != input {
				t.Error("expected input to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
			if runner.input != os.Stdin {
				t.Error("expected input to default to os.Stdin")
			}
			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s\n", "world"); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}

		if output.String() != "hello world\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})

	t.Run("writePlain with failing writer", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.writePlain("hello\n"); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]int{"count": 3}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		if output.String() != "{\"count\":3}\n" {
			t.Errorf("unexpected output: %q", output.String())
		}
	})
}

func TestSetupDatabase(t *testing.T) {
	configPath, runner, _ := testEnv(t, "")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	tu.AssertFileExists(t, config.Database.Path)
}

func TestSongCommands(t *testing.T) {
	configPath, runner, output := testEnv(t, "")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := run(t, runner, "song", "add", "-c", configPath, "--artist", "Billie Eilish", "--duration", "210", "--year", "2020", "Bruises"); err != nil {
		t.Fatalf("song add failed: %v", err)
	}

	if !strings.Contains(output.String(), "Added 'Bruises'") {
		t.Errorf("expected add confirmation, got %q", output.String())
	}

	output.Reset()
	if err := run(t, runner, "song", "list", "-c", configPath); err != nil {
		t.Fatalf("song list failed: %v", err)
	}

	if !strings.Contains(output.String(), "Billie Eilish - Bruises") {
		t.Errorf("expected listing to contain song, got %q", output.String())
	}

	output.Reset()
	if err := run(t, runner, "song", "search", "-c", configPath, "brui"); err != nil {
		t.Fatalf("song search failed: %v", err)
	}

	if !strings.Contains(output.String(), "Bruises") {
		t.Errorf("expected search hit, got %q", output.String())
	}

	output.Reset()
	if err := run(t, runner, "song", "delete", "-c", configPath, "Bruises"); err != nil {
		t.Fatalf("song delete failed: %v", err)
	}

	output.Reset()
	if err := run(t, runner, "song", "delete", "-c", configPath, "Bruises"); err != nil {
		t.Fatalf("deleting a missing song should not error: %v", err)
	}

	if !strings.Contains(output.String(), "No song titled") {
		t.Errorf("expected missing-song message, got %q", output.String())
	}
}

func TestArtistDeleteCascades(t *testing.T) {
	configPath, runner, output := testEnv(t, "")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	for _, args := range [][]string{
		{"song", "add", "-c", configPath, "--artist", "Billie Eilish", "--duration", "210", "Bruises"},
		{"song", "add", "-c", configPath, "--artist", "Tame Impala", "--duration", "238", "Borderline"},
	} {
		if err := run(t, runner, args...); err != nil {
			t.Fatalf("song add failed: %v", err)
		}
	}

	if err := run(t, runner, "artist", "delete", "-c", configPath, "Billie Eilish"); err != nil {
		t.Fatalf("artist delete failed: %v", err)
	}

	output.Reset()
	if err := run(t, runner, "song", "list", "-c", configPath); err != nil {
		t.Fatalf("song list failed: %v", err)
	}

	if strings.Contains(output.String(), "Bruises") {
		t.Error("deleted artist's songs should not be listed")
	}
	if !strings.Contains(output.String(), "Borderline") {
		t.Error("other artists' songs should survive")
	}
}

func TestFavoriteCommands(t *testing.T) {
	configPath, runner, output := testEnv(t, "")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := run(t, runner, "user", "add", "-c", configPath, "--email", "ada@example.com", "--dob", "2001-12-18", "Ada"); err != nil {
		t.Fatalf("user add failed: %v", err)
	}

	if err := run(t, runner, "song", "add", "-c", configPath, "--artist", "Billie Eilish", "--duration", "210", "Bruises"); err != nil {
		t.Fatalf("song add failed: %v", err)
	}

	if err := run(t, runner, "favorite", "add", "-c", configPath, "--email", "ada@example.com", "--title", "Bruises"); err != nil {
		t.Fatalf("favorite add failed: %v", err)
	}

	output.Reset()
	if err := run(t, runner, "favorite", "list", "-c", configPath, "--email", "ada@example.com"); err != nil {
		t.Fatalf("favorite list failed: %v", err)
	}

	if !strings.Contains(output.String(), "Billie Eilish - Bruises") {
		t.Errorf("expected favorite listing, got %q", output.String())
	}
}

func TestPlaylistCreate(t *testing.T) {
	configPath, runner, output := testEnv(t, "2\n1\ndone\n")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	for _, args := range [][]string{
		{"song", "add", "-c", configPath, "--artist", "Billie Eilish", "--duration", "210", "Bruises"},
		{"song", "add", "-c", configPath, "--artist", "Billie Eilish", "--duration", "200", "Ocean Eyes"},
	} {
		if err := run(t, runner, args...); err != nil {
			t.Fatalf("song add failed: %v", err)
		}
	}

	if err := run(t, runner, "playlist", "create", "-c", configPath, "roadtrip"); err != nil {
		t.Fatalf("playlist create failed: %v", err)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	path := filepath.Join(config.Library.PlaylistDir, "roadtrip.txt")
	contents := tu.MustReadFile(t, path)

	expected := "Song Title: Ocean Eyes, Duration: 200\nSong Title: Bruises, Duration: 210\n"
	if contents != expected {
		t.Errorf("expected %q, got %q", expected, contents)
	}

	if !strings.Contains(output.String(), "Saved 2 song(s)") {
		t.Errorf("expected save confirmation, got %q", output.String())
	}
}

func TestPlaylistEdit(t *testing.T) {
	t.Run("RemoveAndSave", func(t *testing.T) {
		configPath, runner, _ := testEnv(t, "2\nBruises\n3\n")

		if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		config, err := shared.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		path := filepath.Join(config.Library.PlaylistDir, "mix.txt")
		seed := "Song Title: Bruises, Duration: 210\nSong Title: Ocean Eyes, Duration: 200\n"
		if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
			t.Fatalf("failed to seed playlist: %v", err)
		}

		if err := run(t, runner, "playlist", "edit", "-c", configPath, "mix"); err != nil {
			t.Fatalf("playlist edit failed: %v", err)
		}

		contents := tu.MustReadFile(t, path)
		if contents != "Song Title: Ocean Eyes, Duration: 200\n" {
			t.Errorf("expected Bruises removed, got %q", contents)
		}
	})

	t.Run("AddUnknownSongPromptsForDuration", func(t *testing.T) {
		configPath, runner, _ := testEnv(t, "1\nBootleg Demo\n245\n3\n")

		if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		config, err := shared.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		path := filepath.Join(config.Library.PlaylistDir, "mix.txt")
		if err := os.WriteFile(path, []byte("Song Title: Bruises, Duration: 210\n"), 0644); err != nil {
			t.Fatalf("failed to seed playlist: %v", err)
		}

		if err := run(t, runner, "playlist", "edit", "-c", configPath, "mix"); err != nil {
			t.Fatalf("playlist edit failed: %v", err)
		}

		contents := tu.MustReadFile(t, path)
		expected := "Song Title: Bruises, Duration: 210\nSong Title: Bootleg Demo, Duration: 245\n"
		if contents != expected {
			t.Errorf("expected %q, got %q", expected, contents)
		}
	})

	t.Run("AddRejectsBadDuration", func(t *testing.T) {
		configPath, runner, output := testEnv(t, "1\nBootleg Demo\nabc\n3\n")

		if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		config, err := shared.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		path := filepath.Join(config.Library.PlaylistDir, "mix.txt")
		seed := "Song Title: Bruises, Duration: 210\n"
		if err := os.WriteFile(path, []byte(seed), 0644); err != nil {
			t.Fatalf("failed to seed playlist: %v", err)
		}

		if err := run(t, runner, "playlist", "edit", "-c", configPath, "mix"); err != nil {
			t.Fatalf("playlist edit failed: %v", err)
		}

		if !strings.Contains(output.String(), "Invalid duration: abc") {
			t.Errorf("expected invalid-duration message, got %q", output.String())
		}

		if contents := tu.MustReadFile(t, path); contents != seed {
			t.Errorf("rejected entry should not reach disk, got %q", contents)
		}
	})

	t.Run("MissingPlaylist", func(t *testing.T) {
		configPath, runner, _ := testEnv(t, "")

		if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
			t.Fatalf("setup failed: %v", err)
		}

		err := run(t, runner, "playlist", "edit", "-c", configPath, "nope")
		if err == nil {
			t.Fatal("expected error for missing playlist")
		}

		config, err := shared.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if _, err := os.Stat(filepath.Join(config.Library.PlaylistDir, "nope.txt")); !os.IsNotExist(err) {
			t.Error("editing a missing playlist should not create it")
		}
	})
}

func TestPlaylistShowAndDelete(t *testing.T) {
	configPath, runner, output := testEnv(t, "")

	if err := run(t, runner, "setup", "database", "-c", configPath); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	path := filepath.Join(config.Library.PlaylistDir, "mix.txt")
	if err := os.WriteFile(path, []byte("Song Title: Bruises, Duration: 210\n"), 0644); err != nil {
		t.Fatalf("failed to seed playlist: %v", err)
	}

	if err := run(t, runner, "playlist", "show", "-c", configPath, "mix"); err != nil {
		t.Fatalf("playlist show failed: %v", err)
	}

	if !strings.Contains(output.String(), "Bruises [210]") {
		t.Errorf("expected playlist contents, got %q", output.String())
	}

	if err := run(t, runner, "playlist", "delete", "-c", configPath, "mix"); err != nil {
		t.Fatalf("playlist delete failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("deleted playlist file should be gone")
	}

	output.Reset()
	if err := run(t, runner, "playlist", "delete", "-c", configPath, "mix"); err != nil {
		t.Fatalf("deleting a missing playlist should not error: %v", err)
	}

	if !strings.Contains(output.String(), "No playlist named") {
		t.Errorf("expected missing-playlist message, got %q", output.String())
	}
}
