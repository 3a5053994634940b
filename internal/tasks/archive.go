package tasks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/playlist"
)

// ArchiveOpts contains configuration for playlist archives.
type ArchiveOpts struct {
	Format     string // Export format: txt, csv, markdown, json
	OutputDir  string // Base output directory (default: playlist_archive_{epoch})
	NumWorkers int    // Concurrent workers (default: 4)
}

// Archive snapshots the named playlists into an export directory,
// one file per playlist plus a JSON manifest.
//
// Playlists are loaded sequentially and written by a worker pool. A playlist
// that fails to load or write is recorded in the manifest without stopping
// the rest of the archive.
func (a *Archiver) Archive(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	names []string,
	opts ArchiveOpts,
) (*ArchiveResult, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("playlist_archive_%d", time.Now().Unix())
	}
	if opts.Format == "" {
		opts.Format = "txt"
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 4
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &ArchiveResult{
		TotalPlaylists:  len(names),
		OutputDirectory: opts.OutputDir,
		Format:          opts.Format,
		Results:         make([]PlaylistArchiveResult, 0, len(names)),
	}

	jobs := make(chan archiveJob, len(names))
	results := make(chan PlaylistArchiveResult, len(names))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go a.archiveWorker(ctx, &wg, jobs, results, opts)
	}

	go func() {
		for i, name := range names {
			select {
			case <-ctx.Done():
				close(jobs)
				return
			default:
			}

			a.sendProgress(prog, loadingUpdate(i+1, len(names), name))

			entries, err := a.store.Load(name)
			if err != nil {
				results <- PlaylistArchiveResult{
					Name:    name,
					Success: false,
					Error:   fmt.Errorf("failed to load playlist: %w", err),
				}
				continue
			}

			jobs <- archiveJob{name: name, entries: entries}
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		if res.Error != nil {
			res.Message = res.Error.Error()
		}
		result.Results = append(result.Results, res)

		if res.Success {
			result.Archived++
			a.sendProgress(prog, archivedUpdate(completed, len(names), res.Name, len(res.Files)))
		} else {
			result.Failed++
			a.sendProgress(prog, archiveFailedUpdate(completed, len(names), res.Name, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "archive_manifest.json")
	a.sendProgress(prog, manifestUpdate(manifestPath))

	manifest, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return result, fmt.Errorf("archive completed but failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(manifestPath, manifest, 0644); err != nil {
		return result, fmt.Errorf("archive completed but failed to write manifest: %w", err)
	}

	result.ManifestPath = manifestPath
	return result, nil
}

// archiveWorker is a worker goroutine that writes playlists from the jobs channel.
func (a *Archiver) archiveWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan archiveJob,
	results chan<- PlaylistArchiveResult,
	opts ArchiveOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- a.archiveSinglePlaylist(job, opts)
	}
}

// archiveSinglePlaylist writes a single playlist in the selected format.
func (a *Archiver) archiveSinglePlaylist(j archiveJob, opts ArchiveOpts) PlaylistArchiveResult {
	result := PlaylistArchiveResult{
		Name:    j.name,
		Entries: len(j.entries),
		Files:   []string{},
	}

	var data []byte
	var path string

	switch opts.Format {
	case "csv":
		csvData, err := formatter.ExportEntriesToCSV(j.entries)
		if err != nil {
			result.Error = fmt.Errorf("CSV export failed: %w", err)
			return result
		}
		data = csvData
		path = filepath.Join(opts.OutputDir, j.name+".csv")

	case "markdown", "md":
		data = formatter.ExportEntriesToMarkdown(j.name, j.entries)
		path = filepath.Join(opts.OutputDir, j.name+".md")

	case "json":
		jsonData, err := json.MarshalIndent(j.entries, "", "  ")
		if err != nil {
			result.Error = fmt.Errorf("JSON marshal failed: %w", err)
			return result
		}
		data = jsonData
		path = filepath.Join(opts.OutputDir, j.name+".json")

	case "txt":
		fallthrough
	default:
		var buf bytes.Buffer
		if err := playlist.Encode(&buf, j.entries); err != nil {
			result.Error = fmt.Errorf("text export failed: %w", err)
			return result
		}
		data = buf.Bytes()
		path = filepath.Join(opts.OutputDir, j.name+".txt")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		result.Error = fmt.Errorf("failed to write %s: %w", path, err)
		return result
	}

	result.Files = []string{path}
	result.Success = true
	return result
}
