// package formatter renders catalog listings for the terminal and exports
// them to CSV, Markdown, and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/playlist"
)

// FormatDuration renders a duration in seconds as m:ss
func FormatDuration(seconds int) string {
	minutes := seconds / 60
	remainder := seconds % 60
	return fmt.Sprintf("%d:%02d", minutes, remainder)
}

// FormatSongs renders songs as a numbered plain-text listing
func FormatSongs(songs []models.SongInfo) string {
	if len(songs) == 0 {
		return "No songs in the library.\n"
	}

	var buf bytes.Buffer
	for i, song := range songs {
		yearPart := ""
		if song.Year != nil {
			yearPart = fmt.Sprintf(" (%d)", *song.Year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, song.Artist, song.Title, yearPart, FormatDuration(song.Duration)))
	}

	return buf.String()
}

// FormatArtists renders artists as a numbered plain-text listing
func FormatArtists(artists []*models.Artist) string {
	if len(artists) == 0 {
		return "No artists in the library.\n"
	}

	var buf bytes.Buffer
	for i, artist := range artists {
		yearPart := ""
		if artist.CreationDate() != nil {
			yearPart = fmt.Sprintf(" (since %d)", *artist.CreationDate())
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, artist.Name(), yearPart))
	}

	return buf.String()
}

// FormatUsers renders users as a numbered plain-text listing
func FormatUsers(users []*models.User) string {
	if len(users) == 0 {
		return "No users registered.\n"
	}

	var buf bytes.Buffer
	for i, user := range users {
		buf.WriteString(fmt.Sprintf("%d. %s <%s>\n", i+1, user.Name(), user.Email()))
	}

	return buf.String()
}

// FormatFavorites renders a user's favorites as a numbered plain-text listing
func FormatFavorites(favorites []models.FavoriteInfo) string {
	if len(favorites) == 0 {
		return "No favorites yet.\n"
	}

	var buf bytes.Buffer
	for i, favorite := range favorites {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (liked %s)\n", i+1, favorite.Artist, favorite.Title, favorite.LikedAt.Format("2006-01-02")))
	}

	return buf.String()
}

// FormatEntries renders playlist entries as a numbered plain-text listing
func FormatEntries(entries []playlist.Entry) string {
	if len(entries) == 0 {
		return "Playlist is empty.\n"
	}

	var buf bytes.Buffer
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, entry.Title, entry.Duration))
	}

	return buf.String()
}

// ExportSongsToCSV converts songs to CSV format with columns: ID, Title, Artist, Duration, Year
func ExportSongsToCSV(songs []models.SongInfo) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Duration", "Year"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, song := range songs {
		year := ""
		if song.Year != nil {
			year = strconv.Itoa(*song.Year)
		}
		record := []string{
			song.ID,
			song.Title,
			song.Artist,
			strconv.Itoa(song.Duration),
			year,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportSongsToMarkdown converts songs to a Markdown listing with the given heading
func ExportSongsToMarkdown(songs []models.SongInfo, heading string) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", heading))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(songs)))

	for i, song := range songs {
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n", i+1, song.Artist, song.Title, FormatDuration(song.Duration)))
	}

	return buf.Bytes()
}

// ExportEntriesToCSV converts playlist entries to CSV format with columns: Title, Duration
func ExportEntriesToCSV(entries []playlist.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Title", "Duration"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		if err := writer.Write([]string{entry.Title, entry.Duration}); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportEntriesToMarkdown converts playlist entries to a Markdown listing
func ExportEntriesToMarkdown(name string, entries []playlist.Entry) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", name))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(entries)))

	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, entry.Title, entry.Duration))
	}

	return buf.Bytes()
}

// ToSongsJSON generates an indented JSON representation of songs
func ToSongsJSON(songs []models.SongInfo) ([]byte, error) {
	data, err := json.MarshalIndent(songs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal songs: %w", err)
	}
	return data, nil
}

// WriteCSVExport writes songs to {base}.csv alongside {base}.json metadata.
//
// Defaults to "library" as the base filename.
func WriteCSVExport(songs []models.SongInfo, baseFilepath string) ([]string, error) {
	if baseFilepath == "" {
		baseFilepath = "library"
	}

	csvData, err := ExportSongsToCSV(songs)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	csvFile := baseFilepath + ".csv"
	if err := os.WriteFile(csvFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	jsonData, err := ToSongsJSON(songs)
	if err != nil {
		return nil, err
	}

	jsonFile := baseFilepath + ".json"
	if err := os.WriteFile(jsonFile, jsonData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write JSON file: %w", err)
	}

	return []string{csvFile, jsonFile}, nil
}

// WriteMarkdownExport writes songs to a Markdown file.
//
// Defaults to library.md as the filename.
func WriteMarkdownExport(songs []models.SongInfo, heading, filepath string) (string, error) {
	if filepath == "" {
		filepath = "library.md"
	}

	if err := os.WriteFile(filepath, ExportSongsToMarkdown(songs, heading), 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}
