package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/boomboxfm/boombox/internal/formatter"
	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/playlist"
)

var (
	_ list.Item = songItem{}
	_ list.Item = entryItem{}
)

// songItem wraps [models.SongInfo] to implement [list.Item].
type songItem struct {
	song models.SongInfo
}

func (i songItem) FilterValue() string { return i.song.Title }
func (i songItem) Title() string       { return i.song.Title }
func (i songItem) Description() string {
	desc := fmt.Sprintf("%s • %s", i.song.Artist, formatter.FormatDuration(i.song.Duration))
	if i.song.Year != nil {
		desc = fmt.Sprintf("%s • %d", desc, *i.song.Year)
	}
	return desc
}

// entryItem wraps [playlist.Entry] to implement [list.Item].
type entryItem struct {
	entry playlist.Entry
}

func (i entryItem) FilterValue() string { return i.entry.Title }
func (i entryItem) Title() string       { return i.entry.Title }
func (i entryItem) Description() string {
	return fmt.Sprintf("duration %s", i.entry.Duration)
}
