package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/boomboxfm/boombox/internal/library"
	"github.com/boomboxfm/boombox/internal/models"
	"github.com/boomboxfm/boombox/internal/playlist"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SongListView ViewState = iota
	ReviewView
	NameView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	view      ViewState
	library   *library.Library
	store     *playlist.Store
	width     int
	height    int
	songList  list.Model
	songs     []models.SongInfo
	draft     []playlist.Entry
	nameInput textinput.Model
	savedPath string
	err       error
	help      help.Model
	keys      keyMap
}

type songsLoadedMsg struct {
	songs []models.SongInfo
	err   error
}

type playlistSavedMsg struct {
	path string
	err  error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(lib *library.Library, store *playlist.Store) *Model {
	input := textinput.New()
	input.Placeholder = "playlist name"
	input.CharLimit = 120

	return &Model{
		view:      SongListView,
		library:   lib,
		store:     store,
		nameInput: input,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init loads the song catalog from the library.
func (m *Model) Init() tea.Cmd {
	return m.loadSongs()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.songList.Width() == 0 {
			m.songList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case SongListView:
			return m.handleSongListKeys(msg)
		case ReviewView:
			return m.handleReviewKeys(msg)
		case NameView:
			return m.handleNameKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case songsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.songs = msg.songs
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song}
		}
		m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.songList.Title = "Library"
		m.songList.SetSize(m.width-4, m.height-8)
		return m, nil

	case playlistSavedMsg:
		m.err = msg.err
		m.savedPath = msg.path
		m.view = ResultView
		return m, nil
	}

	return m.updateList(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case SongListView:
		return m.renderSongList()
	case ReviewView:
		return m.renderReview()
	case NameView:
		return m.renderName()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleSongListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		selected := m.songList.SelectedItem()
		if selected != nil {
			if item, ok := selected.(songItem); ok {
				m.draft = append(m.draft, playlist.Entry{
					Title:    item.song.Title,
					Duration: fmt.Sprintf("%d", item.song.Duration),
				})
			}
		}
		return m, nil
	case "tab":
		if len(m.draft) > 0 {
			m.view = ReviewView
		}
		return m, nil
	case "s":
		if len(m.draft) > 0 {
			m.view = NameView
			m.nameInput.Focus()
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) handleReviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = SongListView
		return m, nil
	case "x":
		if len(m.draft) > 0 {
			m.draft = m.draft[:len(m.draft)-1]
		}
		if len(m.draft) == 0 {
			m.view = SongListView
		}
		return m, nil
	case "s":
		m.view = NameView
		m.nameInput.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *Model) handleNameKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.nameInput.Blur()
		m.view = SongListView
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.nameInput.Blur()
		return m, m.savePlaylist(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.view = SongListView
		m.draft = nil
		m.savedPath = ""
		m.err = nil
		m.nameInput.Reset()
		return m, nil
	}
	return m, nil
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.view == SongListView {
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.library.ListSongs()
		return songsLoadedMsg{songs: songs, err: err}
	}
}

func (m *Model) savePlaylist(name string) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.Save(name, m.draft); err != nil {
			return playlistSavedMsg{err: err}
		}
		return playlistSavedMsg{path: m.store.Path(name)}
	}
}

func (m *Model) renderSongList() string {
	status := styles.help.Render(fmt.Sprintf("%d song(s) in draft", len(m.draft)))
	helpKeys := []key.Binding{m.keys.enter, m.keys.review, m.keys.save, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.songList.View(), status, helpView)
}

func (m *Model) renderReview() string {
	title := styles.title.Render("Draft Playlist")

	var lines strings.Builder
	for i, entry := range m.draft {
		item := entryItem{entry: entry}
		lines.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, item.Title(), item.Description()))
	}

	helpKeys := []key.Binding{m.keys.remove, m.keys.save, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n%s", title, lines.String(), helpView)
}

func (m *Model) renderName() string {
	title := styles.title.Render("Name Your Playlist")
	return fmt.Sprintf("%s\n%s\n\n%s", title, m.nameInput.View(), styles.help.Render("enter to save, esc to go back"))
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Failed to save playlist: %v\n\nPress r to start over, q to quit", m.err))
	}

	title := styles.ok.Render("✓ Playlist Saved")
	info := fmt.Sprintf("\n%d song(s) written to %s\n", len(m.draft), m.savedPath)

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s%s\n%s", title, info, helpView)
}
