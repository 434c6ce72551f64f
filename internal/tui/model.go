package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-album-client/internal/adapter"
	"github.com/MKhiriev/go-album-client/internal/logger"
	"github.com/MKhiriev/go-album-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type albumsModel struct {
	ctx    context.Context
	client adapter.ServerAdapter
	log    *logger.Logger

	copyToClipboard func(string) error

	loggedIn bool
	ids      []string
	albums   []models.Album
	idx      int
	loading  bool
	editing  bool
	input    textinput.Model
	spinner  spinner.Model
	status   string
	errMsg   string
}

func newAlbumsModel(ctx context.Context, client adapter.ServerAdapter, log *logger.Logger) albumsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	input := textinput.New()
	input.Placeholder = "1, 2, 3"
	input.CharLimit = 512
	input.Width = 40

	return albumsModel{
		ctx:             ctx,
		client:          client,
		log:             log,
		copyToClipboard: clipboard.WriteAll,
		loggedIn:        client.IsLoggedIn(),
		input:           input,
		spinner:         s,
	}
}

func (m albumsModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m albumsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loginStateMsg:
		m.loggedIn = msg.loggedIn
		return m, nil
	case loginDoneMsg:
		m.loading = false
		if msg.loggedIn {
			m.errMsg = ""
			m.status = "Logged in"
		} else {
			m.errMsg = "Login failed, see the log file for details"
		}
		return m, nil
	case logoutDoneMsg:
		m.loading = false
		m.albums = nil
		m.idx = 0
		m.errMsg = ""
		m.status = "Logged out"
		return m, nil
	case tokenCheckedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Token check failed: %s", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.errMsg = ""
		if msg.valid {
			m.status = "Token is valid"
		} else {
			m.status = "Token is not valid"
		}
		return m, nil
	case albumsLoadedMsg:
		m.loading = false
		m.albums = msg.albums
		m.idx = 0
		m.errMsg = ""
		if len(m.albums) == 0 {
			m.status = "No albums received"
		} else {
			m.status = fmt.Sprintf("Loaded %d album(s)", len(m.albums))
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}

	return m, nil
}

func (m albumsModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.editing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.editing = false
		m.input.Blur()
		m.ids = parseAlbumIDs(m.input.Value())
		if len(m.ids) == 0 {
			m.status = "No album ids entered"
			return m, nil
		}
		m.loading = true
		return m, m.cmdFetchAlbums(m.ids)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m albumsModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.albums)-1 {
			m.idx++
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.login):
		m.loading = true
		m.status = ""
		return m, m.cmdLogin()
	case key.Matches(msg, keys.logout):
		m.loading = true
		m.status = ""
		return m, m.cmdLogout()
	case key.Matches(msg, keys.validate):
		m.loading = true
		m.status = ""
		return m, m.cmdCheckToken()
	case key.Matches(msg, keys.editIDs):
		m.editing = true
		m.input.SetValue(strings.Join(m.ids, ", "))
		m.input.CursorEnd()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, keys.enter):
		if len(m.ids) == 0 {
			m.editing = true
			cmd := m.input.Focus()
			return m, cmd
		}
		m.loading = true
		m.status = ""
		return m, m.cmdFetchAlbums(m.ids)
	case key.Matches(msg, keys.copy):
		album, ok := m.current()
		if !ok || album.ID() == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := m.copyToClipboard(album.ID()); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Album id copied"
	}

	return m, nil
}

func (m albumsModel) current() (models.Album, bool) {
	if len(m.albums) == 0 || m.idx < 0 || m.idx >= len(m.albums) {
		return nil, false
	}
	return m.albums[m.idx], true
}

func (m albumsModel) cmdLogin() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.Login(ctx)
		client.NotifySubscribers()
		return loginDoneMsg{loggedIn: client.IsLoggedIn()}
	}
}

func (m albumsModel) cmdLogout() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		client.Logout(ctx)
		client.NotifySubscribers()
		return logoutDoneMsg{}
	}
}

func (m albumsModel) cmdCheckToken() tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		valid, err := client.IsTokenValid(ctx)
		return tokenCheckedMsg{valid: valid, err: err}
	}
}

func (m albumsModel) cmdFetchAlbums(ids []string) tea.Cmd {
	ctx, client := m.ctx, m.client
	albumIDs := append([]string(nil), ids...)
	return func() tea.Msg {
		if len(albumIDs) == 1 {
			album, ok := client.GetAlbum(ctx, albumIDs[0])
			if !ok {
				return albumsLoadedMsg{}
			}
			return albumsLoadedMsg{albums: []models.Album{album}}
		}
		return albumsLoadedMsg{albums: client.GetAlbums(ctx, albumIDs)}
	}
}

func (m albumsModel) View() string {
	title := "Albums  "
	if m.loggedIn {
		title += loggedInStyle.Render("● logged in")
	} else {
		title += loggedOutStyle.Render("○ logged out")
	}
	if m.loading {
		title += "  " + m.spinner.View()
	}

	var body strings.Builder
	if m.editing {
		body.WriteString("Album ids: " + m.input.View() + "\n\n")
	} else {
		body.WriteString("Album ids: " + valueOrDash(strings.Join(m.ids, ", ")) + "\n\n")
	}

	if len(m.albums) == 0 {
		body.WriteString("No albums\n")
	}
	for i, album := range m.albums {
		line := fmt.Sprintf("%-24s %s", fitText(valueOrDash(album.ID()), 24), fitText(valueOrDash(album.Name()), 40))
		if i == m.idx {
			body.WriteString(selectedStyle.Render("> "+line) + "\n")
			continue
		}
		body.WriteString("  " + line + "\n")
	}

	if m.status != "" {
		body.WriteString("\n" + m.status + "\n")
	}
	if m.errMsg != "" {
		body.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}

	hotKeys := "l: login  o: logout  v: check token  /: album ids  enter: fetch  c: copy id"
	if m.editing {
		hotKeys = "enter: fetch  esc: cancel"
	}

	return renderPage(title, body.String(), hotKeys)
}
