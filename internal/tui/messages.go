package tui

import "github.com/MKhiriev/go-album-client/models"

// loginStateMsg is delivered by the client subscriber registered in Run.
type loginStateMsg struct {
	loggedIn bool
}

type loginDoneMsg struct {
	loggedIn bool
}

type logoutDoneMsg struct{}

type tokenCheckedMsg struct {
	valid bool
	err   error
}

type albumsLoadedMsg struct {
	albums []models.Album
	failed bool
}
