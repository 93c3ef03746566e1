package teams

import "errors"

var (
	// ErrTeamNotFound is returned when no stored team matches the requested name.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamExists is returned when adding a team whose name is already registered.
	ErrTeamExists = errors.New("team already exists")
)
