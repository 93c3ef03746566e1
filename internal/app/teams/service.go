package teams

import (
	"fmt"

	domainteams "football-team-service/internal/domain/teams"
)

// Store defines the contract for persisting and retrieving teams.
type Store interface {
	AddTeam(team domainteams.Team) bool
	GetTeam(name string) (domainteams.Team, bool)
	ListTeams() []domainteams.Team
}

// Service coordinates team operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Add registers a team and returns a confirmation message. Duplicate names
// are rejected with ErrTeamExists.
func (s *Service) Add(team domainteams.Team) (string, error) {
	if !s.store.AddTeam(team) {
		return "", fmt.Errorf("add %s: %w", team.TeamName, ErrTeamExists)
	}
	return fmt.Sprintf("team %s added", team.TeamName), nil
}

// Get returns the team registered under the given name, or ErrTeamNotFound.
func (s *Service) Get(name string) (domainteams.Team, error) {
	team, ok := s.store.GetTeam(name)
	if !ok {
		return domainteams.Team{}, fmt.Errorf("get %s: %w", name, ErrTeamNotFound)
	}
	return team, nil
}

// Teams returns the current set of registered teams.
func (s *Service) Teams() []domainteams.Team {
	return s.store.ListTeams()
}
