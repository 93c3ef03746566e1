package store

import (
	"sync"

	"football-team-service/internal/domain/teams"
)

// MemoryStore keeps a thread-safe registry of teams in memory. Records are
// held in insertion order and looked up by exact team name.
type MemoryStore struct {
	mu    sync.RWMutex
	teams []teams.Team
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// AddTeam appends a team to the registry. It reports false without modifying
// the registry when a team with the same name is already present.
func (s *MemoryStore) AddTeam(team teams.Team) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.teams {
		if t.TeamName == team.TeamName {
			return false
		}
	}
	s.teams = append(s.teams, team)
	return true
}

// GetTeam retrieves a team by exact, case-sensitive name match.
func (s *MemoryStore) GetTeam(name string) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teams {
		if t.TeamName == name {
			return t, true
		}
	}
	return teams.Team{}, false
}

// ListTeams returns a copy of the current teams in insertion order.
func (s *MemoryStore) ListTeams() []teams.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]teams.Team, len(s.teams))
	copy(result, s.teams)
	return result
}

// Len returns the number of stored teams.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams)
}
