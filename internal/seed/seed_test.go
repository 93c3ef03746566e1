package seed

import (
	"testing"

	"github.com/spf13/afero"

	appteams "football-team-service/internal/app/teams"
	"football-team-service/internal/store"
)

func newService() *appteams.Service {
	return appteams.NewService(store.NewMemoryStore())
}

func writeSeedFile(t *testing.T, fs afero.Fs, path, contents string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write seed file: %v", err)
	}
}

func TestLoadRegistersRecords(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSeedFile(t, fs, "/teams.json", `[
		{"teamName":"Dallas-Cowboys","wins":7,"losses":3,"currentSuperBowlChampion":0},
		{"teamName":"Patriots","wins":10,"losses":6,"currentSuperBowlChampion":false}
	]`)
	svc := newService()

	added, err := Load(fs, "/teams.json", svc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 records added, got %d", added)
	}

	team, err := svc.Get("Dallas-Cowboys")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Wins != 7 || team.Losses != 3 || bool(team.CurrentSuperBowlChampion) {
		t.Fatalf("unexpected record %+v", team)
	}
}

func TestLoadSkipsDuplicateNames(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSeedFile(t, fs, "/teams.json", `[
		{"teamName":"Patriots","wins":10,"losses":6},
		{"teamName":"Patriots","wins":11,"losses":5}
	]`)
	svc := newService()

	added, err := Load(fs, "/teams.json", svc, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 record added, got %d", added)
	}

	team, err := svc.Get("Patriots")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team.Wins != 10 {
		t.Fatalf("expected first record to win, got %+v", team)
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := Load(fs, "/absent.json", newService(), nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadMalformedJSONReturnsError(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeSeedFile(t, fs, "/teams.json", `{"not":"an array"}`)

	if _, err := Load(fs, "/teams.json", newService(), nil); err == nil {
		t.Fatalf("expected error for malformed seed file")
	}
}
