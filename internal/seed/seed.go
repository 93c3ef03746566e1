package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	appteams "football-team-service/internal/app/teams"
	"football-team-service/internal/domain/teams"
	"football-team-service/internal/logging"
)

// Load reads a JSON array of team records from path and registers each with
// the service. Duplicate names in the file are logged and skipped. It returns
// the number of records added.
func Load(fs afero.Fs, path string, svc *appteams.Service, logger *slog.Logger) (int, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return 0, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var records []teams.Team
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	added := 0
	for _, record := range records {
		if _, err := svc.Add(record); err != nil {
			if errors.Is(err, appteams.ErrTeamExists) {
				logging.Warn(logger, "skipping duplicate seed record", logging.FieldTeam, record.TeamName)
				continue
			}
			return added, err
		}
		added++
	}
	return added, nil
}
