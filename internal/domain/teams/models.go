package teams

import (
	"encoding/json"
	"fmt"
)

// ChampionFlag is a bool that also accepts the legacy 0/1 integer encoding
// used by older clients. It always marshals as a native JSON boolean.
type ChampionFlag bool

// Team is the record shape exposed by the service. TeamName is the lookup key.
type Team struct {
	TeamName                 string       `json:"teamName"`
	Wins                     int          `json:"wins"`
	Losses                   int          `json:"losses"`
	CurrentSuperBowlChampion ChampionFlag `json:"currentSuperBowlChampion"`
}

// ListResponse is the payload returned by the list endpoint.
type ListResponse struct {
	Count int    `json:"count"`
	Teams []Team `json:"teams"`
}

// UnmarshalJSON decodes true/false as well as the integers 0 and 1.
func (f *ChampionFlag) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "true", "1":
		*f = true
		return nil
	case "false", "0":
		*f = false
		return nil
	}
	return fmt.Errorf("invalid championship flag %q: expected boolean or 0/1", data)
}

// MarshalJSON always emits a native boolean.
func (f ChampionFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(f))
}
