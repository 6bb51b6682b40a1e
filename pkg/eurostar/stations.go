package eurostar

import (
	"context"
	"encoding/json"

	"github.com/nihn/eurostartrainfinder/pkg/util"
	"github.com/rs/zerolog/log"
)

type stationRecord struct {
	RegionName string `json:"regionName"`
	StationID  int    `json:"stationId"`
}

// GetStations fetches the station name to station id mapping used by the search endpoint
func (c *Client) GetStations(ctx context.Context) (map[string]int, error) {
	body, err := c.get(ctx, StationsLocation, nil)
	if err != nil {
		return nil, err
	}

	return ParseStations(body)
}

func ParseStations(body []byte) (map[string]int, error) {
	var response map[string]stationRecord
	if err := json.Unmarshal(body, &response); err != nil {
		log.Debug().Str("body", util.TrimString(string(body), 512)).Msg("Invalid JSON")
		return nil, &MalformedResponseError{Err: err, Body: string(body)}
	}

	stations := map[string]int{}
	for _, station := range response {
		if station.RegionName == "" {
			continue
		}

		stations[station.RegionName] = station.StationID
	}

	if len(stations) == 0 {
		return nil, ErrEmptyStationDirectory
	}

	log.Debug().Int("stations", len(stations)).Msg("Got stations map")

	return stations, nil
}
