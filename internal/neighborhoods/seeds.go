package neighborhoods

import (
	"encoding/json"
	"fmt"
	"os"
)

type seedEntry struct {
	Name           string   `json:"name"`
	AlternateNames []string `json:"alternate_names"`
	Jurisdiction   string   `json:"jurisdiction"`
}

// LoadSeedFile reads the neighborhood seed JSON and returns the seeds in file
// order. File order is significant: the matcher returns suggestions in this
// order.
func LoadSeedFile(path string) ([]NeighborhoodSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seeds := make([]NeighborhoodSeed, 0, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("seed entry %d has no name", i)
		}
		alts := e.AlternateNames
		if alts == nil {
			alts = []string{}
		}
		seeds = append(seeds, NeighborhoodSeed{
			Name:           e.Name,
			AlternateNames: alts,
			Jurisdiction:   e.Jurisdiction,
			Source:         "dc-metro-neighborhoods.json",
		})
	}
	return seeds, nil
}
