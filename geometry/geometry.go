// Package geometry loads the static Kenya county boundary file. The file is
// read once at startup and never polled; counties whose boundaries change
// need a redeploy.
package geometry

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-kdms/types"
)

// Property keys that may carry the county name, in priority order. Kenya
// county shapefile exports use COUNTY_NAM; OSM extracts use name.
var namePropertyKeys = []string{"name", "COUNTY_NAM", "COUNTY", "NAME_1"}

// LoadCounties reads and parses the boundary GeoJSON. Features without a
// usable name property are skipped with a warning rather than failing the
// whole load.
func LoadCounties(filePath string) ([]types.CountyGeometry, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("boundary file not found: %s", filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary file: %w", err)
	}

	counties, err := ParseCounties(data)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d county boundaries from %s", len(counties), filePath)
	return counties, nil
}

// ParseCounties parses raw GeoJSON bytes into county geometries.
func ParseCounties(data []byte) ([]types.CountyGeometry, error) {
	var collection types.FeatureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse boundary GeoJSON: %w", err)
	}

	var counties []types.CountyGeometry
	for i, feature := range collection.Features {
		name := featureName(feature)
		if name == "" {
			log.Printf("Warning: boundary feature %d has no name property, skipping", i)
			continue
		}

		raw, err := json.Marshal(feature.Geometry)
		if err != nil {
			log.Printf("Warning: failed to re-encode geometry for %s: %v", name, err)
			continue
		}

		counties = append(counties, types.CountyGeometry{
			Name:     name,
			Geometry: raw,
		})
	}

	return counties, nil
}

func featureName(feature types.Feature) string {
	for _, key := range namePropertyKeys {
		if raw, exists := feature.Properties[key]; exists {
			if s, ok := raw.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}
