package boundary

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/uswah23/smart-bike-map/internal/domain/geofence"
)

// campusGeoJSON is the UTHM campus geofence used when no file is configured.
//
//go:embed campus.geojson
var campusGeoJSON []byte

var (
	// errUnsupportedGeometry is returned for geometries that are not polygons.
	errUnsupportedGeometry = errors.New("unsupported geometry")
	// errHolesUnsupported is returned for polygons with interior rings.
	errHolesUnsupported = errors.New("polygons with holes are not supported")
)

// Default returns the built-in campus boundary.
func Default() (*geofence.Boundary, error) {
	return Parse(campusGeoJSON)
}

// Load reads a GeoJSON boundary from path, or the built-in campus when path is empty.
func Load(path string) (*geofence.Boundary, error) {
	if path == "" {
		return Default()
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read boundary: %w", err)
	}

	return Parse(contents)
}

// Parse accepts a GeoJSON FeatureCollection, Feature, Polygon or MultiPolygon.
// The outer ring of every polygon becomes one boundary ring.
func Parse(data []byte) (*geofence.Boundary, error) {
	var header struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: decode geojson: %w", geofence.ErrInvalidBoundary, err)
	}

	var geometries []orb.Geometry

	switch header.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode feature collection: %w", geofence.ErrInvalidBoundary, err)
		}

		for _, f := range fc.Features {
			geometries = append(geometries, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode feature: %w", geofence.ErrInvalidBoundary, err)
		}

		geometries = append(geometries, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: decode geometry: %w", geofence.ErrInvalidBoundary, err)
		}

		geometries = append(geometries, g.Geometry())
	}

	var rings []orb.Ring

	for _, g := range geometries {
		outer, err := outerRings(g)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", geofence.ErrInvalidBoundary, err)
		}

		rings = append(rings, outer...)
	}

	return geofence.NewBoundary(rings)
}

// outerRings extracts outer rings from polygonal geometries.
func outerRings(g orb.Geometry) ([]orb.Ring, error) {
	switch geometry := g.(type) {
	case orb.Polygon:
		if len(geometry) == 0 {
			return nil, nil
		}

		if len(geometry) > 1 {
			return nil, errHolesUnsupported
		}

		return []orb.Ring{geometry[0]}, nil
	case orb.MultiPolygon:
		var rings []orb.Ring

		for _, polygon := range geometry {
			outer, err := outerRings(polygon)
			if err != nil {
				return nil, err
			}

			rings = append(rings, outer...)
		}

		return rings, nil
	default:
		return nil, fmt.Errorf("%w: %T", errUnsupportedGeometry, g)
	}
}

// Feature renders the boundary as a GeoJSON feature for map clients.
func Feature(b *geofence.Boundary, name string) *geojson.Feature {
	var geometry orb.Geometry = b.Polygon()

	rings := b.Rings()
	if len(rings) > 1 {
		multi := make(orb.MultiPolygon, len(rings))
		for i, ring := range rings {
			multi[i] = orb.Polygon{ring}
		}

		geometry = multi
	}

	f := geojson.NewFeature(geometry)
	f.Properties["name"] = name

	return f
}
