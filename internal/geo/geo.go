package geo

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Point is a GeoJSON position: [longitude, latitude].
type Point []float64

// PolygonGeometry is the GeoJSON polygon shape accepted at the ingestion
// boundary. Only the outer ring is validated; holes are carried through
// untouched.
type PolygonGeometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// ValidatePoint checks that p is a finite [lon, lat] pair in range.
func ValidatePoint(p Point) error {
	if len(p) != 2 {
		return fmt.Errorf("point must be [longitude, latitude]")
	}
	lon, lat := p[0], p[1]
	if !isFinite(lon) || !isFinite(lat) {
		return fmt.Errorf("point coordinates must be finite numbers")
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	return nil
}

// ValidatePolygon checks the structural rules for a submitted boundary.
// Rules run in order and the first failure wins. Self-intersection and area
// are not checked; the drawing surface is trusted to produce simple polygons.
func ValidatePolygon(g PolygonGeometry) error {
	if g.Type != "Polygon" {
		return fmt.Errorf("geometry type must be Polygon")
	}
	if len(g.Coordinates) < 1 {
		return fmt.Errorf("polygon must have at least one ring")
	}
	ring := g.Coordinates[0]
	if len(ring) < 4 {
		return fmt.Errorf("polygon ring must have at least 4 coordinates")
	}
	first, last := ring[0], ring[len(ring)-1]
	if len(first) != len(last) {
		return fmt.Errorf("polygon ring must be closed (first == last)")
	}
	for i := range first {
		if first[i] != last[i] {
			return fmt.Errorf("polygon ring must be closed (first == last)")
		}
	}
	for i, pos := range ring {
		if err := ValidatePoint(Point(pos)); err != nil {
			return fmt.Errorf("ring position %d: %w", i, err)
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Orb converts the point to its orb representation.
func (p Point) Orb() orb.Point {
	return orb.Point{p[0], p[1]}
}

// Orb converts the polygon to its orb representation.
func (g PolygonGeometry) Orb() orb.Polygon {
	poly := make(orb.Polygon, 0, len(g.Coordinates))
	for _, ring := range g.Coordinates {
		r := make(orb.Ring, 0, len(ring))
		for _, pos := range ring {
			r = append(r, orb.Point{pos[0], pos[1]})
		}
		poly = append(poly, r)
	}
	return poly
}

// PointGeoJSON renders the point as a GeoJSON geometry string for
// ST_GeomFromGeoJSON.
func PointGeoJSON(p Point) (string, error) {
	data, err := json.Marshal(geojson.NewGeometry(p.Orb()))
	if err != nil {
		return "", fmt.Errorf("encode point geojson: %w", err)
	}
	return string(data), nil
}

// PolygonGeoJSON renders the polygon as a GeoJSON geometry string for
// ST_GeomFromGeoJSON.
func PolygonGeoJSON(g PolygonGeometry) (string, error) {
	data, err := json.Marshal(geojson.NewGeometry(g.Orb()))
	if err != nil {
		return "", fmt.Errorf("encode polygon geojson: %w", err)
	}
	return string(data), nil
}

// ParsePoint decodes a GeoJSON geometry string (ST_AsGeoJSON output) into a
// [lon, lat] pair.
func ParsePoint(raw string) (Point, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decode point geojson: %w", err)
	}
	pt, ok := g.Geometry().(orb.Point)
	if !ok {
		return nil, fmt.Errorf("expected Point geometry, got %s", g.Type)
	}
	return Point{pt[0], pt[1]}, nil
}

// ParsePolygon decodes a GeoJSON geometry string (ST_AsGeoJSON output) into
// the wire polygon shape.
func ParsePolygon(raw string) (PolygonGeometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return PolygonGeometry{}, fmt.Errorf("decode polygon geojson: %w", err)
	}
	poly, ok := g.Geometry().(orb.Polygon)
	if !ok {
		return PolygonGeometry{}, fmt.Errorf("expected Polygon geometry, got %s", g.Type)
	}
	coords := make([][][]float64, 0, len(poly))
	for _, ring := range poly {
		r := make([][]float64, 0, len(ring))
		for _, pt := range ring {
			r = append(r, []float64{pt[0], pt[1]})
		}
		coords = append(coords, r)
	}
	return PolygonGeometry{Type: "Polygon", Coordinates: coords}, nil
}
