package render

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Sink 接收一批标记并输出。
type Sink interface {
	Write(ctx context.Context, markers []Marker) error
}

// FeatureCollection 是 GeoJSON 顶层对象。
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature 是 GeoJSON 点要素，properties 沿用 simplestyle 的 marker-color。
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"` // [lon, lat]
}

type Properties struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	MarkerColor string   `json:"marker-color"`
	People      []string `json:"people"`
	Stars       float64  `json:"stars"`
	Categories  string   `json:"categories,omitempty"`
}

// ToFeatureCollection 把标记转换为 GeoJSON。
func ToFeatureCollection(markers []Marker) FeatureCollection {
	fc := FeatureCollection{Type: "FeatureCollection", Features: make([]Feature, 0, len(markers))}
	for _, m := range markers {
		if m.Restaurant == nil {
			continue
		}
		people := m.People
		if people == nil {
			people = []string{}
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type:        "Point",
				Coordinates: [2]float64{m.Restaurant.Longitude, m.Restaurant.Latitude},
			},
			Properties: Properties{
				Name:        m.Restaurant.Name,
				Category:    string(m.Category),
				MarkerColor: m.Color,
				People:      people,
				Stars:       m.Restaurant.Stars,
				Categories:  m.Restaurant.Categories,
			},
		})
	}
	return fc
}

// GeoJSONSink 把标记编码为 FeatureCollection 写入 W。
type GeoJSONSink struct {
	W      io.Writer
	Indent bool
}

func (s *GeoJSONSink) Write(ctx context.Context, markers []Marker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(s.W)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(ToFeatureCollection(markers)); err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}
	return nil
}

// WriteGeoJSONFile 把标记写入 path（覆盖）。
func WriteGeoJSONFile(ctx context.Context, path string, markers []Marker) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := (&GeoJSONSink{W: f, Indent: true}).Write(ctx, markers); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MemorySink 在内存中累积标记，用于测试或二次处理。
type MemorySink struct {
	mu      sync.Mutex
	markers []Marker
}

func (s *MemorySink) Write(_ context.Context, markers []Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.markers = append(s.markers, markers...)
	return nil
}

// Markers 返回已写入标记的副本。
func (s *MemorySink) Markers() []Marker {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Marker, len(s.markers))
	copy(out, s.markers)
	return out
}

var (
	_ Sink = (*GeoJSONSink)(nil)
	_ Sink = (*MemorySink)(nil)
)
