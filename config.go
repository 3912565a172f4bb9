package holga

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of Config. Rects are [x1, y1, x2, y2], points
// are [x, y]; omitted keys keep their defaults.
type fileConfig struct {
	Viewport  []float64 `yaml:"viewport"`
	Bounds    []float64 `yaml:"bounds"`
	ZoomRange []int     `yaml:"zoom_range"`
	CellSize  []float64 `yaml:"cell_size"`
	Zoom      int       `yaml:"zoom"`
}

// ParseConfig reads a camera Config from YAML:
//
//	viewport: [0, 0, 64, 48]
//	bounds: [0, 0, 4096, 4096]
//	zoom_range: [1, 4]
//	cell_size: [10, 10]
//	zoom: 1
//
// Pool, Host and Log are left for the caller.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("holga: failed to parse config: %w", err)
	}

	var cfg Config
	var err error
	if cfg.Viewport, err = rectField("viewport", fc.Viewport); err != nil {
		return Config{}, err
	}
	if cfg.Bounds, err = rectField("bounds", fc.Bounds); err != nil {
		return Config{}, err
	}
	switch len(fc.ZoomRange) {
	case 0:
	case 2:
		cfg.ZoomRange = [2]int{fc.ZoomRange[0], fc.ZoomRange[1]}
	default:
		return Config{}, fmt.Errorf("%w: config zoom_range wants 2 values, got %d", ErrInvalidArgument, len(fc.ZoomRange))
	}
	switch len(fc.CellSize) {
	case 0:
	case 2:
		cfg.CellSize = Pt(fc.CellSize[0], fc.CellSize[1])
	default:
		return Config{}, fmt.Errorf("%w: config cell_size wants 2 values, got %d", ErrInvalidArgument, len(fc.CellSize))
	}
	cfg.Zoom = fc.Zoom
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("holga: failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func rectField(name string, v []float64) (Rect, error) {
	switch len(v) {
	case 0:
		return Rect{}, nil
	case 4:
		return R(v[0], v[1], v[2], v[3]), nil
	default:
		return Rect{}, fmt.Errorf("%w: config %s wants 4 values, got %d", ErrInvalidArgument, name, len(v))
	}
}
