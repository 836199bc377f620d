package live

import (
	"time"

	"github.com/skypies/geo"
)

const DefaultInterval = 10 * time.Second

type Config struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	Box      *Box          `yaml:"box"`
}

// Box is a bounding box given as south/west/north/east limits.
type Box struct {
	South float64 `yaml:"south"`
	West  float64 `yaml:"west"`
	North float64 `yaml:"north"`
	East  float64 `yaml:"east"`
}

func (b *Box) LatlongBox() *geo.LatlongBox {
	if b == nil {
		return nil
	}
	return &geo.LatlongBox{
		SW: geo.Latlong{Lat: b.South, Long: b.West},
		NE: geo.Latlong{Lat: b.North, Long: b.East},
	}
}
