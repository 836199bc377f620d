package backend

import "time"

type Config struct {
	URL string `yaml:"url"`

	// Timeout of zero leaves the transport default in place.
	Timeout time.Duration `yaml:"timeout"`
}
