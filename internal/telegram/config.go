package telegram

import "time"

type Config struct {
	Enabled      bool          `yaml:"enabled"`
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`

	// ListLimit caps how many rows one reply lists.
	ListLimit int `yaml:"listLimit"`
}
