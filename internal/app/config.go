package app

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults for optional settings.
const (
	DefaultProfile       = "forum"
	DefaultInputDir      = "input"
	DefaultOutputDir     = "output"
	DefaultWorkerCount   = 4
	DefaultWatchDebounce = 250 * time.Millisecond
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputDir  string `validate:"required"`
	OutputDir string `validate:"required"`

	// Profile selects the exporter; ProfilePaths are HCL files or
	// directories that add or override profiles.
	Profile      string `validate:"required"`
	ProfilePaths []string

	// URDFURL is the Node-RED runtime used for compaction and upload.
	URDFURL  string `validate:"omitempty,url"`
	NoUpload bool
	// FlowsURL overrides the profile's flow-library landing page.
	FlowsURL string `validate:"omitempty,url"`

	SocketIOURL   string `validate:"omitempty,url"`
	SocketIOPath  string
	SocketIOEvent string
	SocketIOReply string

	Print bool

	Watch         bool
	WatchDebounce time.Duration `validate:"gte=0"`

	LogFormat       string `validate:"oneof=text json"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	HealthcheckPort int    `validate:"gte=0,lte=65535"`
	WorkerCount     int    `validate:"gte=1,lte=256"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.WatchDebounce == 0 {
		cfg.WatchDebounce = DefaultWatchDebounce
	}
	return &cfg, nil
}
