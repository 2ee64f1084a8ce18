package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the tracker binaries.
type Config struct {
	// ServerAddress is the gRPC address of the tracker (override and state RPCs).
	ServerAddress string `yaml:"server_addr"`
	// HTTPAddress is the listen address of the renderer HTTP API.
	HTTPAddress string `yaml:"http_addr"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	// LogFormat is console or json.
	LogFormat string `yaml:"log_format" validate:"omitempty,oneof=console json"`
	// BoundaryFile is a GeoJSON file with the geofence; empty uses the built-in campus.
	BoundaryFile string `yaml:"boundary_file"`
	// DispatchQueueSize bounds the number of intents waiting for execution.
	DispatchQueueSize int `yaml:"dispatch_queue_size" validate:"gte=0"`
	// MQTT configures the fix stream and the buzzer command channel.
	MQTT MQTTConfig `yaml:"mqtt"`
	// Notifier configures the chat notification sent on override.
	Notifier NotifierConfig `yaml:"notifier"`
	// Events configures the optional RabbitMQ fan-out of geofence events.
	Events EventsConfig `yaml:"events"`
	// Archive configures the optional Postgres fix archive.
	Archive ArchiveConfig `yaml:"archive"`
	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `yaml:"tracing"`
}

// MQTTConfig describes the broker connection used by the bike.
type MQTTConfig struct {
	// Broker is the broker URL, e.g. tcp://localhost:1883.
	Broker string `yaml:"broker" validate:"required,url"`
	// ClientID identifies this process on the broker.
	ClientID string `yaml:"client_id" validate:"required"`
	// FixTopic is where the bike publishes {"lat","lon"} fixes.
	FixTopic string `yaml:"fix_topic" validate:"required"`
	// CommandTopic is where the buzzer stop command is published.
	CommandTopic string `yaml:"command_topic" validate:"required"`
	// QoS is the MQTT quality of service for subscribe and publish.
	QoS byte `yaml:"qos" validate:"lte=2"`
}

// NotifierConfig describes the chat endpoint notified on override.
type NotifierConfig struct {
	// Enabled turns notifications on.
	Enabled bool `yaml:"enabled"`
	// Endpoint receives a POST with {chat_id, text}.
	Endpoint string `yaml:"endpoint" validate:"required_if=Enabled true"`
	// ChatID is the chat receiving the message.
	ChatID string `yaml:"chat_id" validate:"required_if=Enabled true"`
	// Text is the message body.
	Text string `yaml:"text"`
}

// EventsConfig describes the RabbitMQ exchange for geofence events.
type EventsConfig struct {
	// AMQPURL enables the fan-out when set.
	AMQPURL string `yaml:"amqp_url" validate:"omitempty,url"`
	// Exchange is the fanout exchange name.
	Exchange string `yaml:"exchange"`
}

// ArchiveConfig describes the Postgres fix archive.
type ArchiveConfig struct {
	// PostgresDSN enables the archive when set.
	PostgresDSN string `yaml:"postgres_dsn"`
}

// TracingConfig governs OpenTelemetry initialisation.
type TracingConfig struct {
	// Enabled turns on the stdout span exporter.
	Enabled bool `yaml:"enabled"`
	// ServiceName is reported as service.name.
	ServiceName string `yaml:"service_name"`
	// SampleRatio is the parent-based trace ID ratio, 0..1.
	SampleRatio float64 `yaml:"sample_ratio" validate:"gte=0,lte=1"`
}

const (
	// DefaultConfigFilename is the default filename for tracker settings.
	DefaultConfigFilename = "smart-bike-map.yaml"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultHTTPAddress is where the renderer API listens by default.
	DefaultHTTPAddress = ":8080"

	// DefaultDispatchQueueSize is the default intent backlog.
	DefaultDispatchQueueSize = 64

	// DefaultFixTopic is the default MQTT topic for GPS fixes.
	DefaultFixTopic = "bike/gps"

	// DefaultCommandTopic is the default MQTT topic for bike commands.
	DefaultCommandTopic = "bike/command"

	// DefaultNotificationText is sent when the buzzer is stopped from the map.
	DefaultNotificationText = "🛑 Buzzer manually stopped by user."

	// DefaultExchange is the default RabbitMQ exchange for geofence events.
	DefaultExchange = "geofence.events"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	defaultBroker      = "tcp://localhost:1883"
	defaultClientID    = "smart-bike-map"
	defaultQoS         = 1
	defaultServiceName = "smart-bike-map"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")

	// validate checks struct tags of the configuration.
	//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load reads configuration from the provided path, applies defaults and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions, the file may hold broker and chat credentials.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields, fills defaults and runs tag validation.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	applyDefaults(cfg)

	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if cfg.Notifier.Endpoint == "" {
		return nil
	}

	if _, err := url.ParseRequestURI(cfg.Notifier.Endpoint); err != nil {
		return fmt.Errorf("invalid notifier endpoint: %w", err)
	}

	return nil
}

// applyDefaults fills zero values with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.DispatchQueueSize == 0 {
		cfg.DispatchQueueSize = DefaultDispatchQueueSize
	}

	if cfg.MQTT.Broker == "" {
		cfg.MQTT.Broker = defaultBroker
	}

	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = defaultClientID
	}

	if cfg.MQTT.FixTopic == "" {
		cfg.MQTT.FixTopic = DefaultFixTopic
	}

	if cfg.MQTT.CommandTopic == "" {
		cfg.MQTT.CommandTopic = DefaultCommandTopic
	}

	if cfg.MQTT.QoS == 0 {
		cfg.MQTT.QoS = defaultQoS
	}

	if cfg.Notifier.Text == "" {
		cfg.Notifier.Text = DefaultNotificationText
	}

	if cfg.Events.Exchange == "" {
		cfg.Events.Exchange = DefaultExchange
	}

	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = defaultServiceName
	}

	if cfg.Tracing.SampleRatio == 0 {
		cfg.Tracing.SampleRatio = 1
	}
}
