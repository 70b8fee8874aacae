package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig holds tuning knobs for the detection engine core. Sources
// names the event sources to run, each resolved through the source factory.
type EngineConfig struct {
	Sources            []string `yaml:"sources"`
	SizeOfEventChannel int      `yaml:"size_of_event_channel"`
	SnapshotInterval   string   `yaml:"snapshot_interval"`
	StorageRootPath    string   `yaml:"storage_root_path"`
}

// DetectionConfig holds the classifier model location and alerting thresholds.
type DetectionConfig struct {
	ModelPath           string  `yaml:"model_path"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	RateLimitWindow     string  `yaml:"rate_limit_window"`
	RateLimitMax        int     `yaml:"rate_limit_max"`
}

// CaptureConfig selects how raw packet bytes are interpreted.
// Mode is "ethernet" for link-layer captures or "raw_ip" for captures that
// start at the IP header.
type CaptureConfig struct {
	Mode     string `yaml:"mode"`
	PcapFile string `yaml:"pcap_file"`
}

// PersistenceConfig controls the probe's rotating raw-traffic archive.
type PersistenceConfig struct {
	Enabled       bool   `yaml:"enabled"`
	OutputDir     string `yaml:"output_dir"`
	FileSizeLimit int    `yaml:"file_size_limit_mb"`
}

// ProbeConfig holds the settings for the capture probe and its NATS link.
type ProbeConfig struct {
	NATSURL     string            `yaml:"nats_url"`
	Subject     string            `yaml:"subject"`
	Interface   string            `yaml:"interface"`
	Persistence PersistenceConfig `yaml:"persistence"`
}

// SimConfig holds the settings for the built-in traffic simulator source.
type SimConfig struct {
	Seed              int64   `yaml:"seed"`
	TickInterval      string  `yaml:"tick_interval"`
	MinEventsPerTick  int     `yaml:"min_events_per_tick"`
	MaxEventsPerTick  int     `yaml:"max_events_per_tick"`
	ThreatProbability float64 `yaml:"threat_probability"`
}

// AIAnalysisConfig enables LLM enrichment of alert digests via the AI service.
type AIAnalysisConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceAddr string `yaml:"service_addr"`
}

// SMTPConfig holds the settings for the email notifier.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// AlerterConfig holds the configuration for the alert pipeline and digester.
type AlerterConfig struct {
	LogFile       string           `yaml:"log_file"`
	CheckInterval string           `yaml:"check_interval"`
	EnableEmail   bool             `yaml:"enable_email"`
	EnableWebhook bool             `yaml:"enable_webhook"`
	WebhookURL    string           `yaml:"webhook_url"`
	AIAnalysis    AIAnalysisConfig `yaml:"ai_analysis"`
}

// ClickHouseConfig holds the connection settings for the alert store.
type ClickHouseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// AIConfig holds the settings for the standalone AI analysis service.
type AIConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	GRPCListenAddr string `yaml:"grpc_listen_addr"`
}

// APIConfig holds the settings for the HTTP query API.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Engine     EngineConfig     `yaml:"engine"`
	Detection  DetectionConfig  `yaml:"detection"`
	Capture    CaptureConfig    `yaml:"capture"`
	Probe      ProbeConfig      `yaml:"probe"`
	Sim        SimConfig        `yaml:"sim"`
	Alerter    AlerterConfig    `yaml:"alerter"`
	SMTP       SMTPConfig       `yaml:"smtp"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
	AI         AIConfig         `yaml:"ai"`
	API        APIConfig        `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config struct.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	return &cfg, nil
}
