package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"oneof=development staging production"`
	Logging     struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error"`
		Format string `yaml:"format" default:"json" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"logging"`
	Analysis Analysis `yaml:"analysis"`
	Risk     Risk     `yaml:"risk"`
	Oracle   Oracle   `yaml:"oracle"`
	Kafka    Kafka    `yaml:"kafka"`
	Batch    Batch    `yaml:"batch"`
}

// Analysis holds the indicator periods and rule thresholds the signal
// engine runs with.
type Analysis struct {
	RSIPeriod       int     `yaml:"rsi_period" default:"14" validate:"gte=2"`
	RSIOversold     float64 `yaml:"rsi_oversold" default:"30" validate:"gt=0,lt=100"`
	RSIOverbought   float64 `yaml:"rsi_overbought" default:"70" validate:"lt=100,gtfield=RSIOversold"`
	MACDFast        int     `yaml:"macd_fast" default:"12" validate:"gte=2"`
	MACDSlow        int     `yaml:"macd_slow" default:"26" validate:"gtfield=MACDFast"`
	MACDSignal      int     `yaml:"macd_signal" default:"9" validate:"gte=1"`
	SMAShort        int     `yaml:"sma_short" default:"5" validate:"gte=1"`
	SMALong         int     `yaml:"sma_long" default:"20" validate:"gtfield=SMAShort"`
	BBPeriod        int     `yaml:"bb_period" default:"20" validate:"gte=2"`
	BBStd           float64 `yaml:"bb_std" default:"2" validate:"gt=0"`
	VolumePeriod    int     `yaml:"volume_period" default:"10" validate:"gte=1"`
	VolumeThreshold float64 `yaml:"volume_threshold" default:"1.5" validate:"gt=0"`
	SRWindow        int     `yaml:"sr_window" default:"5" validate:"gte=1"`
	StrongBand      int     `yaml:"strong_band" default:"4" validate:"gte=1"`
	WeakBand        int     `yaml:"weak_band" default:"2" validate:"gte=1,ltfield=StrongBand"`
}

// Risk holds the exit sizing and risk scoring parameters.
type Risk struct {
	StopLossPct         float64 `yaml:"stop_loss_pct" default:"0.05" validate:"gt=0,lt=1"`
	TakeProfitPct       float64 `yaml:"take_profit_pct" default:"0.15" validate:"gt=0,lt=1"`
	VolatilityThreshold float64 `yaml:"volatility_threshold" default:"0.3" validate:"gt=0"`
	VolatilityPeriod    int     `yaml:"volatility_period" default:"20" validate:"gte=2"`
	PricePrecision      int32   `yaml:"price_precision" default:"4" validate:"gte=0,lte=8"`
}

// Oracle points at the external probability model. An empty URL is the
// valid "no model" state; the advisor then scores without it.
type Oracle struct {
	URL      string        `yaml:"url" validate:"omitempty,url"`
	Timeout  time.Duration `yaml:"timeout" default:"5s" validate:"gt=0"`
	Attempts int           `yaml:"attempts" default:"1" validate:"gte=1,lte=5"`
}

// Kafka configures the optional recommendation sink.
type Kafka struct {
	Enabled      bool     `yaml:"enabled"`
	Brokers      []string `yaml:"brokers"`
	Topic        string   `yaml:"topic" default:"recommendations"`
	RequiredAcks int      `yaml:"required_acks" default:"1"`
	Compression  string   `yaml:"compression" default:"snappy" validate:"oneof=none gzip snappy lz4 zstd"`
	Producer     struct {
		MaxAttempts  int           `yaml:"max_attempts" default:"3" validate:"gte=1"`
		Linger       time.Duration `yaml:"linger" default:"100ms"`
		BatchBytes   int           `yaml:"batch_bytes" default:"1048576"`
		BatchSize    int           `yaml:"batch_size" default:"100"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"10s"`
		Async        bool          `yaml:"async"`
	} `yaml:"producer"`
}

// Batch bounds the parallel fan-out over assets.
type Batch struct {
	Concurrency int `yaml:"concurrency" default:"8" validate:"gte=1,lte=64"`
	TopN        int `yaml:"top_n" default:"10" validate:"gte=1"`
}

// Load reads a YAML configuration file, fills defaults and validates it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply config defaults: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ORACLE_URL"); v != "" {
		c.Oracle.URL = v
	}
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parse KAFKA_ENABLED: %w", err)
		}
		c.Kafka.Enabled = enabled
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers cannot be empty when the sink is enabled")
	}
	return nil
}

// ValidateStruct applies default tags and validation tags to any
// request-shaped struct. Used at input boundaries.
func ValidateStruct(v interface{}) error {
	if err := defaults.Set(v); err != nil {
		return err
	}
	return validate.Struct(v)
}
