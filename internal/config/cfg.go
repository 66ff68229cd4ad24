package config

import (
	"RouletteLedger/pkg/errors"
	"io"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

const envPrefix = "LEDGER"

type Configurations struct {
	debugMode bool
	Logger    Logger `mapstructure:"logger" yaml:"logger"`
	Ledger    Ledger `mapstructure:"ledger" yaml:"ledger"`
	Table     Table  `mapstructure:"table" yaml:"table"`
}

type Logger struct {
	Level string `mapstructure:"level" yaml:"level"`
	// File duplicates log output into the file when set
	File string `mapstructure:"file" yaml:"file"`
}

type Ledger struct {
	InitialBankroll int64 `mapstructure:"initial_bankroll" yaml:"initial_bankroll"`
	MaxGames        int   `mapstructure:"max_games" yaml:"max_games"`
	StrictNumbers   bool  `mapstructure:"strict_numbers" yaml:"strict_numbers"`
	NumberMin       int   `mapstructure:"number_min" yaml:"number_min"`
	NumberMax       int   `mapstructure:"number_max" yaml:"number_max"`
}

type Table struct {
	MaxRounds  int           `mapstructure:"max_rounds" yaml:"max_rounds"`
	MinStake   int64         `mapstructure:"min_stake" yaml:"min_stake"`
	SessionTTL time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
}

var defaultConfig = Configurations{
	Logger: Logger{
		Level: "info",
	},
	Ledger: Ledger{
		InitialBankroll: 100000,
		NumberMin:       0,
		NumberMax:       36,
	},
	Table: Table{
		MaxRounds:  50,
		MinStake:   100,
		SessionTTL: 30 * time.Minute,
	},
}

func GetDefaultConfig() Configurations {
	return defaultConfig
}

func (c Configurations) IsDebug() bool {
	return c.debugMode
}

func (c *Configurations) SetDebug(debug bool) {
	c.debugMode = debug
	if debug {
		c.Logger.Level = "debug"
	}
}

// Load reads path (optional) on top of the defaults, LEDGER_* environment
// variables override both, e.g. LEDGER_LEDGER_INITIAL_BANKROLL.
func Load(path string) (Configurations, error) {
	cfg := GetDefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, cfg)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.WrapStack(err, "read config "+path)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.WrapStack(err, "decode config")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can see it
func setDefaults(v *viper.Viper, c Configurations) {
	v.SetDefault("logger.level", c.Logger.Level)
	v.SetDefault("logger.file", c.Logger.File)

	v.SetDefault("ledger.initial_bankroll", c.Ledger.InitialBankroll)
	v.SetDefault("ledger.max_games", c.Ledger.MaxGames)
	v.SetDefault("ledger.strict_numbers", c.Ledger.StrictNumbers)
	v.SetDefault("ledger.number_min", c.Ledger.NumberMin)
	v.SetDefault("ledger.number_max", c.Ledger.NumberMax)

	v.SetDefault("table.max_rounds", c.Table.MaxRounds)
	v.SetDefault("table.min_stake", c.Table.MinStake)
	v.SetDefault("table.session_ttl", c.Table.SessionTTL)
}

func (c Configurations) Validate() error {
	if c.Ledger.StrictNumbers && c.Ledger.NumberMin > c.Ledger.NumberMax {
		return errors.Errorf("config: number_min %d is greater than number_max %d",
			c.Ledger.NumberMin, c.Ledger.NumberMax)
	}
	if c.Ledger.MaxGames < 0 {
		return errors.Errorf("config: max_games must not be negative, got %d", c.Ledger.MaxGames)
	}
	if c.Table.MaxRounds < 0 {
		return errors.Errorf("config: max_rounds must not be negative, got %d", c.Table.MaxRounds)
	}
	return nil
}

// WriteDefault writes the default configuration as YAML
func WriteDefault(w io.Writer) error {
	return Write(w, GetDefaultConfig())
}

func Write(w io.Writer, c Configurations) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapStack(err, "encode config")
	}
	_, err = w.Write(data)
	return errors.WrapStack(err)
}
