package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string `mapstructure:"env" validate:"oneof=DEV TEST QA PROD"`
		Build        string `mapstructure:"build"`
		Debug        bool   `mapstructure:"debug"`
		AppName      string `mapstructure:"appName" validate:"required"`
		RollbarToken string `mapstructure:"rollbarToken"`
		SeedRegistry bool   `mapstructure:"seedRegistry"`
		Server       Server `mapstructure:"server"`
	}

	Server struct {
		Address         string        `mapstructure:"address" validate:"required"`
		ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" validate:"gt=0"`
		DisableReqLogs  bool          `mapstructure:"disableReqLogs"`
	}
)

// NewConfig reads the configuration of the current ENV (DEV by default).
// Values come from defaults, then config/.env.<env> (if any), then `<ENV>_`-prefixed environment variables.
// e.g. DEV_SERVER_ADDRESS=:9000
func NewConfig() (*Config, error) {
	env := strings.ToUpper(CleanString(os.Getenv("ENV"))) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "getting working directory")
	}

	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("env", env)
	v.SetDefault("build", "develop")
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Gradesheet")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("seedRegistry", true)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err = os.Stat(dotEnvPath); err == nil {
		if err = godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}

	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var conf Config
	if err = v.Unmarshal(&conf); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	return &conf, nil
}

// Validate checks the configuration and reports every invalid field at once.
func (c *Config) Validate(validate *validator.Validate, translator ut.Translator) error {
	return ValidateStruct(validate, translator, c)
}

// CleanString trims all leading and trailing whitespace in `s`.
func CleanString(s string) string {
	return strings.TrimSpace(s)
}
