// Package cfgloader loads and validates configuration at the start of an application.
package cfgloader

import (
	"os"
	"path/filepath"
	"reflect"
	"slices"

	"github.com/code19m/errx"
	"github.com/creasty/defaults"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/TechArp/CafeApp/observability/logger"
	"github.com/TechArp/CafeApp/val"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"

	defaultConfigDir = "./config"
)

const (
	CodeInvalidEnvironment = "CFG_INVALID_ENVIRONMENT"
	CodeConfigNotFound     = "CFG_FILE_NOT_FOUND"
	CodeInvalidConfig      = "CFG_INVALID"
)

// MustLoad is Load that logs the error and exits the process on failure.
func MustLoad[T any](opts ...Option) T {
	config, err := Load[T](opts...)
	if err != nil {
		logger.Named("cfgloader").Fatalx(err)
	}
	return config
}

// Load reads ${Dir}/${ENVIRONMENT}.yaml into T.
//
// A .env file in the working directory is loaded first, and ${VAR} references
// in the YAML are expanded from the environment. Fields missing from the file
// get their `default` tag value. The result is validated with `validate` tags.
//
//	type Config struct {
//	    Service string        `yaml:"service" validate:"required"`
//	    Timeout time.Duration `yaml:"timeout" default:"2s"`
//	}
func Load[T any](opts ...Option) (T, error) {
	var config T
	o := buildOptions(opts)

	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		return config, errx.New("[cfgloader]: config type must not be a pointer",
			errx.WithCode(CodeInvalidConfig))
	}

	_ = godotenv.Load()

	env, err := defineEnvironment(o.Environment)
	if err != nil {
		return config, err
	}

	path := filepath.Join(o.Dir, env+".yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, errx.New("[cfgloader]: config file not found",
			errx.WithCode(CodeConfigNotFound),
			errx.WithDetails(errx.D{"path": path}),
		)
	}
	if err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"path": path}))
	}

	data = []byte(os.ExpandEnv(string(data)))

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errx.Wrap(err,
			errx.WithCode(CodeInvalidConfig),
			errx.WithDetails(errx.D{"path": path}),
		)
	}

	if err = defaults.Set(&config); err != nil {
		return config, errx.Wrap(err, errx.WithCode(CodeInvalidConfig))
	}

	if err = val.ValidateSchema(config); err != nil {
		return config, errx.Wrap(err, errx.WithDetails(errx.D{"environment": env}))
	}

	if !o.Silent {
		printConfig(config)
	}

	return config, nil
}

func defineEnvironment(override string) (string, error) {
	env := override
	if env == "" {
		env = os.Getenv("ENVIRONMENT")
	}

	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		return "", errx.New(
			"[cfgloader]: ENVIRONMENT is not set or invalid. Choices are: production, staging, dev, local, test",
			errx.WithCode(CodeInvalidEnvironment),
			errx.WithDetails(errx.D{"environment": env}),
		)
	}
	return env, nil
}
