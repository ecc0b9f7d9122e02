package cfgloader

// Options holds configuration options for Load and MustLoad.
type Options struct {
	// Silent disables printing the loaded config.
	Silent bool

	// Dir is the directory holding ${ENVIRONMENT}.yaml files. Defaults to ./config.
	Dir string

	// Environment overrides the ENVIRONMENT variable.
	Environment string
}

// Option is a functional option for configuring Load behavior.
type Option func(*Options)

// WithSilent disables printing the loaded config.
func WithSilent() Option {
	return func(o *Options) {
		o.Silent = true
	}
}

// WithConfigDir reads config files from dir instead of ./config.
func WithConfigDir(dir string) Option {
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithEnvironment selects the config file without consulting ENVIRONMENT.
func WithEnvironment(env string) Option {
	return func(o *Options) {
		o.Environment = env
	}
}

func buildOptions(opts []Option) Options {
	o := Options{Dir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
