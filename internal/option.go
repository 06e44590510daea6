package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	clean  bool
	watch  bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithClean removes previously generated posts before building.
func WithClean(clean bool) Option {
	return func(a *application) {
		a.clean = clean
	}
}

// WithWatch keeps the process alive after the build, rebuilding on draft changes.
func WithWatch(watch bool) Option {
	return func(a *application) {
		a.watch = watch
	}
}
