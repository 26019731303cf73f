package internal

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config    *Config
	imagePath string
	seed      int64
	watch     bool
	rolePlan  []string
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithImage sets a single image to build a pack from.
func WithImage(path string) Option {
	return func(a *application) {
		a.imagePath = path
	}
}

// WithSeed sets the pipeline seed.
func WithSeed(seed int64) Option {
	return func(a *application) {
		a.seed = seed
	}
}

// WithWatch enables inbox watch mode.
func WithWatch(enabled bool) Option {
	return func(a *application) {
		a.watch = enabled
	}
}

// WithRolePlan overrides the configured role plan for this invocation.
func WithRolePlan(plan []string) Option {
	return func(a *application) {
		a.rolePlan = plan
	}
}
