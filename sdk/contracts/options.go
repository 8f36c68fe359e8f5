package contracts

// EngineOptions defines the configuration options for the engine.
type EngineOptions struct {
	Config      Config   // Tunable constants of the performance.
	Logger      Logger   // Logger for logging events and errors.
	LogLevel    LogLevel // Level of logging to use.
	LogFilePath string   // File path for logging if file logging is enabled.
	Sink        Sink     // Optional output; the platform sink is opened when nil.
	Clock       Clock    // Optional clock; real time when nil.
	Monitor     bool     // Log every emitted message at debug level.
}

// Option is a function that modifies EngineOptions.
type Option func(*EngineOptions)

// WithConfig replaces the default constants.
func WithConfig(cfg Config) Option {
	return func(opts *EngineOptions) {
		opts.Config = cfg
	}
}

// WithSeed overrides only the random seed.
func WithSeed(seed int64) Option {
	return func(opts *EngineOptions) {
		opts.Config.Seed = seed
	}
}

// WithPortName overrides the name of the virtual output port.
func WithPortName(name string) Option {
	return func(opts *EngineOptions) {
		opts.Config.PortName = name
	}
}

// WithLogger sets the logger for the engine.
func WithLogger(l Logger) Option {
	return func(opts *EngineOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the engine.
func WithLogLevel(level LogLevel) Option {
	return func(opts *EngineOptions) {
		opts.LogLevel = level
	}
}

// WithLogFile directs logs to a file.
func WithLogFile(path string) Option {
	return func(opts *EngineOptions) {
		opts.LogFilePath = path
	}
}

// WithSink sends the performance to s instead of the platform port.
func WithSink(s Sink) Option {
	return func(opts *EngineOptions) {
		opts.Sink = s
	}
}

// WithClock replaces the real-time clock.
func WithClock(c Clock) Option {
	return func(opts *EngineOptions) {
		opts.Clock = c
	}
}

// WithMonitor logs every emitted message.
func WithMonitor() Option {
	return func(opts *EngineOptions) {
		opts.Monitor = true
	}
}
