package logify

import "os"

// EnvVar returns the name of the environment variable consulted by
// InitFromEnv: EnvPrefix + "LOG_LEVEL", so "LOG_LEVEL" unless a build-time
// prefix was injected.
func EnvVar() string {
	return EnvPrefix + envVarSuffix
}

// InitFromEnv sets the logger's threshold from the level environment
// variable, at most once per logger. A present, non-empty value is resolved
// exactly like SetLevelFromString: numeric form first, then name. A missing
// or empty variable leaves the threshold unchanged, but the call still
// consumes the one-time guard.
//
// Subsequent calls return immediately even if the variable has changed since,
// so it is safe to invoke from multiple initialization paths.
func (l *Logger) InitFromEnv() {
	l.envOnce.Do(func() {
		if value := os.Getenv(EnvVar()); value != "" {
			l.SetLevelFromString(value)
		}
	})
}

// InitFromEnv runs the one-time environment bootstrap on the Default logger.
func InitFromEnv() {
	Default.InitFromEnv()
}
