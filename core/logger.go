package core

// Logger is the application-wide logging contract.
// expected args: error, map[string]interface{}, auth.Admin (picked up by
// implementations that report the acting user).
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}
