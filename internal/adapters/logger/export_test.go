package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
	NewConsoleHandler   = newConsoleHandler
)
