package i

// Logger is the levelled logger the maze service reports through.
type Logger interface {
	Debug(string)
	Info(string)
	Warning(string)
	Error(string)
}
