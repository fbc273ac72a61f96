package core

// DebugMode controls how the window runtime treats panics raised while an
// input callback is dispatching. When true, the panic is reported through
// the errors package and the callback returns. When false, it is reported
// and then re-raised.
var DebugMode = true

// SetDebugMode enables or disables debug mode for the runtime.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
