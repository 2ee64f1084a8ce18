// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with console or JSON encoding,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - level and format parsing used by the configuration,
//   - convenience functions (Infof, WarnKV, ErrorKV, etc.).
//
// Services accept a context and extract the logger from it, so every fix,
// override and dispatched intent is logged with its scope.
package logger
