// Package dispatch executes intents emitted by the alert machine. Intents are
// queued without blocking the caller and run in emission order by one worker
// against a set of sinks: buzzer, chat notifier, event fan-out, fix archive
// and the UI signal feed. Failures are logged and counted, never retried.
package dispatch
