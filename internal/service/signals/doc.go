// Package signals keeps the bounded, sequenced feed of UI signals that map
// renderers poll: marker moves, alert raise and clear, override control hiding.
package signals
