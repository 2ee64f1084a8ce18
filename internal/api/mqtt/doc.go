// Package mqtt connects to the bike broker and feeds fix messages from the
// fix topic into the ingestor.
package mqtt
