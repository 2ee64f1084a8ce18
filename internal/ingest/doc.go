// Package ingest turns raw fix payloads from the bike into validated positions
// and feeds them to the tracker. Malformed payloads are logged, counted and dropped.
package ingest
