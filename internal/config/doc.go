// Package config defines the tracker settings used by every binary and
// provides helpers to load, validate and save them in YAML format.
//
// Validate fills defaults (MQTT topics, timeouts, HTTP address, notification
// text) before running tag validation, so a minimal file only needs the gRPC
// server address.
package config
