// Package common holds helpers shared by the override and monitor commands:
// the tracker gRPC client, actor detection and log formatting of tracker state.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
