// Package archive stores processed fixes in Postgres and answers history queries
// for the renderer API.
package archive
