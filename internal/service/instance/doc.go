// Package instance keeps a single tracker process per host. Two trackers on
// the same broker would both raise alerts and both stop the buzzer.
package instance
