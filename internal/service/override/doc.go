// Package override implements geofence-override, the command that stops an
// active geofence alert on behalf of the local user.
//
// The command detects the calling user and host, asks the tracker to apply
// the override, and retries until the tracker answers or the context ends.
package override
