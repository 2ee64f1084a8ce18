package main

import "github.com/uswah23/smart-bike-map/cmd/geofence-server/cmd"

func main() {
	cmd.Execute()
}
