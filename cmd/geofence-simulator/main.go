package main

import "github.com/uswah23/smart-bike-map/cmd/geofence-simulator/cmd"

func main() {
	cmd.Execute()
}
