package main

import "github.com/uswah23/smart-bike-map/cmd/geofence-monitor/cmd"

func main() {
	cmd.Execute()
}
