package main

import "github.com/uswah23/smart-bike-map/cmd/geofence-override/cmd"

func main() {
	cmd.Execute()
}
