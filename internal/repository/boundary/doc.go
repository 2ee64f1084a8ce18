// Package boundary loads the geofence definition from GeoJSON and renders it
// back for map clients. The UTHM campus polygon is embedded as the default.
package boundary
