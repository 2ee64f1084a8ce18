// Package buzzer sends commands to the bike over its MQTT command topic.
package buzzer
