//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"fmt"
	"os"
	"os/user"
	"strings"

	pb "github.com/uswah23/smart-bike-map/internal/pb/v1"
)

// unknownActor is shown when nobody is recorded.
const unknownActor = "<unknown>"

// DetectActor returns who is pressing the override on this machine.
// The Windows domain prefix is dropped so the chat shows a plain user name.
func DetectActor() (*pb.SystemActor, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("hostname: %w", err)
	}

	username, err := currentUsername()
	if err != nil {
		return nil, err
	}

	return &pb.SystemActor{
		Hostname: hostname,
		Username: username,
	}, nil
}

// FormatActor renders an actor as username@hostname.
func FormatActor(actor *pb.SystemActor) string {
	if actor == nil {
		return unknownActor
	}

	return actor.GetUsername() + "@" + actor.GetHostname()
}

// currentUsername falls back to $USER when the user database is unavailable,
// as in scratch containers.
func currentUsername() (string, error) {
	current, err := user.Current()
	if err == nil {
		return trimDomain(current.Username), nil
	}

	if name := os.Getenv("USER"); name != "" {
		return name, nil
	}

	return "", fmt.Errorf("current user: %w", err)
}

// trimDomain turns DOMAIN\user into user.
func trimDomain(username string) string {
	if i := strings.LastIndexByte(username, '\\'); i >= 0 {
		return username[i+1:]
	}

	return username
}
