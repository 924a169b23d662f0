package imagefile

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultSFTPPort is used when an sftp:// URL carries no port
const DefaultSFTPPort = 22

// Location is either a local path or a path on an SFTP server
type Location struct {
	IsRemote bool

	// Path is the local path, or the remote path for SFTP locations
	Path string

	// For SFTP locations
	Host string
	Port int
	User string
}

// String renders the location the way a user would type it
func (l Location) String() string {
	if !l.IsRemote {
		return l.Path
	}

	// an absolute remote path renders with the double slash
	remote := "/" + l.Path
	if l.Path == "." {
		remote = ""
	}

	if l.Port == DefaultSFTPPort {
		return fmt.Sprintf("sftp://%s@%s%s", l.User, l.Host, remote)
	}

	return fmt.Sprintf("sftp://%s@%s:%d%s", l.User, l.Host, l.Port, remote)
}

// Key identifies the server of a remote location
func (l Location) Key() string {
	return fmt.Sprintf("%s@%s:%d", l.User, l.Host, l.Port)
}

// Sub returns a location on the same server (or disk) for another path
func (l Location) Sub(p string) Location {
	l.Path = p
	return l
}

// ParseLocation detects whether s is a local path or an SFTP URL.
// SFTP URLs have the form sftp://user@host[:port]/path; the port defaults
// to 22.
//   - sftp://joe@photos.lan/wedding      -> "wedding" relative to the remote home
//   - sftp://joe@photos.lan//srv/wedding -> absolute "/srv/wedding"
//   - sftp://joe@photos.lan              -> the remote home "."
func ParseLocation(s string) (Location, error) {
	if strings.HasPrefix(s, "sftp://") {
		return parseSFTPURL(s)
	}

	return Location{Path: s}, nil
}

func parseSFTPURL(raw string) (Location, error) {
	u, err := url.Parse(raw) //nolint:varnamelen // u is idiomatic for URL
	if err != nil {
		return Location{}, fmt.Errorf("invalid SFTP URL: %w", err)
	}

	if u.User == nil || u.User.Username() == "" {
		return Location{}, fmt.Errorf("SFTP URL must include username (sftp://user@host/path)") //nolint:err113,perfsprint // URL validation with format guidance
	}

	host := u.Hostname()
	if host == "" {
		return Location{}, fmt.Errorf("SFTP URL must include host") //nolint:err113,perfsprint // URL validation error
	}

	port := DefaultSFTPPort
	if portStr := u.Port(); portStr != "" {
		p, err := strconv.Atoi(portStr)
		if err != nil {
			return Location{}, fmt.Errorf("invalid port number: %w", err)
		}
		port = p
	}

	remotePath := u.Path
	switch {
	case remotePath == "" || remotePath == "/":
		remotePath = "."
	case strings.HasPrefix(remotePath, "//"):
		remotePath = remotePath[1:]
	default:
		remotePath = strings.TrimPrefix(remotePath, "/")
	}

	return Location{
		IsRemote: true,
		Path:     remotePath,
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
	}, nil
}
