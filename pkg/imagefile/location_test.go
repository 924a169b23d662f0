//nolint:varnamelen // Test files use idiomatic short variable names (t, etc.)
package imagefile_test

import (
	"testing"

	"github.com/joe/event-recreator/pkg/imagefile"
)

func TestParseLocation_Local(t *testing.T) {
	t.Parallel()

	loc, err := imagefile.ParseLocation("/photos/me.jpg")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if loc.IsRemote {
		t.Error("IsRemote should be false for local path")
	}
	if loc.Path != "/photos/me.jpg" {
		t.Errorf("Path = %q, want %q", loc.Path, "/photos/me.jpg")
	}
	if loc.String() != "/photos/me.jpg" {
		t.Errorf("String() = %q", loc.String())
	}
}

//nolint:funlen // Table-driven test with many SFTP URL cases
func TestParseLocation_SFTP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantErr  bool
		wantUser string
		wantHost string
		wantPort int
		wantPath string
	}{
		{
			name:     "relative to remote home",
			input:    "sftp://joe@photos.lan/wedding",
			wantUser: "joe",
			wantHost: "photos.lan",
			wantPort: 22,
			wantPath: "wedding",
		},
		{
			name:     "custom port",
			input:    "sftp://joe@photos.lan:2222/wedding/me.jpg",
			wantUser: "joe",
			wantHost: "photos.lan",
			wantPort: 2222,
			wantPath: "wedding/me.jpg",
		},
		{
			name:     "absolute path",
			input:    "sftp://joe@photos.lan//srv/wedding",
			wantUser: "joe",
			wantHost: "photos.lan",
			wantPort: 22,
			wantPath: "/srv/wedding",
		},
		{
			name:     "remote home",
			input:    "sftp://joe@photos.lan",
			wantUser: "joe",
			wantHost: "photos.lan",
			wantPort: 22,
			wantPath: ".",
		},
		{
			name:     "remote home with slash",
			input:    "sftp://joe@photos.lan/",
			wantUser: "joe",
			wantHost: "photos.lan",
			wantPort: 22,
			wantPath: ".",
		},
		{name: "missing user", input: "sftp://photos.lan/wedding", wantErr: true},
		{name: "missing host", input: "sftp://joe@/wedding", wantErr: true},
		{name: "bad port", input: "sftp://joe@photos.lan:abc/wedding", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc, err := imagefile.ParseLocation(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %+v", tt.input, loc)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !loc.IsRemote {
				t.Error("IsRemote should be true")
			}
			if loc.User != tt.wantUser {
				t.Errorf("User = %q, want %q", loc.User, tt.wantUser)
			}
			if loc.Host != tt.wantHost {
				t.Errorf("Host = %q, want %q", loc.Host, tt.wantHost)
			}
			if loc.Port != tt.wantPort {
				t.Errorf("Port = %d, want %d", loc.Port, tt.wantPort)
			}
			if loc.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", loc.Path, tt.wantPath)
			}
		})
	}
}

func TestLocation_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"sftp://joe@photos.lan/wedding",
		"sftp://joe@photos.lan:2222/wedding/me.jpg",
		"sftp://joe@photos.lan//srv/wedding",
		"sftp://joe@photos.lan",
	} {
		loc, err := imagefile.ParseLocation(input)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", input, err)
		}

		if loc.String() != input {
			t.Errorf("String() = %q, want %q", loc.String(), input)
		}
	}
}

func TestLocation_KeyAndSub(t *testing.T) {
	t.Parallel()

	loc, err := imagefile.ParseLocation("sftp://joe@photos.lan/wedding")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if loc.Key() != "joe@photos.lan:22" {
		t.Errorf("Key() = %q", loc.Key())
	}

	sub := loc.Sub("wedding/a.jpg")
	if sub.String() != "sftp://joe@photos.lan/wedding/a.jpg" {
		t.Errorf("Sub().String() = %q", sub.String())
	}
	if sub.Key() != loc.Key() {
		t.Errorf("Sub changed the server key: %q", sub.Key())
	}
}
