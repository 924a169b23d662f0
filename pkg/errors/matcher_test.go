package errors_test

import (
	"testing"

	pkgerrors "github.com/joe/event-recreator/pkg/errors"
)

func TestPatternMatcher_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		msg  string
		want pkgerrors.ErrorCategory
	}{
		{"permission", "open /photos/me.jpg: permission denied", pkgerrors.CategoryPermission},
		{"permission upper case", "Operation Not Permitted", pkgerrors.CategoryPermission},
		{"missing local", "stat /photos/me.jpg: no such file or directory", pkgerrors.CategoryPath},
		{"missing remote", "failed to stat remote /photos/me.jpg: file does not exist", pkgerrors.CategoryPath},
		{"not a directory", "stat photo.jpg/x: not a directory", pkgerrors.CategoryPath},
		{"too large", "file is too large: big.jpg is 99 bytes (limit 10)", pkgerrors.CategorySize},
		{"bad glob", "invalid glob pattern: photos/[.jpg", pkgerrors.CategoryPattern},
		{"no matches", "no files match photos/*.png", pkgerrors.CategoryPattern},
		{"ssh auth", "no SSH authentication methods available (tried SSH agent and default keys)", pkgerrors.CategoryRemote},
		{"dial", "failed to connect to me@host:22: SSH connection failed: dial tcp: connection refused", pkgerrors.CategoryRemote},
		{"bad url", "SFTP URL must include host", pkgerrors.CategoryRemote},
		{"key dir is not remote", "open /home/me/.ssh/photo.jpg: permission denied", pkgerrors.CategoryPermission},
		{"unknown", "something odd happened", pkgerrors.CategoryUnknown},
	}

	matcher := pkgerrors.NewPatternMatcher()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := matcher.Match(tt.msg); got != tt.want {
				t.Errorf("Match(%q) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}
