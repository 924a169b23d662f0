package imagefile_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/joe/event-recreator/pkg/imagefile"
)

func TestSplitDropped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "   ", nil},
		{"single", "/photos/me.jpg", []string{"/photos/me.jpg"}},
		{"space separated", "/a.jpg /b.jpg", []string{"/a.jpg", "/b.jpg"}},
		{"newline separated", "/a.jpg\n/b.jpg\n", []string{"/a.jpg", "/b.jpg"}},
		{"escaped space", `/my\ photos/a.jpg`, []string{"/my photos/a.jpg"}},
		{"single quoted", "'/my photos/a.jpg' '/b.jpg'", []string{"/my photos/a.jpg", "/b.jpg"}},
		{"double quoted", `"/my photos/a.jpg"`, []string{"/my photos/a.jpg"}},
		{"file url", "file:///my%20photos/a.jpg", []string{"/my photos/a.jpg"}},
		{"sftp url", "sftp://joe@photos.lan/wedding", []string{"sftp://joe@photos.lan/wedding"}},
		{"unbalanced quote", "'/a.jpg\n/b.jpg", []string{"'/a.jpg", "/b.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			got := imagefile.SplitDropped(tt.text)
			if tt.want == nil {
				g.Expect(got).To(BeEmpty())
				return
			}
			g.Expect(got).To(Equal(tt.want))
		})
	}
}
