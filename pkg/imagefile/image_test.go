package imagefile_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/joe/event-recreator/pkg/imagefile"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngBytes  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
)

func TestDetectContentType_ByExtension(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(imagefile.DetectContentType("me.jpg", nil)).To(Equal("image/jpeg"))
	g.Expect(imagefile.DetectContentType("ME.JPG", nil)).To(Equal("image/jpeg"))
	g.Expect(imagefile.DetectContentType("a.png", nil)).To(Equal("image/png"))
	g.Expect(imagefile.DetectContentType("a.heic", nil)).To(Equal("image/heic"))
	g.Expect(imagefile.DetectContentType("a.webp", nil)).To(Equal("image/webp"))
}

func TestDetectContentType_StripsParameters(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(imagefile.DetectContentType("notes.txt", []byte("hello"))).To(Equal("text/plain"))
}

func TestDetectContentType_SniffsUnknownExtension(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(imagefile.DetectContentType("IMG_0001", pngBytes)).To(Equal("image/png"))
	g.Expect(imagefile.DetectContentType("IMG_0002", jpegBytes)).To(Equal("image/jpeg"))
	g.Expect(imagefile.DetectContentType("README", []byte("plain words"))).To(Equal("text/plain"))
}

func TestIsImageType(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(imagefile.IsImageType("image/jpeg")).To(BeTrue())
	g.Expect(imagefile.IsImageType("IMAGE/PNG")).To(BeTrue())
	g.Expect(imagefile.IsImageType("application/pdf")).To(BeFalse())
	g.Expect(imagefile.IsImageType("")).To(BeFalse())

	g.Expect(imagefile.Image{ContentType: "image/gif"}.IsImage()).To(BeTrue())
	g.Expect(imagefile.Image{ContentType: "text/plain"}.IsImage()).To(BeFalse())
}
