// Package imagefile loads candidate photos from local disk or SFTP servers
// and decides which of them are images.
//
// A photo "spec" may name a single file, a directory (walked recursively), a
// doublestar glob such as ~/pictures/**/*.jpg, or an sftp:// URL for any of
// those. Content types follow the file extension, falling back to sniffing
// the first bytes when the extension is unknown.
package imagefile

import (
	"mime"
	"net/http"
	"path"
	"strings"
	"time"
)

// SniffLength is how many leading bytes are used for content sniffing
const SniffLength = 512

// Image is an opaque handle on one loaded file
type Image struct {
	// Name is the base file name
	Name string
	// Source is where the file was read from (local path or sftp URL)
	Source      string
	ContentType string
	Size        int64
	ModTime     time.Time
	Data        []byte
}

// IsImage reports whether the content type indicates an image
func (i Image) IsImage() bool {
	return IsImageType(i.ContentType)
}

// IsImageType reports whether a media type is an image/* type
func IsImageType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}

//nolint:gochecknoinits // Registers image types missing from older mime tables
func init() {
	for ext, typ := range map[string]string{
		".heic": "image/heic",
		".heif": "image/heif",
		".webp": "image/webp",
		".avif": "image/avif",
	} {
		_ = mime.AddExtensionType(ext, typ)
	}
}

// DetectContentType returns the media type for a file name and its leading
// bytes, without parameters.
func DetectContentType(name string, head []byte) string {
	if byExt := mime.TypeByExtension(strings.ToLower(path.Ext(name))); byExt != "" {
		return stripParams(byExt)
	}

	if len(head) > SniffLength {
		head = head[:SniffLength]
	}

	return stripParams(http.DetectContentType(head))
}

func stripParams(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return contentType
	}

	return mediaType
}
