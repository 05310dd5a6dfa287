package vision

import "strings"

// MaxImageBytes is the upload ceiling for user photos.
const MaxImageBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ValidationResult is a structured validation outcome; an invalid image is
// not an error condition, it carries a human-readable reason instead.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ValidateImage checks the upload against the size and type constraints.
// Pure predicate, no side effects.
func ValidateImage(sizeBytes int64, mimeType string) ValidationResult {
	if sizeBytes > MaxImageBytes {
		return ValidationResult{Reason: "image is too large (max 5MB)"}
	}
	if !allowedImageTypes[strings.ToLower(mimeType)] {
		return ValidationResult{Reason: "unsupported image format (JPG or PNG only)"}
	}
	return ValidationResult{Valid: true}
}

// SplitDataURI separates an optional "data:image/...;base64," prefix from
// the payload. The MIME type is empty when no prefix is present.
func SplitDataURI(image string) (mimeType, data string) {
	if !strings.HasPrefix(image, "data:") {
		return "", image
	}
	head, rest, found := strings.Cut(image, ",")
	if !found {
		return "", image
	}
	mimeType = strings.TrimPrefix(head, "data:")
	mimeType = strings.TrimSuffix(mimeType, ";base64")
	return mimeType, rest
}

// DecodedSize reports the byte size of a base64 payload without decoding it.
func DecodedSize(data string) int64 {
	padding := int64(0)
	for i := len(data) - 1; i >= 0 && data[i] == '='; i-- {
		padding++
	}
	return int64(len(data))/4*3 - padding
}
