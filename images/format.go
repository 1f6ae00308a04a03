package images

// ImageFormat represents supported input image formats.
type ImageFormat string

const (
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatGIF is the GIF image format. Only the first frame is used.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the Windows bitmap format.
	FormatBMP ImageFormat = "bmp"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
	// FormatUnknown is returned when the header matches none of the above.
	FormatUnknown ImageFormat = ""
)

// magic holds the header prefixes used for sniffing. '?' matches any byte.
var magic = []struct {
	format ImageFormat
	prefix string
}{
	{FormatPNG, "\x89PNG\r\n\x1a\n"},
	{FormatJPEG, "\xff\xd8"},
	{FormatGIF, "GIF8?a"},
	{FormatBMP, "BM"},
	{FormatWebP, "RIFF????WEBP"},
}

// DetectFormat sniffs the encoded format from the leading bytes of data.
//
// Arguments:
// - data: The raw bytes of an encoded image.
//
// Returns:
// - The detected ImageFormat, or FormatUnknown.
func DetectFormat(data []byte) ImageFormat {
	for _, m := range magic {
		if match(m.prefix, data) {
			return m.format
		}
	}
	return FormatUnknown
}

func match(prefix string, data []byte) bool {
	if len(data) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if prefix[i] != '?' && prefix[i] != data[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (f ImageFormat) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}
