package advlog

// Content is log content, either text or raw bytes to be decoded
type Content struct {
	text   string
	raw    []byte
	binary bool
}

// Text wraps string content
func Text(s string) Content {
	return Content{text: s}
}

// Bytes wraps binary content, decoded with the encoding given to WriteLog
func Bytes(b []byte) Content {
	return Content{raw: b, binary: true}
}

// IsBinary reports whether the content needs decoding
func (c Content) IsBinary() bool {
	return c.binary
}
