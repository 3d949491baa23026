package detect

import (
	"bytes"
	"os"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	// maxSampleBytes caps how much of a file is read for content analysis.
	maxSampleBytes = 1 << 20
	// largeFilePrefix is read instead when the file exceeds maxSampleBytes.
	largeFilePrefix = 8 << 10
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sample holds the raw byte prefix of a file and, when one of the candidate
// encodings succeeded, its text decoding.
type sample struct {
	raw     []byte
	text    string
	decoded bool
}

// readSample reads a bounded prefix of the file and attempts a best-effort
// text decoding: UTF-8, UTF-8 with BOM, then Latin-1 and Windows-1252.
func readSample(path string) (sample, error) {
	st, err := os.Stat(path)
	if err != nil {
		return sample{}, err
	}
	var raw []byte
	if st.Size() > maxSampleBytes {
		f, err := os.Open(path)
		if err != nil {
			return sample{}, err
		}
		defer f.Close()
		buf := make([]byte, largeFilePrefix)
		n, err := f.Read(buf)
		if n == 0 && err != nil {
			return sample{}, err
		}
		raw = buf[:n]
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return sample{}, err
		}
	}
	s := sample{raw: raw}
	if text, ok := decodeText(raw); ok {
		s.text = text
		s.decoded = true
	}
	return s, nil
}

func decodeText(raw []byte) (string, bool) {
	if utf8.Valid(raw) {
		return string(raw), true
	}
	if bytes.HasPrefix(raw, utf8BOM) {
		if rest := raw[len(utf8BOM):]; utf8.Valid(rest) {
			return string(rest), true
		}
	}
	for _, cm := range []*charmap.Charmap{charmap.ISO8859_1, charmap.Windows1252} {
		if out, err := cm.NewDecoder().Bytes(raw); err == nil {
			return string(out), true
		}
	}
	return "", false
}

// binaryLike reports whether a byte sample looks like binary content: any
// NUL byte, or fewer than 70% printable ASCII (plus tab/LF/CR) bytes.
func binaryLike(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	if bytes.IndexByte(b, 0) >= 0 {
		return true
	}
	printable := 0
	for _, c := range b {
		if (c >= 0x20 && c <= 0x7E) || c == '\t' || c == '\n' || c == '\r' {
			printable++
		}
	}
	return float64(printable)/float64(len(b)) < 0.7
}

// printableRatio is the rune-level counterpart used to gate the generic text
// fallback. Empty text counts as fully printable.
func printableRatio(s string) float64 {
	if s == "" {
		return 1
	}
	printable, total := 0, 0
	for _, r := range s {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}
	return float64(printable) / float64(total)
}
