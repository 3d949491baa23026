// Package magic abstracts the optional byte-signature service consulted by
// the detection pipeline. The service is advisory: it may be absent, and any
// per-call failure is treated as "no answer".
package magic

import "github.com/gabriel-vasile/mimetype"

// Service describes byte signatures for a path. Available reports whether
// the service can be called at all, so the pipeline degrades
// deterministically instead of branching on error types.
type Service interface {
	Available() bool
	Describe(path string) (string, error)
}

// Sniffer is the default Service, backed by content sniffing from the
// mimetype library. The returned description is a free-text MIME string
// (e.g. "application/pdf"); callers match substrings, not exact values.
type Sniffer struct{}

// NewSniffer returns the mimetype-backed signature service.
func NewSniffer() *Sniffer { return &Sniffer{} }

func (s *Sniffer) Available() bool { return true }

func (s *Sniffer) Describe(path string) (string, error) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	return m.String(), nil
}
