package detect

import (
	"strings"

	"github.com/filespect/filespect/internal/types"
)

type signatureMapping struct {
	substr string
	cat    types.Category
}

// signaturePriority maps substrings of a signature-service description to
// categories. First match wins, so the order is fixed.
var signaturePriority = []signatureMapping{
	{"pdf", types.PDF},
	{"jpeg", types.JPEG},
	{"png", types.PNG},
	{"gif", types.GIF},
	{"zip", types.ZIP},
	{"gzip", types.GZIP},
	{"tar", types.TAR},
	{"rar", types.RAR},
	{"elf", types.ELF},
	{"pe32", types.PE},
	{"mach-o", types.MachO},
	{"mp3", types.MP3},
	{"mp4", types.MP4},
	{"avi", types.AVI},
	{"wav", types.WAV},
	{"html", types.HTML},
	{"xml", types.XML},
	{"json", types.JSON},
}

// signatureStage consults the external signature service, when present. The
// service is advisory: any failure yields no result and detection moves on.
func (d *Detector) signatureStage(path string) (types.DetectionResult, bool) {
	if d.sig == nil || !d.sig.Available() {
		return types.DetectionResult{}, false
	}
	desc, err := d.sig.Describe(path)
	if err != nil || desc == "" {
		return types.DetectionResult{}, false
	}
	lower := strings.ToLower(desc)

	for _, m := range signaturePriority {
		if strings.Contains(lower, m.substr) {
			return d.result(path, m.cat, types.StageSignature, 0.9, "Signature: "+desc), true
		}
	}
	if strings.Contains(lower, "text") {
		return d.result(path, types.Text, types.StageSignature, 0.6, "Signature: "+desc), true
	}
	for _, kw := range []string{"binary", "data", "executable"} {
		if strings.Contains(lower, kw) {
			return d.result(path, types.Binary, types.StageSignature, 0.7, "Signature: "+desc), true
		}
	}
	return types.DetectionResult{}, false
}
