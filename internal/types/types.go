package types

// Stage identifies which detection phase produced a result.
type Stage string

const (
	StageFilesystem Stage = "filesystem"
	StageSignature  Stage = "signature"
	StageContent    Stage = "content"
)

// Category is the closed set of file types filespect can report. The value
// is a stable machine tag; Label returns the human-readable form.
type Category string

const (
	// Programming languages
	Python     Category = "python"
	JavaScript Category = "javascript"
	TypeScript Category = "typescript"
	Java       Category = "java"
	C          Category = "c"
	CPP        Category = "cpp"
	Rust       Category = "rust"
	Go         Category = "go"
	PHP        Category = "php"
	Ruby       Category = "ruby"
	Shell      Category = "shell"
	PowerShell Category = "powershell"
	Batch      Category = "batch"

	// Web formats
	HTML Category = "html"
	CSS  Category = "css"
	XML  Category = "xml"
	JSON Category = "json"
	YAML Category = "yaml"

	// Documents
	PDF        Category = "pdf"
	Word       Category = "word"
	Excel      Category = "excel"
	PowerPoint Category = "powerpoint"
	Text       Category = "text"
	Markdown   Category = "markdown"

	// Images
	JPEG Category = "jpeg"
	PNG  Category = "png"
	GIF  Category = "gif"
	SVG  Category = "svg"
	TIFF Category = "tiff"
	BMP  Category = "bmp"
	WebP Category = "webp"

	// Audio / video
	MP3  Category = "mp3"
	MP4  Category = "mp4"
	AVI  Category = "avi"
	WAV  Category = "wav"
	FLAC Category = "flac"

	// Archives
	ZIP      Category = "zip"
	TAR      Category = "tar"
	GZIP     Category = "gzip"
	RAR      Category = "rar"
	SevenZip Category = "7z"

	// Executables
	ELF   Category = "elf"
	PE    Category = "pe"
	MachO Category = "mach-o"

	// Structural data formats
	CSV    Category = "csv"
	TSV    Category = "tsv"
	Log    Category = "log"
	Config Category = "config"

	// Special values
	Binary    Category = "binary"
	Empty     Category = "empty"
	Symlink   Category = "symlink"
	Directory Category = "directory"
	Unknown   Category = "unknown"
)

var labels = map[Category]string{
	Python:     "Python source",
	JavaScript: "JavaScript source",
	TypeScript: "TypeScript source",
	Java:       "Java source",
	C:          "C source",
	CPP:        "C++ source",
	Rust:       "Rust source",
	Go:         "Go source",
	PHP:        "PHP source",
	Ruby:       "Ruby source",
	Shell:      "Shell script",
	PowerShell: "PowerShell script",
	Batch:      "Batch file",
	HTML:       "HTML document",
	CSS:        "CSS stylesheet",
	XML:        "XML document",
	JSON:       "JSON data",
	YAML:       "YAML data",
	PDF:        "PDF document",
	Word:       "Microsoft Word document",
	Excel:      "Microsoft Excel spreadsheet",
	PowerPoint: "Microsoft PowerPoint presentation",
	Text:       "Text file",
	Markdown:   "Markdown document",
	JPEG:       "JPEG image",
	PNG:        "PNG image",
	GIF:        "GIF image",
	SVG:        "SVG image",
	TIFF:       "TIFF image",
	BMP:        "BMP image",
	WebP:       "WebP image",
	MP3:        "MP3 audio",
	MP4:        "MP4 video",
	AVI:        "AVI video",
	WAV:        "WAV audio",
	FLAC:       "FLAC audio",
	ZIP:        "ZIP archive",
	TAR:        "TAR archive",
	GZIP:       "GZIP archive",
	RAR:        "RAR archive",
	SevenZip:   "7-Zip archive",
	ELF:        "ELF executable",
	PE:         "PE executable",
	MachO:      "Mach-O executable",
	CSV:        "CSV data",
	TSV:        "TSV data",
	Log:        "Log file",
	Config:     "Configuration file",
	Binary:     "Binary file",
	Empty:      "Empty file",
	Symlink:    "Symbolic link",
	Directory:  "Directory",
	Unknown:    "Unknown file type",
}

// Label returns the display name for the category, or the raw tag when the
// category is not part of the known vocabulary.
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return string(c)
}

// Categories returns the full vocabulary in a stable display order.
func Categories() []Category {
	return []Category{
		Python, JavaScript, TypeScript, Java, C, CPP, Rust, Go, PHP, Ruby,
		Shell, PowerShell, Batch,
		HTML, CSS, XML, JSON, YAML,
		PDF, Word, Excel, PowerPoint, Text, Markdown,
		JPEG, PNG, GIF, SVG, TIFF, BMP, WebP,
		MP3, MP4, AVI, WAV, FLAC,
		ZIP, TAR, GZIP, RAR, SevenZip,
		ELF, PE, MachO,
		CSV, TSV, Log, Config,
		Binary, Empty, Symlink, Directory, Unknown,
	}
}

// DetectionResult is the outcome of classifying one path. Confidence is a
// heuristic score in (0,1], not a calibrated probability. Results are plain
// values; equality is structural.
type DetectionResult struct {
	Path        string   `json:"path"`
	Category    Category `json:"category"`
	Stage       Stage    `json:"stage"`
	Confidence  float64  `json:"confidence"`
	Explanation string   `json:"explanation,omitempty"`
}

// String renders the baseline "path: label" form, with the explanation
// appended in parentheses when present.
func (r DetectionResult) String() string {
	if r.Explanation != "" {
		return r.Path + ": " + r.Category.Label() + " (" + r.Explanation + ")"
	}
	return r.Path + ": " + r.Category.Label()
}
