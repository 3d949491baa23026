package detect

import "github.com/filespect/filespect/internal/types"

// extensionTable maps a lower-cased filename suffix (single or compound) to
// a category. Compound entries like ".tar.gz" are tried before single
// suffixes by the filesystem stage.
var extensionTable = map[string]types.Category{
	// Programming languages
	".py":   types.Python,
	".js":   types.JavaScript,
	".ts":   types.TypeScript,
	".java": types.Java,
	".c":    types.C,
	".cpp":  types.CPP,
	".cxx":  types.CPP,
	".cc":   types.CPP,
	".h":    types.C,
	".hpp":  types.CPP,
	".rs":   types.Rust,
	".go":   types.Go,
	".php":  types.PHP,
	".rb":   types.Ruby,
	".sh":   types.Shell,
	".bash": types.Shell,
	".zsh":  types.Shell,
	".fish": types.Shell,
	".ps1":  types.PowerShell,
	".bat":  types.Batch,
	".cmd":  types.Batch,

	// Web formats
	".html": types.HTML,
	".htm":  types.HTML,
	".css":  types.CSS,
	".xml":  types.XML,
	".json": types.JSON,
	".yaml": types.YAML,
	".yml":  types.YAML,

	// Documents
	".pdf":      types.PDF,
	".doc":      types.Word,
	".docx":     types.Word,
	".xls":      types.Excel,
	".xlsx":     types.Excel,
	".ppt":      types.PowerPoint,
	".pptx":     types.PowerPoint,
	".txt":      types.Text,
	".md":       types.Markdown,
	".markdown": types.Markdown,

	// Images
	".jpg":  types.JPEG,
	".jpeg": types.JPEG,
	".png":  types.PNG,
	".gif":  types.GIF,
	".svg":  types.SVG,
	".tif":  types.TIFF,
	".tiff": types.TIFF,
	".bmp":  types.BMP,
	".webp": types.WebP,

	// Audio / video
	".mp3":  types.MP3,
	".mp4":  types.MP4,
	".avi":  types.AVI,
	".wav":  types.WAV,
	".flac": types.FLAC,

	// Archives
	".zip":    types.ZIP,
	".tar":    types.TAR,
	".gz":     types.GZIP,
	".tar.gz": types.GZIP,
	".tgz":    types.GZIP,
	".rar":    types.RAR,
	".7z":     types.SevenZip,

	// Executables
	".exe": types.PE,
	".dll": types.PE,
	".so":  types.ELF,
	".app": types.MachO,

	// Structural data formats
	".csv":    types.CSV,
	".tsv":    types.TSV,
	".log":    types.Log,
	".conf":   types.Config,
	".config": types.Config,
	".ini":    types.Config,
	".cfg":    types.Config,
}

type shebangEntry struct {
	interp string
	cat    types.Category
}

// shebangTable maps interpreter-path substrings to categories. Order matters:
// the first entry whose substring occurs in the shebang line wins.
var shebangTable = []shebangEntry{
	{"python", types.Python},
	{"node", types.JavaScript},
	{"bash", types.Shell},
	{"sh", types.Shell},
	{"zsh", types.Shell},
	{"fish", types.Shell},
	{"php", types.PHP},
	{"ruby", types.Ruby},
	{"perl", types.Text}, // no dedicated Perl category
}
