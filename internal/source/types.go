package source

type (
	// FileID uniquely identifies a source within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source.
	FileFlags uint8
)

const (
	// FileVirtual indicates the source came from memory (REPL line, test, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single expression source: one REPL
// line, one command-line argument, or one batch file of expressions.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
