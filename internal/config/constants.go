package config

// SourceFileExt is the canonical source file extension.
const SourceFileExt = ".lyra"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".lyra", ".ly"}

// ConfigFileNames are the recognized build configuration file names, in
// lookup order.
var ConfigFileNames = []string{"lyra.yaml", "lyra.yml"}

// Keyword spellings shared between passes and diagnostics.
const (
	ConstKeyword   = "const"
	ConstFnKeyword = "const fun"
	StaticKeyword  = "static"
)
