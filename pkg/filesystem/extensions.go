package filesystem

import (
	"path/filepath"
	"strings"
)

// ModelExtensions is the fixed set of file extensions treated as model files.
// Matching is case-insensitive.
var ModelExtensions = map[string]struct{}{
	".safetensors": {},
	".ckpt":        {},
	".pth":         {},
	".pt":          {},
	".onnx":        {},
	".bin":         {},
	".gguf":        {},
}

// IsModelFile reports whether the file name carries a recognized model
// extension, regardless of case.
func IsModelFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := ModelExtensions[ext]

	return ok
}
