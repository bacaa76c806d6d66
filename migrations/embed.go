// Package migrations embeds the versioned schema files applied at startup.
package migrations

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed *.sql
var Files embed.FS

// Source returns dir when set, so operators can point at an on-disk
// migrations directory; otherwise the embedded files.
func Source(dir string) fs.FS {
	if dir == "" {
		return Files
	}
	return os.DirFS(dir)
}
