package metadata

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yargevad/filepathx"
)

// Pattern is the file name filter applied by FindFiles.
const Pattern = "*.fits"

// FindFiles returns the absolute paths of the FITS files directly inside
// dir. Subdirectories are not searched and dot-files are ignored. A
// directory that does not exist yields no files.
func FindFiles(dir string) ([]string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("metadata: resolve %s: %w", dir, err)
	}

	matches, err := filepathx.Glob(filepath.Join(abs, Pattern))
	if err != nil {
		return nil, fmt.Errorf("metadata: glob %s: %w", abs, err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if strings.HasPrefix(filepath.Base(m), ".") {
			continue
		}

		if info, err := os.Stat(m); err == nil && info.IsDir() {
			continue
		}

		files = append(files, m)
	}

	return files, nil
}
