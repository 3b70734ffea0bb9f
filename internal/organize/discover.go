package organize

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// researchExtensions are the file types the organizer picks up (lowercase,
// with leading dot).
var researchExtensions = map[string]bool{
	".pdf":  true,
	".xlsx": true,
	".xls":  true,
}

// Discover lists research files directly inside dir. Subdirectories are not
// descended into. Paths are sorted lexicographically for a deterministic
// processing order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, eris.Wrapf(err, "organize: read source dir %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if researchExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
