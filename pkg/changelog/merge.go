// Copyright © 2025 Slipway Authors

package changelog

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

var headerRe = regexp.MustCompile(`(?i)^#\s+changelog\s*$`)

// Merge inserts a new entry into existing changelog text: immediately after
// a leading "# Changelog" header when present, otherwise under a freshly
// prepended header. Existing content is never lost or reordered relative to
// itself.
func Merge(existing, entry string) string {
	entry = strings.TrimRight(strings.TrimLeft(entry, "\n"), "\n")
	if strings.TrimSpace(existing) == "" {
		return "# Changelog\n\n" + entry + "\n"
	}
	lines := strings.Split(existing, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if headerRe.MatchString(line) {
			head := strings.Join(lines[:i+1], "\n")
			rest := strings.Join(lines[i+1:], "\n")
			return head + "\n\n" + entry + "\n" + rest
		}
		break
	}
	return "# Changelog\n\n" + entry + "\n\n" + existing
}

// UpdateFile merges entry into the changelog at path, creating the file when
// absent.
func UpdateFile(fs afero.Fs, path, entry string) error {
	existing := ""
	if data, err := afero.ReadFile(fs, path); err == nil {
		existing = string(data)
	} else if !os.IsNotExist(err) {
		return err
	}
	return afero.WriteFile(fs, path, []byte(Merge(existing, entry)), 0644)
}
