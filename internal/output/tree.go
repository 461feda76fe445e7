package output

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// writeTree prints root and everything under it, two spaces of indent
// per depth, directories suffixed with a slash. Entries come out in
// lexical order.
func writeTree(w io.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		depth := 0
		if path != root {
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			depth = strings.Count(rel, string(os.PathSeparator)) + 1
		}
		indent := strings.Repeat("  ", depth)
		if d.IsDir() {
			_, err = fmt.Fprintf(w, "%s%s/\n", indent, d.Name())
			return err
		}
		_, err = fmt.Fprintf(w, "%s%s\n", indent, d.Name())
		return err
	})
}
