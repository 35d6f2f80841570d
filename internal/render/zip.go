package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

type namedFile struct {
	Name string
	Data []byte
}

// zipFiles packs files into a single archive. Duplicate names get a numeric suffix.
func zipFiles(files []namedFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	seen := make(map[string]int, len(files))
	modified := time.Now()

	for _, f := range files {
		name := f.Name
		if n := seen[f.Name]; n > 0 {
			name = fmt.Sprintf("%d-%s", n+1, f.Name)
		}
		seen[f.Name]++

		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return nil, fmt.Errorf("add %s to archive: %w", name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("write %s to archive: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}
	return buf.Bytes(), nil
}
