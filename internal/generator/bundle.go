package generator

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// buildArchive packs the two generated text files into a single deflated
// zip. Both entries are written or the archive is not produced at all.
func buildArchive(orderName, orderContent, lineName, lineContent string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entries := []struct {
		name    string
		content string
	}{
		{orderName, orderContent},
		{lineName, lineContent},
	}
	for _, e := range entries {
		w, err := zw.Create(e.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", e.name, err)
		}
		if _, err := w.Write([]byte(e.content)); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
