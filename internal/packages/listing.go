package packages

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Listing partitions an archive's entries into regular files and
// directories. It is rebuilt fresh for every classification call and
// discarded afterward.
type Listing struct {
	Files       []string
	Directories []string
}

// ReadListing enumerates the entries of a ZIP archive held in memory.
// Directories are recognized from entry metadata as well as trailing-slash
// names, since some packers omit explicit directory entries.
func ReadListing(data []byte) (*Listing, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	listing := &Listing{
		Files:       []string{},
		Directories: []string{},
	}

	for _, entry := range reader.File {
		name := entry.Name
		if entry.FileInfo().IsDir() || strings.HasSuffix(name, "/") {
			listing.Directories = append(listing.Directories, strings.TrimSuffix(name, "/"))
		} else {
			listing.Files = append(listing.Files, name)
		}
	}

	return listing, nil
}
