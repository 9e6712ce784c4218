package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered measurement file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// DefaultExtensions are the measurement file suffixes searched when none
// are configured.
var DefaultExtensions = []string{".dat", ".txt"}

// Discovery provides measurement file discovery operations
type Discovery struct {
	basePath   string
	extensions map[string]struct{}
}

// NewDiscovery creates a new file discovery instance. Extensions filter
// candidate files by suffix, case-insensitive; an empty list falls back
// to DefaultExtensions.
func NewDiscovery(basePath string, extensions []string) *Discovery {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		set[strings.ToLower(ext)] = struct{}{}
	}

	return &Discovery{basePath: basePath, extensions: set}
}

// FindMeasurementFiles finds all measurement files in the specified
// directory, sorted by name so batch runs process them in a
// deterministic order.
func (d *Discovery) FindMeasurementFiles(dir string) ([]FileInfo, error) {
	// If dir is already absolute, use it directly
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var found []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if _, ok := d.extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		found = append(found, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Name < found[j].Name
	})

	return found, nil
}

// Paths returns just the path of each discovered file, preserving order.
func Paths(infos []FileInfo) []string {
	paths := make([]string, len(infos))
	for i, info := range infos {
		paths[i] = info.Path
	}
	return paths
}
