package chargedata

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "chargecli/internal/errors"
)

// maxLoggedRaw caps the raw line content carried in a rejection
// diagnostic.
const maxLoggedRaw = 120

// Loader reads charge measurement files from disk.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader with the given logger.
// If logger is nil, uses slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger: logger.With(slog.String("component", "loader")),
	}
}

// Load reads the file at path and returns its accepted measurements in
// file order. Corrupt lines are logged, counted, and skipped whatever
// their length; they never abort the load. A file that cannot be opened
// is reported as a not found or storage error so the caller can treat
// it as fatal for the whole batch.
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("measurement file %s", path))
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("could not open file %s", path), err)
	}
	defer file.Close()

	dataset := &Dataset{Source: path}

	// An oversized garbage line is rejected like any other corrupt
	// line; the read itself has no length bound.
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, apperrors.NewStorageError(fmt.Sprintf("read file %s", path), readErr)
		}
		if line == "" && readErr == io.EOF {
			break
		}

		dataset.TotalLines++

		raw := strings.TrimSuffix(line, "\n")
		raw = strings.TrimSuffix(raw, "\r")
		value, parseErr := ParseMeasurement(raw)
		if parseErr != nil {
			dataset.Rejected++
			l.logger.WarnContext(ctx, "skipping corrupt data point",
				"file", filepath.Base(path),
				"line", dataset.TotalLines,
				"raw", truncateRaw(raw),
				"reason", parseErr.Error(),
			)
		} else {
			dataset.Values = append(dataset.Values, value)
		}

		if readErr == io.EOF {
			break
		}
	}

	l.logger.InfoContext(ctx, "measurement file loaded",
		"file", filepath.Base(path),
		"accepted", dataset.Count(),
		"rejected", dataset.Rejected,
	)

	return dataset, nil
}

// truncateRaw shortens raw line content to maxLoggedRaw bytes for
// diagnostics.
func truncateRaw(raw string) string {
	if len(raw) <= maxLoggedRaw {
		return raw
	}
	return raw[:maxLoggedRaw] + "..."
}
