package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/mutview/internal/model"
)

// ErrUnsupportedFormat is returned for report paths whose extension has no codec.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Format is an on-disk report encoding.
type Format string

// Available Format values.
const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// SchemaVersion is the version of the report layout this build reads and
// writes.
const SchemaVersion = 1

var formatByExt = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
}

// FormatOf returns the report format implied by the file extension of path.
func FormatOf(path m.Path) (Format, error) {
	if format, ok := formatByExt[strings.ToLower(filepath.Ext(string(path)))]; ok {
		return format, nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Extensions returns the report file extensions FormatOf accepts, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(formatByExt))
	for ext := range formatByExt {
		exts = append(exts, ext)
	}

	sort.Strings(exts)

	return exts
}

// ReportStore loads and saves mutation reports.
type ReportStore interface {
	// LoadReport reads a report file, or merges every report shard found
	// below a directory.
	LoadReport(ctx context.Context, path m.Path) (*m.Report, error)
	// SaveReport writes report in the format implied by the extension of path.
	SaveReport(ctx context.Context, path m.Path, report *m.Report) error
}

type reportStore struct {
	fs      SourceFSAdapter
	workers int
}

// NewReportStore creates a ReportStore on top of fs. Shards of a report
// directory are decoded by up to workers goroutines; zero means one per CPU.
func NewReportStore(fs SourceFSAdapter, workers int) ReportStore {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &reportStore{fs: fs, workers: workers}
}

func (s *reportStore) LoadReport(ctx context.Context, path m.Path) (*m.Report, error) {
	info, err := s.fs.FileInfo(path)
	if err != nil {
		return nil, fmt.Errorf("stat report %s: %w", path, err)
	}

	if !info.IsDir() {
		return s.loadFile(ctx, path)
	}

	return s.loadDir(ctx, path)
}

func (s *reportStore) SaveReport(ctx context.Context, path m.Path, report *m.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	content, err := encodeReport(format, report)
	if err != nil {
		return fmt.Errorf("encode report %s: %w", path, err)
	}

	if err := s.fs.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	slog.Info("report saved", "path", path, "format", format, "mutants", len(report.Mutants))

	return nil
}

func (s *reportStore) loadFile(ctx context.Context, path m.Path) (*m.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	report, err := decodeReport(format, content)
	if err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	slog.Debug("report loaded", "path", path, "format", format, "mutants", len(report.Mutants), "files", len(report.Files))

	return report, nil
}

// loadDir decodes the shards below dir concurrently and merges them in path
// order. Byte-identical shards are merged once.
func (s *reportStore) loadDir(ctx context.Context, dir m.Path) (*m.Report, error) {
	paths, err := s.shardPaths(dir)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("no report shards in %s: %w", dir, os.ErrNotExist)
	}

	shards := make([]*m.Report, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			report, err := s.loadFile(groupCtx, path)
			if err != nil {
				return err
			}

			shards[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Info("report shards merged", "dir", dir, "shards", len(shards))

	return m.MergeReports(shards...), nil
}

func (s *reportStore) shardPaths(dir m.Path) ([]m.Path, error) {
	var paths []m.Path

	seen := make(map[string]struct{})

	err := s.fs.Walk(dir, true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if _, err := FormatOf(m.Path(path)); err != nil {
			slog.Debug("skipping non-report file", "path", path)
			return nil
		}

		hash, err := s.fs.HashFile(m.Path(path))
		if err != nil {
			return fmt.Errorf("hash report %s: %w", path, err)
		}

		if _, dup := seen[hash]; dup {
			slog.Debug("skipping duplicate shard", "path", path)
			return nil
		}

		seen[hash] = struct{}{}
		paths = append(paths, m.Path(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk reports %s: %w", dir, err)
	}

	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })

	return paths, nil
}

func decodeReport(format Format, content []byte) (*m.Report, error) {
	report := &m.Report{}

	switch format {
	case FormatYAML, FormatJSON:
		// JSON documents are valid YAML.
		if err := yaml.Unmarshal(content, report); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(bytes.NewReader(content)).Decode(report); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return report, nil
}

func encodeReport(format Format, report *m.Report) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(report); err != nil {
			return nil, err
		}

		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")

		if err := enc.Encode(report); err != nil {
			return nil, err
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(&buf).Encode(report); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}
