package results

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arloliu/dosecurve/candidate"
	"github.com/arloliu/dosecurve/compress"
	"github.com/arloliu/dosecurve/errs"
	"github.com/arloliu/dosecurve/format"
	"github.com/arloliu/dosecurve/formula"
	"github.com/arloliu/dosecurve/internal/options"
	"go.uber.org/zap"
)

const (
	// DefaultDir is the directory results files are read from.
	DefaultDir = "test_eval_results"
	// DefaultDate is the evaluation run shipped with the application.
	DefaultDate = "2024-09-07"
)

// FileName returns the plain results file name of a kind and evaluation date.
func FileName(kind formula.Kind, date string) string {
	return fmt.Sprintf("test_eval__%s__%s.csv", kind, date)
}

// Loader reads results files from a directory.
type Loader struct {
	dir    string
	date   string
	logger *zap.Logger
}

// LoaderOption configures a Loader.
type LoaderOption = options.Option[*Loader]

// WithDir sets the results directory.
func WithDir(dir string) LoaderOption {
	return options.New(func(l *Loader) error {
		if dir == "" {
			return errors.New("results directory must not be empty")
		}
		l.dir = dir

		return nil
	})
}

// WithDate selects the evaluation run by its date stamp.
func WithDate(date string) LoaderOption {
	return options.New(func(l *Loader) error {
		if date == "" {
			return errors.New("results date must not be empty")
		}
		l.date = date

		return nil
	})
}

// WithLogger sets the logger used to report resolved files and skipped cells.
func WithLogger(logger *zap.Logger) LoaderOption {
	return options.NoError(func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	})
}

// NewLoader creates a Loader reading DefaultDir for DefaultDate unless configured otherwise.
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	l := &Loader{
		dir:    DefaultDir,
		date:   DefaultDate,
		logger: zap.NewNop(),
	}
	if err := options.Apply(l, opts...); err != nil {
		return nil, err
	}

	return l, nil
}

// Path returns the plain results file path of a kind.
func (l *Loader) Path(kind formula.Kind) string {
	return filepath.Join(l.dir, FileName(kind, l.date))
}

// Resolve returns the existing results file of a kind, preferring the plain
// file over its compressed siblings.
func (l *Loader) Resolve(kind formula.Kind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %d", errs.ErrInvalidKind, int(kind))
	}

	plain := l.Path(kind)
	candidates := []string{plain}
	for _, ct := range format.CompressedTypes {
		candidates = append(candidates, plain+ct.Extension())
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %s (kind %s)", errs.ErrResultsNotFound, plain, kind)
}

// LoadRows reads every row of a kind's results file.
func (l *Loader) LoadRows(kind formula.Kind) ([]candidate.Row, string, error) {
	path, err := l.Resolve(kind)
	if err != nil {
		return nil, "", err
	}

	data, err := compress.ReadFile(path)
	if err != nil {
		return nil, path, err
	}

	rows, err := ParseCSV(bytes.NewReader(data), l.logger.With(zap.String("file", path)))
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}

	l.logger.Debug("loaded results file",
		zap.String("file", path),
		zap.Stringer("kind", kind),
		zap.Stringer("compression", format.FromPath(path)),
		zap.Int("rows", len(rows)),
	)

	return rows, path, nil
}

// Load reads and ranks a kind's results file.
func (l *Loader) Load(kind formula.Kind) (*candidate.Table, error) {
	rows, path, err := l.LoadRows(kind)
	if err != nil {
		return nil, err
	}

	table, err := candidate.Rank(kind, rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}
