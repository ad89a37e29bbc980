package bml

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/shapestone/shape-bml/pkg/element"
)

// Reader loads a BML document from a file.
//
// Filesystem failures are returned wrapped with the operation and path, and
// are never a *FormatError; errors.Cause returns the underlying failure.
// Syntax failures are returned as the *FormatError from the parser.
type Reader struct {
	path      string
	fs        afero.Fs
	logger    log.Logger
	overwrite bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithFs sets the filesystem the Reader uses. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Reader) {
		r.fs = fs
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithOverwrite truncates the file to an empty document when the Reader is created.
func WithOverwrite(overwrite bool) Option {
	return func(r *Reader) {
		r.overwrite = overwrite
	}
}

// NewReader returns a Reader for path. A missing file is created empty, and
// so is an existing one when WithOverwrite(true) is given.
func NewReader(path string, opts ...Option) (*Reader, error) {
	r := &Reader{
		path:   path,
		fs:     afero.NewOsFs(),
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}

	exists, err := afero.Exists(r.fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "checking %s", path)
	}
	if exists && !r.overwrite {
		return r, nil
	}

	f, err := r.fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "creating %s", path)
	}
	level.Info(r.logger).Log("msg", "created empty document", "path", path, "overwrite", r.overwrite)
	return r, nil
}

// Path returns the file the Reader loads.
func (r *Reader) Path() string {
	return r.path
}

// Read loads and parses the file. It returns the document together with the
// lines it was parsed from, so callers can show the text around a failure.
// The lines are returned even when parsing fails.
func (r *Reader) Read() (*element.Mapping, []string, error) {
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading %s", r.path)
	}

	lines := SplitLines(string(data))
	doc, err := ParseLines(lines)
	if err != nil {
		level.Warn(r.logger).Log("msg", "invalid document", "path", r.path, "err", err)
		return nil, lines, err
	}

	level.Debug(r.logger).Log("msg", "read document", "path", r.path, "lines", len(lines), "entries", doc.Len())
	return doc, lines, nil
}
