// Package source loads the raw text that the phone extractor scans.
package source

import (
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/vortex-fintech/phonex/errors"
	"github.com/vortex-fintech/phonex/logger"
	"github.com/vortex-fintech/phonex/retry"
	"github.com/vortex-fintech/phonex/validator"
)

var (
	ErrEmptyPath       = stderrors.New("file path is empty")
	ErrNotFound        = stderrors.New("file not found")
	ErrRead            = stderrors.New("read error")
	ErrInvalidEncoding = stderrors.New("file is not valid utf-8")
)

type request struct {
	Path string `validate:"required,file"`
}

// Reader reads a whole UTF-8 text file into memory.
type Reader struct {
	log      logger.LoggerInterface
	policy   retry.Policy
	readFile func(string) ([]byte, error)
}

type Option func(*Reader)

func WithLogger(l logger.LoggerInterface) Option {
	return func(r *Reader) {
		if l != nil {
			r.log = l
		}
	}
}

func WithRetryPolicy(p retry.Policy) Option {
	return func(r *Reader) { r.policy = p }
}

func NewReader(opts ...Option) *Reader {
	r := &Reader{
		log:      logger.Nop(),
		policy:   retry.Fast,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read returns the content of path.
//
// Errors match ErrEmptyPath, ErrNotFound, ErrInvalidEncoding or ErrRead via errors.Is.
// Only ErrRead failures are retried.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	r.log.Infow("reading file", "path", path)

	if err := r.validate(path); err != nil {
		if stderrors.Is(err, ErrNotFound) {
			r.log.Errorw("file not found", "path", path)
		}
		return "", err
	}

	var content []byte
	err := retry.Do(ctx, r.policy, func() error {
		b, err := r.readFile(path)
		switch {
		case err == nil:
			content = b
			return nil
		case stderrors.Is(err, fs.ErrNotExist):
			return retry.Permanent(fmt.Errorf("%w: %s", ErrNotFound, path))
		case stderrors.Is(err, fs.ErrPermission):
			return retry.Permanent(fmt.Errorf("%w: %s: %w", ErrRead, path, err))
		default:
			r.log.Warnw("read attempt failed", "path", path, "error", err)
			return fmt.Errorf("%w: %s: %w", ErrRead, path, err)
		}
	})
	if err != nil {
		if stderrors.Is(err, ErrNotFound) {
			r.log.Errorw("file not found", "path", path)
		} else {
			r.log.Errorw("read failed", "path", path, "error", err)
		}
		return "", unwrapPermanent(err)
	}

	if !utf8.Valid(content) {
		return "", fmt.Errorf("%w: %s", ErrInvalidEncoding, path)
	}

	r.log.Infow("file read successfully", "path", path, "bytes", len(content), "status", "success")
	return string(content), nil
}

func (r *Reader) validate(path string) error {
	violations := errors.FromFields(validator.Validate(request{Path: path}))
	if len(violations) == 0 {
		return nil
	}

	switch violations.Fields()["Path"] {
	case "required":
		return ErrEmptyPath
	case "file_not_found":
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return fmt.Errorf("%w: %s is a directory", ErrRead, path)
		}
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	default:
		return fmt.Errorf("%w: %s: %w", ErrRead, path, violations)
	}
}

func unwrapPermanent(err error) error {
	var pe retry.PermanentError
	if stderrors.As(err, &pe) && pe.Unwrap() != nil {
		return pe.Unwrap()
	}
	return err
}
