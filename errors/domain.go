package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// DomainError is a single field-level invariant violation.
// Base, when set, is exposed through Unwrap so callers can match sentinels with errors.Is.
type DomainError struct {
	Base   error
	Field  string
	Reason string
}

func (e DomainError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e DomainError) Unwrap() error {
	return e.Base
}

// DomainInvariant builds a violation without a sentinel.
// Example: "phone: invalid_length"
func DomainInvariant(field, reason string) DomainError {
	return DomainError{Field: field, Reason: reason}
}

// WrapInvariant builds a violation that unwraps to base.
func WrapInvariant(base error, field, reason string) DomainError {
	return DomainError{Base: base, Field: field, Reason: reason}
}

// IsDomainError reports whether err (or anything it wraps) is a DomainError.
func IsDomainError(err error) bool {
	var de DomainError
	return stderrors.As(err, &de)
}

// ReasonOf returns the Reason of the first DomainError in err's chain.
func ReasonOf(err error) (string, bool) {
	var de DomainError
	if !stderrors.As(err, &de) {
		return "", false
	}
	return de.Reason, true
}

// батч доменных ошибок (несколько инвариантов за раз)
type DomainErrors []DomainError

func (es DomainErrors) Error() string {
	if len(es) == 0 {
		return "domain_errors: empty"
	}
	parts := make([]string, 0, len(es))
	for _, e := range es {
		parts = append(parts, e.Error())
	}
	return "domain_errors: " + strings.Join(parts, "; ")
}

// Fields returns the batch as field -> reason.
func (es DomainErrors) Fields() map[string]string {
	if len(es) == 0 {
		return nil
	}
	out := make(map[string]string, len(es))
	for _, e := range es {
		out[e.Field] = e.Reason
	}
	return out
}

// FromFields converts a field -> reason map into a batch ordered by field name.
// Returns nil for an empty map.
func FromFields(fields map[string]string) DomainErrors {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(DomainErrors, 0, len(keys))
	for _, k := range keys {
		out = append(out, DomainError{Field: k, Reason: fields[k]})
	}
	return out
}
