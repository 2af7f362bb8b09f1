package validator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/phonex/validator"
)

type logSection struct {
	Env     string `validate:"required,oneof=development debug production"`
	MaxSize int    `validate:"gte=1"`
}

type testStruct struct {
	Log  logSection
	Path string `validate:"required,file"`
}

func TestValidate_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	s := testStruct{Log: logSection{Env: "production", MaxSize: 1}, Path: path}
	assert.Nil(t, validator.Validate(s))
}

func TestValidate_NestedFieldPaths(t *testing.T) {
	s := testStruct{Log: logSection{Env: "staging"}, Path: filepath.Join(t.TempDir(), "missing.txt")}
	res := validator.Validate(s)
	require.NotNil(t, res)
	assert.Equal(t, "invalid_choice", res["Log.Env"])
	assert.Equal(t, "too_small_or_equal", res["Log.MaxSize"])
	assert.Equal(t, "file_not_found", res["Path"])
}

func TestValidate_Required(t *testing.T) {
	res := validator.Validate(testStruct{Log: logSection{Env: "debug", MaxSize: 1}})
	require.NotNil(t, res)
	assert.Equal(t, "required", res["Path"])
}

func TestValidate_DirectoryIsNotAFile(t *testing.T) {
	res := validator.Validate(testStruct{Log: logSection{Env: "debug", MaxSize: 1}, Path: t.TempDir()})
	require.NotNil(t, res)
	assert.Equal(t, "file_not_found", res["Path"])
}

func TestValidate_ErrorType(t *testing.T) {
	res := validator.Validate(123)
	assert.NotNil(t, res)
	assert.Equal(t, "validation_failed", res["_error"])
}

func TestInstance(t *testing.T) {
	assert.NotNil(t, validator.Instance())
}
