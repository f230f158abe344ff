package fileproc

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachFile(t *testing.T) {
	files := []string{"a", "b", "c"}

	results := ForEachFile(files, func(path string) (string, error) {
		return strings.ToUpper(path), nil
	})

	sort.Strings(results)
	assert.Equal(t, []string{"A", "B", "C"}, results)
}

func TestForEachFileSkipsErrors(t *testing.T) {
	files := []string{"a", "bad", "c"}

	results := ForEachFile(files, func(path string) (string, error) {
		if path == "bad" {
			return "", errors.New("boom")
		}
		return path, nil
	})

	sort.Strings(results)
	assert.Equal(t, []string{"a", "c"}, results)
}

func TestForEachFileWithProgress(t *testing.T) {
	var calls atomic.Int64

	ForEachFileWithProgress([]string{"a", "b", "c"}, func(path string) (int, error) {
		if path == "b" {
			return 0, errors.New("boom")
		}
		return 1, nil
	}, func() {
		calls.Add(1)
	})

	assert.Equal(t, int64(3), calls.Load(), "progress fires for failures too")
}

func TestForEachFileIndexedPreservesOrder(t *testing.T) {
	files := []string{"c", "a", "b"}

	results, errs := ForEachFileIndexed(files, func(path string) (string, error) {
		return path + "!", nil
	}, nil)

	require.Nil(t, errs)
	assert.Equal(t, []string{"c!", "a!", "b!"}, results)
}

func TestForEachFileIndexedReportsErrors(t *testing.T) {
	files := []string{"a", "bad"}

	results, errs := ForEachFileIndexed(files, func(path string) (string, error) {
		if path == "bad" {
			return "", errors.New("boom")
		}
		return path, nil
	}, nil)

	require.NotNil(t, errs)
	assert.True(t, errs.HasErrors())
	require.Len(t, errs.Errors, 1)
	assert.Equal(t, "bad", errs.Errors[0].Path)
	assert.Equal(t, "a", results[0])
	assert.Empty(t, results[1], "failed slot holds the zero value")
}

func TestForEachFileCollectErrors(t *testing.T) {
	_, errs := ForEachFileCollectErrors([]string{"x", "y"}, func(path string) (int, error) {
		return 0, errors.New("always fails")
	})

	require.NotNil(t, errs)
	assert.Len(t, errs.Errors, 2)
	assert.Contains(t, errs.Error(), "2 files failed")
}

func TestForEachFileWithContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, errs := ForEachFileWithContext(ctx, []string{"a", "b"}, func(path string) (string, error) {
		return path, nil
	})

	assert.Empty(t, results)
	require.NotNil(t, errs)
	assert.True(t, errs.HasErrors())
}

func TestEmptyInput(t *testing.T) {
	assert.Nil(t, ForEachFile(nil, func(string) (int, error) { return 0, nil }))

	results, errs := ForEachFileIndexed(nil, func(string) (int, error) { return 0, nil }, nil)
	assert.Nil(t, results)
	assert.Nil(t, errs)
}
