package bml

import (
	"bytes"
	"os"
	"syscall"
	"testing"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReaderCreatesMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	var buf bytes.Buffer

	r, err := NewReader("/conf/app.bml", WithFs(fs), WithLogger(log.NewLogfmtLogger(&buf)))
	require.NoError(t, err)
	assert.Equal(t, "/conf/app.bml", r.Path())

	exists, err := afero.Exists(fs, "/conf/app.bml")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, buf.String(), "created empty document")

	doc, lines, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
	assert.Empty(t, lines)
}

func TestNewReaderKeepsExistingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app.bml", []byte("name: Alice\n"), 0o644))

	r, err := NewReader("app.bml", WithFs(fs))
	require.NoError(t, err)

	doc, lines, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"name: Alice"}, lines)
	assert.Equal(t, []string{"name"}, doc.Keys())
}

func TestNewReaderOverwrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app.bml", []byte("name: Alice\n"), 0o644))

	r, err := NewReader("app.bml", WithFs(fs), WithOverwrite(true))
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "app.bml")
	require.NoError(t, err)
	assert.Empty(t, data)

	doc, _, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Len())
}

func TestReaderReadsNestedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "server:\r\n  host: localhost\r\n  ports: [\"80\", \"443\"]\r\n"
	require.NoError(t, afero.WriteFile(fs, "app.bml", []byte(content), 0o644))

	r, err := NewReader("app.bml", WithFs(fs))
	require.NoError(t, err)

	doc, lines, err := r.Read()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, "  host: localhost", lines[1])
	assert.Equal(t, map[string]interface{}{
		"server": map[string]interface{}{
			"host":  "localhost",
			"ports": []interface{}{"80", "443"},
		},
	}, ToInterface(doc))
}

func TestReaderFormatError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "app.bml", []byte("a: 1\na: 2\n"), 0o644))
	var buf bytes.Buffer

	r, err := NewReader("app.bml", WithFs(fs), WithLogger(log.NewLogfmtLogger(&buf)))
	require.NoError(t, err)

	doc, lines, err := r.Read()
	assert.Nil(t, doc)
	assert.Equal(t, []string{"a: 1", "a: 2"}, lines)
	require.ErrorIs(t, err, ErrInvalidFormat)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, DuplicateKey, fe.Reason)
	assert.Equal(t, 1, fe.Line)
	assert.Contains(t, buf.String(), "invalid document")
}

func TestReaderIOErrors(t *testing.T) {
	t.Run("create fails", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

		_, err := NewReader("app.bml", WithFs(fs))
		require.Error(t, err)
		assert.Equal(t, syscall.EPERM, errors.Cause(err))
		assert.NotErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("read fails", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		r, err := NewReader("app.bml", WithFs(fs))
		require.NoError(t, err)
		require.NoError(t, fs.Remove("app.bml"))

		_, _, err = r.Read()
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.NotErrorIs(t, err, ErrInvalidFormat)
		assert.Contains(t, err.Error(), "reading app.bml")
	})
}
