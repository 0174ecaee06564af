package channel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRowDefensiveIndexing(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want Record
	}{
		{"full row", []string{"1", "News", "http://x.com", "cat", "grp", "desc"},
			Record{ID: "1", Name: "News", URL: "http://x.com", Category: "cat", Group: "grp", Description: "desc"}},
		{"minimal row", []string{"1", "News", "http://x.com"},
			Record{ID: "1", Name: "News", URL: "http://x.com"}},
		{"short row", []string{"1", "News"},
			Record{ID: "1", Name: "News"}},
		{"single column", []string{"1"}, Record{ID: "1"}},
		{"empty", nil, Record{}},
		{"extra columns ignored", []string{"1", "News", "u", "c", "g", "d", "extra"},
			Record{ID: "1", Name: "News", URL: "u", Category: "c", Group: "g", Description: "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromRow(tt.row))
		})
	}
}

func TestReadRowsFrom(t *testing.T) {
	in := "\uFEFFid,name,url\n" +
		"1,\"Canal, HD\",http://x.com\n" +
		"2,News\n"

	rows, err := ReadRowsFrom(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id", "name", "url"}, rows[0])
	assert.Equal(t, []string{"1", "Canal, HD", "http://x.com"}, rows[1])
	assert.Equal(t, []string{"2", "News"}, rows[2])
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	rows := [][]string{
		{"id", "name", "url"},
		{"1", "Canal, HD", "http://x.com"},
		{"2", "News", ""},
	}

	require.NoError(t, WriteRows(path, rows))

	got, err := ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestLooksLikeHeader(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		want bool
	}{
		{"plain header", []string{"id", "name", "url"}, true},
		{"spaced mixed case", []string{" ID ", "Name", "URL", "Category"}, true},
		{"data row", []string{"1", "News", "http://x.com"}, false},
		{"one known word", []string{"name", "Noticias 24", "stream-7"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeHeader(tt.row))
		})
	}
}
