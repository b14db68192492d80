package ogpress

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShell(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		title   string
		wantErr error
	}{
		{
			name:  "single title",
			doc:   testShell,
			title: "<title>Placeholder</title>",
		},
		{
			name:  "attributes and whitespace",
			doc:   "<html><head><TITLE data-x=\"1\">\n  Site\n</TITLE></head></html>",
			title: "<TITLE data-x=\"1\">\n  Site\n</TITLE>",
		},
		{
			name:  "svg title ignored",
			doc:   `<html><head><title>Doc</title></head><body><svg><title>Icon</title></svg></body></html>`,
			title: "<title>Doc</title>",
		},
		{
			name:  "title text inside script ignored",
			doc:   `<html><head><script>document.write("<title>x</title>")</script><title>Doc</title></head></html>`,
			title: "<title>Doc</title>",
		},
		{
			name:  "title inside comment ignored",
			doc:   `<html><head><!-- <title>old</title> --><title>Doc</title></head></html>`,
			title: "<title>Doc</title>",
		},
		{
			name:    "no title",
			doc:     `<html><head></head><body></body></html>`,
			wantErr: ErrNoTitle,
		},
		{
			name:    "only svg title",
			doc:     `<html><body><svg><title>Icon</title></svg></body></html>`,
			wantErr: ErrNoTitle,
		},
		{
			name:    "two titles",
			doc:     `<html><head><title>A</title><title>B</title></head></html>`,
			wantErr: ErrMultipleTitles,
		},
		{
			name:    "unterminated",
			doc:     `<html><head><title>A`,
			wantErr: ErrNoTitle,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ParseShell([]byte(tt.doc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, string(s.Title()))
		})
	}
}

func TestShellRenderPreservesSurroundingBytes(t *testing.T) {
	doc := "<!doctype html>\r\n<html><head>\t<meta charset=utf-8><title>X</title>  <!-- keep --></head><body>é</body></html>"
	s, err := ParseShell([]byte(doc))
	require.NoError(t, err)

	out := s.Render([]byte("<title>New</title><meta name=\"a\" content=\"b\" />"))
	want := "<!doctype html>\r\n<html><head>\t<meta charset=utf-8><title>New</title><meta name=\"a\" content=\"b\" />  <!-- keep --></head><body>é</body></html>"
	assert.Equal(t, want, string(out))

	// Rendering does not alter the shell.
	assert.Equal(t, "<title>X</title>", string(s.Title()))
}

func TestLoadShellMissing(t *testing.T) {
	_, err := LoadShell(filepath.Join(t.TempDir(), "dist", "index.html"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateMissing))
	assert.Contains(t, err.Error(), "run the site build first")
}

func TestLoadShell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(testShell), 0o644))

	s, err := LoadShell(path)
	require.NoError(t, err)
	assert.Equal(t, "<title>Placeholder</title>", string(s.Title()))
}
