package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocTitle(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"pathpick.md", "pathpick"},
		{"pathpick_pick.md", "pick"},
		{"/tmp/docs/pathpick_path_normalize.md", "path normalize"},
		{"pathpick_config_set.md", "config set"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docTitle(tt.file), tt.file)
	}
}

func TestLinkHandler(t *testing.T) {
	assert.Equal(t, "/docs/reference/pathpick_pick/", linkHandler("pathpick_pick.md"))
}

func TestGenDoc(t *testing.T) {
	isolate(t)
	out := filepath.Join(t.TempDir(), "docs")

	_, err := execute(t, "gen-doc", "--dir", out)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, "pathpick_path_normalize.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "---\ntitle: \"path normalize\""), string(data[:40]))

	_, err = os.Stat(filepath.Join(out, "pathpick_pick.md"))
	assert.NoError(t, err)
}
