package content_test

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/a3cfg/internal/content"
	"github.com/ossyrian/a3cfg/internal/mission"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStore_GetAll(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := filepath.Join("/srv/arma3", content.MissionsDir)

	files := map[string]string{
		"co10_Escape.Altis.pbo":         "pbo",
		"MP_Warlords.Tanoa.PBO":         "pbo",
		"readme.txt":                    "text",
		"dm_01.Stratis/mission.sqm":     "version=54;",
		"dm_01.Stratis/description.ext": "",
		"not_a_mission/description.ext": "",
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, name), []byte(data), 0o644))
	}

	got := content.NewStore(fs, discardLogger()).GetAll("/srv/arma3")

	assert.Equal(t, []mission.Mission{
		{Name: "MP_Warlords.Tanoa"},
		{Name: "co10_Escape.Altis"},
		{Name: "dm_01.Stratis"},
	}, got)
}

func TestStore_GetAllMissingFolder(t *testing.T) {
	tests := []struct {
		name string
		root string
	}{
		{name: "missing root", root: "/does/not/exist"},
		{name: "blank root", root: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := content.NewStore(afero.NewMemMapFs(), discardLogger()).GetAll(tt.root)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestStore_ImplementsDiscoverer(t *testing.T) {
	var _ mission.Discoverer = content.NewStore(afero.NewMemMapFs(), nil)
}
