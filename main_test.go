package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossyrian/a3cfg/internal/config"
	"github.com/ossyrian/a3cfg/internal/configfile"
	"github.com/ossyrian/a3cfg/internal/content"
	"github.com/ossyrian/a3cfg/internal/mission"
)

const (
	serverPath    = "/srv/arma3/server.cfg"
	selectionPath = "/srv/arma3/selection.toml"
	gameDir       = "/srv/arma3"
)

const serverText = `hostname = "Tactical Ops";
missionWhitelist[] = {"dm_01.Stratis"};

class Missions
{
	class Mission_1
	{
		template = "co10_Escape.Altis";
		difficulty = "veteran";
	};
};
`

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	files := map[string]string{
		serverPath: serverText,
		filepath.Join(gameDir, content.MissionsDir, "co10_Escape.Altis.pbo"): "pbo",
		filepath.Join(gameDir, content.MissionsDir, "dm_01.Stratis.pbo"):     "pbo",
	}
	for name, data := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(data), 0o644))
	}
	return fs
}

func writeSelection(t *testing.T, fs afero.Fs, missions ...mission.Mission) {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, mission.WriteSelection(&buf, missions))
	require.NoError(t, afero.WriteFile(fs, selectionPath, buf.Bytes(), 0o644))
}

func readServer(t *testing.T, fs afero.Fs) string {
	t.Helper()

	data, err := afero.ReadFile(fs, serverPath)
	require.NoError(t, err)
	return string(data)
}

func TestListMissions(t *testing.T) {
	fs := newTestFs(t)
	var out bytes.Buffer

	err := listMissions(fs, &out, &config.Config{ServerConfig: serverPath, GameDir: gameDir})
	require.NoError(t, err)

	got, err := mission.ReadSelection(&out)
	require.NoError(t, err)
	assert.Equal(t, []mission.Mission{
		{Name: "co10_Escape.Altis", Difficulty: mission.Veteran, Selected: true},
		{Name: "dm_01.Stratis", Whitelisted: true},
	}, got)
}

func TestListMissions_CarriesSelection(t *testing.T) {
	fs := newTestFs(t)
	writeSelection(t, fs,
		mission.Mission{Name: "dm_01.Stratis", Difficulty: mission.Custom, Selected: true},
		mission.Mission{Name: "gone.Altis", Selected: true},
	)

	err := listMissions(fs, nil, &config.Config{
		ServerConfig: serverPath,
		GameDir:      gameDir,
		Selection:    selectionPath,
		Output:       "/tmp/out.toml",
	})
	require.NoError(t, err)

	f, err := fs.Open("/tmp/out.toml")
	require.NoError(t, err)
	defer f.Close()

	got, err := mission.ReadSelection(f)
	require.NoError(t, err)
	assert.Equal(t, []mission.Mission{
		{Name: "co10_Escape.Altis", Difficulty: mission.Veteran, Selected: true},
		{Name: "dm_01.Stratis", Difficulty: mission.Custom, Selected: true},
	}, got)
}

func TestSaveMissions(t *testing.T) {
	tests := []struct {
		name      string
		append    bool
		wantBlock int
	}{
		{name: "replace", append: false, wantBlock: 1},
		{name: "append", append: true, wantBlock: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFs(t)
			writeSelection(t, fs,
				mission.Mission{Name: "dm_01.Stratis", Difficulty: mission.Regular, Selected: true, Whitelisted: true},
			)

			err := saveMissions(fs, nil, &config.Config{
				ServerConfig: serverPath,
				Selection:    selectionPath,
				Append:       tt.append,
			})
			require.NoError(t, err)

			text := readServer(t, fs)
			assert.Equal(t, tt.wantBlock, strings.Count(text, "class Missions"))
			assert.Equal(t, 1, strings.Count(text, mission.WhitelistTag))
			assert.Contains(t, text, "hostname = \"Tactical Ops\";")
			assert.Contains(t, text, "\t\ttemplate = \"dm_01.Stratis\";\n\t\tdifficulty = \"regular\";\n")

			backup, err := afero.ReadFile(fs, serverPath+configfile.BackupSuffix)
			require.NoError(t, err)
			assert.Equal(t, serverText, string(backup))
		})
	}
}

func TestSaveMissions_DryRun(t *testing.T) {
	fs := newTestFs(t)
	writeSelection(t, fs, mission.Mission{Name: "dm_01.Stratis", Selected: true})
	var out bytes.Buffer

	err := saveMissions(fs, &out, &config.Config{
		ServerConfig: serverPath,
		Selection:    selectionPath,
		DryRun:       true,
	})
	require.NoError(t, err)

	assert.Equal(t, serverText, readServer(t, fs), "dry run leaves the file alone")
	assert.Contains(t, out.String(), "template = \"dm_01.Stratis\";")
	assert.Contains(t, out.String(), "difficulty = \"recruit\";")
}

func TestSaveMissions_SkipsUninstalled(t *testing.T) {
	fs := newTestFs(t)
	writeSelection(t, fs,
		mission.Mission{Name: "gone.Altis", Difficulty: mission.Veteran, Selected: true},
		mission.Mission{Name: "co10_Escape.Altis", Difficulty: mission.Regular, Selected: true},
	)

	err := saveMissions(fs, nil, &config.Config{
		ServerConfig: serverPath,
		Selection:    selectionPath,
		GameDir:      gameDir,
	})
	require.NoError(t, err)

	text := readServer(t, fs)
	assert.NotContains(t, text, "gone.Altis")
	assert.Contains(t, text, "\tclass Mission_1\n\t{\n\t\ttemplate = \"co10_Escape.Altis\";\n\t\tdifficulty = \"regular\";\n")
}

func TestCommands_MissingPaths(t *testing.T) {
	fs := afero.NewMemMapFs()

	assert.ErrorIs(t, listMissions(fs, nil, &config.Config{}), errNoServerConfig)
	assert.ErrorIs(t, saveMissions(fs, nil, &config.Config{}), errNoServerConfig)
	assert.ErrorIs(t, saveMissions(fs, nil, &config.Config{ServerConfig: serverPath}), errNoSelection)
	assert.ErrorContains(t, render(fs, nil, &config.Config{}, "profile"), "--profile")
	assert.ErrorContains(t, render(fs, nil, &config.Config{}, "mission"), "unknown file kind")
}

func TestRender(t *testing.T) {
	fs := newTestFs(t)
	require.NoError(t, afero.WriteFile(fs, "/srv/arma3/server.Arma3Profile", []byte(`difficulty="Custom";
class DifficultyPresets
{
	class CustomDifficulty
	{
		class Options
		{
			thirdPersonView=0;
		};
	};
};
`), 0o644))

	tests := []struct {
		kind string
		want []string
	}{
		{
			kind: "server",
			want: []string{
				"hostname = \"Tactical Ops\";\n",
				"missionWhitelist[] = {\n\t\"dm_01.Stratis\"\n};\n",
				"headlessClients[] = {\n\t\"127.0.0.1\"\n};\n",
			},
		},
		{
			kind: "profile",
			want: []string{
				"difficulty = \"custom\";\n",
				"\t\t\tthirdPersonView = 0;\n",
				"\t\taiLevelPreset = 2;\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			var out bytes.Buffer
			cfg := &config.Config{ServerConfig: serverPath, Profile: "/srv/arma3/server.Arma3Profile"}

			require.NoError(t, render(fs, &out, cfg, tt.kind))
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
			assert.NotContains(t, out.String(), "class Missions")
		})
	}
}

func TestSaveMissions_EmptyRotationLeavesFile(t *testing.T) {
	tests := []struct {
		name     string
		missions []mission.Mission
		gameDir  string
	}{
		{name: "empty selection"},
		{
			name:     "nothing selected after scan",
			missions: []mission.Mission{{Name: "co10_Escape.Altis", Difficulty: mission.Veteran}},
			gameDir:  gameDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newTestFs(t)
			writeSelection(t, fs, tt.missions...)

			err := saveMissions(fs, nil, &config.Config{
				ServerConfig: serverPath,
				Selection:    selectionPath,
				GameDir:      tt.gameDir,
			})
			require.NoError(t, err)

			assert.Equal(t, serverText, readServer(t, fs))

			exists, err := afero.Exists(fs, serverPath+configfile.BackupSuffix)
			require.NoError(t, err)
			assert.False(t, exists, "nothing was written")
		})
	}
}

func TestSaveMissions_NoInstalledMissions(t *testing.T) {
	fs := newTestFs(t)
	writeSelection(t, fs, mission.Mission{Name: "co10_Escape.Altis", Difficulty: mission.Veteran, Selected: true})

	err := saveMissions(fs, nil, &config.Config{
		ServerConfig: serverPath,
		Selection:    selectionPath,
		GameDir:      "/srv/typo",
	})

	require.ErrorIs(t, err, errNoInstalledMissions)
	assert.Contains(t, err.Error(), filepath.Join("/srv/typo", content.MissionsDir))
	assert.Equal(t, serverText, readServer(t, fs))
}

func TestSaveMissions_RepeatedSaveIsStable(t *testing.T) {
	fs := newTestFs(t)
	writeSelection(t, fs,
		mission.Mission{Name: "dm_01.Stratis", Difficulty: mission.Regular, Selected: true, Whitelisted: true},
	)
	cfg := &config.Config{ServerConfig: serverPath, Selection: selectionPath}

	require.NoError(t, saveMissions(fs, nil, cfg))
	first := readServer(t, fs)

	assert.Equal(t, "hostname = \"Tactical Ops\";\n"+
		"\nmissionWhitelist[] = {\n\t\"dm_01.Stratis\"\n};"+
		"\nclass Missions\n{\n"+
		"\tclass Mission_1\n\t{\n\t\ttemplate = \"dm_01.Stratis\";\n\t\tdifficulty = \"regular\";\n\t};\n"+
		"};\n", first)

	for i := 0; i < 3; i++ {
		require.NoError(t, saveMissions(fs, nil, cfg))
	}
	assert.Equal(t, first, readServer(t, fs))
}

func TestListMissions_ArrayBraceOnNextLine(t *testing.T) {
	fs := newTestFs(t)
	text := "hostname = \"Tactical Ops\";\nmotd[] =\n{\n\t\"Welcome\"\n};\n" + serverText
	require.NoError(t, afero.WriteFile(fs, serverPath, []byte(text), 0o644))
	var out bytes.Buffer

	err := listMissions(fs, &out, &config.Config{ServerConfig: serverPath, GameDir: gameDir})
	require.NoError(t, err)

	got, err := mission.ReadSelection(&out)
	require.NoError(t, err)
	assert.Equal(t, []mission.Mission{
		{Name: "co10_Escape.Altis", Difficulty: mission.Veteran, Selected: true},
		{Name: "dm_01.Stratis", Whitelisted: true},
	}, got)
}
