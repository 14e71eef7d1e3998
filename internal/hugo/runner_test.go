package hugo

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHugo writes an executable shell script standing in for the binary.
func fakeHugo(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake hugo scripts need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "hugo")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755))
	return path
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "plain",
			output: "hugo v0.148.2-e6d2712ee064321ecf3e0c2f6358d99f65efee9e linux/amd64 BuildDate=2025-07-27T13:58:29Z",
			want:   "0.148.2",
		},
		{
			name:   "extended",
			output: "hugo v0.148.2-e6d2712ee064321ecf3e0c2f6358d99f65efee9e+extended linux/amd64",
			want:   "0.148.2.extended",
		},
		{
			name:   "extended deploy",
			output: "hugo v0.148.2+extended+withdeploy linux/amd64",
			want:   "0.148.2.extended.deploy",
		},
		{
			name:    "garbage",
			output:  "not hugo output",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVersion(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVersionLess(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"0.127.0", "0.128.0", true},
		{"0.128.0", "0.128.0", false},
		{"0.148.2", "0.128.0", false},
		{"0.148.2.extended", "0.128.0", false},
		{"1.0.0", "0.999.0", false},
	}

	for _, tt := range tests {
		got, err := versionLess(tt.a, tt.b)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s < %s", tt.a, tt.b)
	}
}

func TestVersionLessMalformed(t *testing.T) {
	_, err := versionLess("nonsense", MinVersion)
	require.Error(t, err)
}

func TestNewRejectsMissingBinary(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "hugo"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVersionFromFakeBinary(t *testing.T) {
	path := fakeHugo(t, `echo "hugo v0.148.2-abcdef+extended linux/amd64 BuildDate=2025-07-27T13:58:29Z"`)
	r, err := New(path, 0)
	require.NoError(t, err)

	version, err := r.Version()
	require.NoError(t, err)
	assert.Equal(t, "0.148.2.extended", version)

	warning, err := r.CheckVersion()
	require.NoError(t, err)
	assert.Empty(t, warning)
}

func TestCheckVersionWarnsOnOldBinary(t *testing.T) {
	path := fakeHugo(t, `echo "hugo v0.92.0 linux/amd64"`)
	r, err := New(path, 0)
	require.NoError(t, err)

	warning, err := r.CheckVersion()
	require.NoError(t, err)
	assert.Contains(t, warning, "0.92.0")
	assert.Contains(t, warning, MinVersion)
}

func TestRunReportsStderrOnFailure(t *testing.T) {
	path := fakeHugo(t, `echo "Error: something broke" >&2; exit 1`)
	r, err := New(path, 0)
	require.NoError(t, err)

	_, err = r.Version()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "something broke")
	assert.Contains(t, err.Error(), path)
}

func TestRunTimesOut(t *testing.T) {
	path := fakeHugo(t, `sleep 5`)
	r, err := New(path, 100*time.Millisecond)
	require.NoError(t, err)

	_, err = r.Version()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestNewSiteWritesConfig(t *testing.T) {
	// The fake scaffolds the directory the way `hugo new site` would.
	path := fakeHugo(t, `mkdir -p "$3"`)
	r, err := New(path, 0)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "blog")
	require.NoError(t, r.NewSite(dir, []byte("baseURL = \"https://example.com/\"\n")))

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "baseURL")
}

func TestForSiteScopesCommands(t *testing.T) {
	path := fakeHugo(t, `echo "$@"`)
	r, err := New(path, 0)
	require.NoError(t, err)

	siteDir := t.TempDir()
	scoped, err := r.ForSite(siteDir)
	require.NoError(t, err)

	out, err := scoped.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "-s "+siteDir)

	_, err = r.ForSite(filepath.Join(siteDir, "absent"))
	require.Error(t, err)
}

func TestBuildRequiresSiteScope(t *testing.T) {
	path := fakeHugo(t, `exit 0`)
	r, err := New(path, 0)
	require.NoError(t, err)

	require.Error(t, r.Build())

	scoped, err := r.ForSite(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, scoped.Build())
}
