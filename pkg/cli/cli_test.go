package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/univc/univc/pkg/cli"
)

// TestGolden runs every testdata archive through RunFiles and compares
// the report against the archive's stdout section. Source files are
// extracted to a temp dir, so the dir prefix is stripped before
// comparing.
func TestGolden(t *testing.T) {
	archives, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	require.NoError(t, err)
	require.NotEmpty(t, archives)

	for _, arcPath := range archives {
		t.Run(strings.TrimSuffix(filepath.Base(arcPath), ".txt"), func(t *testing.T) {
			arc, err := txtar.ParseFile(arcPath)
			require.NoError(t, err)

			dir := t.TempDir()
			var inputs []string
			var want string
			for _, f := range arc.Files {
				if f.Name == "stdout" {
					want = string(f.Data)
					continue
				}
				path := filepath.Join(dir, f.Name)
				require.NoError(t, os.WriteFile(path, f.Data, 0o644))
				if strings.HasSuffix(f.Name, ".tpp") {
					inputs = append(inputs, path)
				}
			}

			var buf bytes.Buffer
			total, err := cli.RunFiles(inputs, cli.Options{Color: "never", Out: &buf})
			require.NoError(t, err)

			got := strings.ReplaceAll(buf.String(), dir+string(os.PathSeparator), "")
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("output mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, strings.Count(want, "error:"), total)
		})
	}
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCheckOnlyStopsBeforeResolution(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "m.tpp", `
template <typename T> struct box { using type = T; };
using r = box<3>;
`)

	var buf bytes.Buffer
	total, err := cli.RunFiles([]string{path}, cli.Options{CheckOnly: true, Color: "never", Out: &buf})
	require.NoError(t, err)

	// The kind mismatch is a resolution-time error; check mode never
	// reaches it.
	assert.Zero(t, total)
	assert.Empty(t, buf.String())
}

func TestCheckOnlyStillValidatesEagerly(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "m.tpp",
		`template <template auto X> struct s { using type = X; };`)

	var buf bytes.Buffer
	total, err := cli.RunFiles([]string{path}, cli.Options{CheckOnly: true, Color: "never", Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Contains(t, buf.String(), "[V001]")
}

func TestCacheFlagPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "m.tpp", `
template <typename T> struct box { using type = T; };
using r = box<int>;
`)
	cachePath := filepath.Join(dir, "cache.db")

	var first bytes.Buffer
	_, err := cli.RunFiles([]string{path}, cli.Options{CachePath: cachePath, Color: "never", Out: &first})
	require.NoError(t, err)
	assert.Contains(t, first.String(), "resolved r")

	var second bytes.Buffer
	_, err = cli.RunFiles([]string{path}, cli.Options{CachePath: cachePath, Color: "never", Out: &second})
	require.NoError(t, err)
	assert.Contains(t, second.String(), "cached r")
}

func TestFlagOverridesSettingsFile(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "univc.yaml", "checking: late\n")
	path := writeSource(t, dir, "m.tpp",
		`template <template auto X> struct s { using type = X; };`)

	// The settings file says late, so the uninstantiated misuse passes.
	var buf bytes.Buffer
	total, err := cli.RunFiles([]string{path}, cli.Options{Color: "never", Out: &buf})
	require.NoError(t, err)
	assert.Zero(t, total)

	// An explicit eager flag wins over the file.
	total, err = cli.RunFiles([]string{path}, cli.Options{Checking: "eager", Color: "never", Out: &buf})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestInvalidOverrideRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "m.tpp", `using t = int;`)

	_, err := cli.RunFiles([]string{path}, cli.Options{Checking: "lazy"})
	assert.Error(t, err)
}

func TestSourceFiles(t *testing.T) {
	got := cli.SourceFiles([]string{
		"a.tpp", "b.go", "c.tmpl.cpp", "README.md", "d.tpp",
	})
	assert.Equal(t, []string{"a.tpp", "c.tmpl.cpp", "d.tpp"}, got)
}
