package batch

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscover_ExtensionFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/readme.md", "hello")
	writeFile(t, fs, "/work/main.c", "int main(){}")
	writeFile(t, fs, "/work/image.png", "png")
	writeFile(t, fs, "/work/script.py", "pass")

	files, err := Discover(fs, Config{Root: "/work", Extensions: []string{"md", "c"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"main.c", "readme.md"}, basenames(files))
}

func TestDiscover_SuffixMatchIsExactAndCaseSensitive(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/notes.md", "x")
	writeFile(t, fs, "/work/NOTES.MD", "x")
	writeFile(t, fs, "/work/trick.mdx", "x")
	writeFile(t, fs, "/work/md", "x") // no dot, no match

	files, err := Discover(fs, Config{Root: "/work", Extensions: []string{"md"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"notes.md"}, basenames(files))
}

func TestDiscover_AllFilesWhenNoExtensions(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/readme.md", "hello")
	writeFile(t, fs, "/work/image.png", "png")
	writeFile(t, fs, "/work/Makefile", "all:")

	files, err := Discover(fs, Config{Root: "/work"})
	require.NoError(t, err)

	assert.Len(t, files, 3)
}

func TestDiscover_ExcludedDirsPrunedAnywhere(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/keep.md", "x")
	writeFile(t, fs, "/work/node_modules/dep/readme.md", "x")
	writeFile(t, fs, "/work/sub/deeper/node_modules/other.md", "x")
	writeFile(t, fs, "/work/sub/keep2.md", "x")

	files, err := Discover(fs, Config{
		Root:        "/work",
		Extensions:  []string{"md"},
		ExcludeDirs: []string{"node_modules"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.md", "keep2.md"}, basenames(files))
}

func TestDiscover_ExclusionMatchesWholeSegmentOnly(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/venv/skip.md", "x")
	writeFile(t, fs, "/work/venv-docs/keep.md", "x")

	files, err := Discover(fs, Config{
		Root:        "/work",
		Extensions:  []string{"md"},
		ExcludeDirs: []string{"venv"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.md"}, basenames(files))
}

func TestDiscover_ExcludedNameAppliesToFilesToo(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/venv", "a plain file named like an excluded dir")
	writeFile(t, fs, "/work/keep.txt", "x")

	files, err := Discover(fs, Config{Root: "/work", ExcludeDirs: []string{"venv"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"keep.txt"}, basenames(files))
}

func TestDiscover_Sorted(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/z.md", "x")
	writeFile(t, fs, "/work/a.md", "x")
	writeFile(t, fs, "/work/sub/m.md", "x")

	files, err := Discover(fs, Config{Root: "/work", Extensions: []string{"md"}})
	require.NoError(t, err)

	for i := 1; i < len(files); i++ {
		assert.Less(t, files[i-1], files[i])
	}
}

func TestDiscover_EmptyTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0755))

	files, err := Discover(fs, Config{Root: "/work", Extensions: []string{"md"}})
	require.NoError(t, err)

	assert.Empty(t, files)
}

func TestDiscover_GitignoreOptIn(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/work/.gitignore", "*.log\nbuild/\n")
	writeFile(t, fs, "/work/app.log", "x")
	writeFile(t, fs, "/work/build/out.txt", "x")
	writeFile(t, fs, "/work/keep.txt", "x")

	// Off by default: the .gitignore has no effect.
	files, err := Discover(fs, Config{Root: "/work", Extensions: []string{"log", "txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"app.log", "out.txt", "keep.txt"}, basenames(files))

	// Opted in: ignored entries drop out.
	files, err = Discover(fs, Config{
		Root:         "/work",
		Extensions:   []string{"log", "txt"},
		UseGitignore: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, basenames(files))
}

func TestMatchesExtension(t *testing.T) {
	assert.True(t, matchesExtension("a.md", []string{"md"}))
	assert.True(t, matchesExtension("a.test.md", []string{"md"}))
	assert.False(t, matchesExtension("a.mdx", []string{"md"}))
	assert.False(t, matchesExtension("md", []string{"md"}))
	assert.True(t, matchesExtension("anything", nil))
}
