package pipeline

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildZip zips every file directly under srcDir and returns the archive path.
func buildZip(t *testing.T, srcDir string) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "batch.zip")
	zf, err := os.Create(zipPath)
	require.NoError(t, err)
	defer zf.Close()
	zw := zip.NewWriter(zf)
	defer zw.Close()

	entries, err := os.ReadDir(srcDir)
	require.NoError(t, err)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		w, err := zw.Create(e.Name())
		require.NoError(t, err)
		f, err := os.Open(filepath.Join(srcDir, e.Name()))
		require.NoError(t, err)
		_, err = io.Copy(w, f)
		f.Close()
		require.NoError(t, err)
	}
	return zipPath
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestCollectImagesRecursive(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "b.NEF"))
	touch(t, filepath.Join(dir, "sub", "c.png"))
	touch(t, filepath.Join(dir, "sub", "readme.txt"))
	touch(t, filepath.Join(dir, "d.tiff"))

	files, err := CollectImages(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"a.jpg", "b.NEF", "c.png"}, names)
}

func TestExtractZipIfNeededPassthrough(t *testing.T) {
	dir := t.TempDir()
	got, isTemp, err := ExtractZipIfNeeded(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
	assert.False(t, isTemp)
}

func TestExtractZipIfNeededImagesOnly(t *testing.T) {
	srcDir := t.TempDir()
	touch(t, filepath.Join(srcDir, "a.jpg"))
	touch(t, filepath.Join(srcDir, "skip.txt"))
	zipPath := buildZip(t, srcDir)

	workDir, isTemp, err := ExtractZipIfNeeded(zipPath)
	require.NoError(t, err)
	require.True(t, isTemp)
	defer os.RemoveAll(workDir)

	assert.FileExists(t, filepath.Join(workDir, "a.jpg"))
	assert.NoFileExists(t, filepath.Join(workDir, "skip.txt"))
}

func TestExtractZipIfNeededNoImages(t *testing.T) {
	srcDir := t.TempDir()
	touch(t, filepath.Join(srcDir, "only.txt"))
	zipPath := buildZip(t, srcDir)

	_, _, err := ExtractZipIfNeeded(zipPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no image files")
}

func TestOutputRootDatedFolder(t *testing.T) {
	base := t.TempDir()
	project, err := OutputRoot(base)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), filepath.Base(project))
	assert.DirExists(t, project)
}

func TestCreateZipArchive(t *testing.T) {
	projectDir := t.TempDir()
	folder := filepath.Join(projectDir, "processed_photos_4k_landscape")
	touch(t, filepath.Join(folder, "one_landscape.jpg"))
	touch(t, filepath.Join(folder, "two_landscape.jpg"))

	zipPath, err := CreateZipArchive(folder, projectDir, "4k_landscape")
	require.NoError(t, err)
	assert.Equal(t, "processed_photos_4k_landscape.zip", filepath.Base(zipPath))

	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer r.Close()
	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{
		"processed_photos_4k_landscape/one_landscape.jpg",
		"processed_photos_4k_landscape/two_landscape.jpg",
	}, names)
}

func TestDestWritable(t *testing.T) {
	assert.True(t, destWritable(t.TempDir()))
	assert.False(t, destWritable(filepath.Join(t.TempDir(), "does", "not", "exist")))
}
