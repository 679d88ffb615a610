package pipeline

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/venkatsunilm/photo-post-processing/pkg/preset"
)

// isImageFile reports whether path looks like a processable input: JPEG,
// RAW, or PNG.
func isImageFile(path string) bool {
	switch preset.DetectFormat(path) {
	case preset.FormatJPEG, preset.FormatRAW:
		return true
	}
	return strings.EqualFold(filepath.Ext(path), ".png")
}

// CollectImages walks dir (including subdirectories) and returns the paths
// of all image files, in walk order.
func CollectImages(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isImageFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return files, nil
}

// ExtractZipIfNeeded prepares the working folder for input. A .zip input is
// extracted into a fresh temp directory (image entries only) and the second
// return value tells the caller to clean it up afterwards; anything else is
// used in place.
func ExtractZipIfNeeded(input string) (string, bool, error) {
	if !strings.EqualFold(filepath.Ext(input), ".zip") {
		return input, false, nil
	}
	r, err := zip.OpenReader(input)
	if err != nil {
		return "", false, fmt.Errorf("open zip %s: %w", input, err)
	}
	defer r.Close()

	tempDir, err := os.MkdirTemp("", "photo_processing_")
	if err != nil {
		return "", false, err
	}
	extracted := 0
	for _, f := range r.File {
		if f.FileInfo().IsDir() || !isImageFile(f.Name) {
			continue
		}
		if err := extractZipEntry(f, tempDir); err != nil {
			os.RemoveAll(tempDir)
			return "", false, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		extracted++
	}
	if extracted == 0 {
		os.RemoveAll(tempDir)
		return "", false, fmt.Errorf("zip %s contains no image files", input)
	}
	return tempDir, true, nil
}

func extractZipEntry(f *zip.File, destDir string) error {
	// reject entries that would escape the destination
	dest := filepath.Join(destDir, filepath.Clean(f.Name))
	if !strings.HasPrefix(dest, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return fmt.Errorf("illegal path %q", f.Name)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()
	_, err = io.Copy(out, rc)
	return err
}

// OutputRoot creates (if needed) and returns the dated project folder under
// baseDir that this batch writes into.
func OutputRoot(baseDir string) (string, error) {
	project := filepath.Join(baseDir, time.Now().Format("2006-01-02"))
	if err := os.MkdirAll(project, 0o755); err != nil {
		return "", fmt.Errorf("create output structure: %w", err)
	}
	return project, nil
}

// CreateZipArchive packages the flat contents of folder into
// <projectDir>/processed_photos_<label>.zip and returns the archive path.
func CreateZipArchive(folder, projectDir, label string) (string, error) {
	zipName := fmt.Sprintf("processed_photos_%s.zip", label)
	zipPath := filepath.Join(projectDir, zipName)

	zf, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer zf.Close()

	zw := zip.NewWriter(zf)
	defer zw.Close()

	entries, err := os.ReadDir(folder)
	if err != nil {
		return "", err
	}
	prefix := fmt.Sprintf("processed_photos_%s", label)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src := filepath.Join(folder, e.Name())
		w, err := zw.Create(filepath.ToSlash(filepath.Join(prefix, e.Name())))
		if err != nil {
			return "", err
		}
		f, err := os.Open(src)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(w, f); err != nil {
			f.Close()
			return "", err
		}
		f.Close()
	}
	return zipPath, nil
}

// destWritable probes whether dir accepts new files. Used to distinguish a
// per-file write failure from a dead destination, which aborts the batch.
func destWritable(dir string) bool {
	probe, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}
