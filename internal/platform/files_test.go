package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
}

func TestFindFileWithFallback_ExistingFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, ChartImageFileName)
	touch(t, path)

	foundPath, err := FindFileWithFallback(path)
	if err != nil {
		t.Fatalf("Failed to find existing file: %v", err)
	}
	if foundPath != path {
		t.Errorf("Expected path %s, got %s", path, foundPath)
	}
}

func TestFindFileWithFallback_SimilarFileName(t *testing.T) {
	tests := []struct {
		onDisk string
		wanted string
	}{
		{"72Names.JPG", "72names.jpg"},
		{"-72names.jpg", "72names.jpg"},
		{"72names_.jpg", "72names.jpg"},
		{"Name1.mp3", "name1.mp3"},
	}

	for _, tt := range tests {
		t.Run(tt.onDisk, func(t *testing.T) {
			tempDir := t.TempDir()
			similarPath := filepath.Join(tempDir, tt.onDisk)
			touch(t, similarPath)

			foundPath, err := FindFileWithFallback(filepath.Join(tempDir, tt.wanted))
			if err != nil {
				t.Fatalf("Failed to find similar file: %v", err)
			}
			if foundPath != similarPath {
				t.Errorf("Expected path %s, got %s", similarPath, foundPath)
			}
		})
	}
}

func TestFindFileWithFallback_NoSimilarFile(t *testing.T) {
	tempDir := t.TempDir()
	touch(t, filepath.Join(tempDir, "name10.mp3"))

	originalPath := filepath.Join(tempDir, "name1.mp3")
	_, err := FindFileWithFallback(originalPath)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	expectedError := "file not found: " + originalPath
	if err.Error() != expectedError {
		t.Errorf("Expected error message %s, got %v", expectedError, err)
	}
}

func TestFindFileWithFallback_EmptyPath(t *testing.T) {
	if _, err := FindFileWithFallback(""); err == nil {
		t.Error("Expected error for empty path, got nil")
	}
}

func TestFindFileWithFallback_MissingDirectory(t *testing.T) {
	_, err := FindFileWithFallback(filepath.Join(t.TempDir(), "missing", "file.csv"))
	if err == nil || !strings.Contains(err.Error(), "failed to read directory") {
		t.Errorf("Expected directory read error, got %v", err)
	}
}

func TestIsSimilarFileName(t *testing.T) {
	tests := []struct {
		candidate, wanted string
		expected          bool
	}{
		{"name1.mp3", "name1.mp3", true},
		{"NAME1.MP3", "name1.mp3", true},
		{"-name1.mp3", "name1.mp3", true},
		{"name1-.mp3", "name1.mp3", true},
		{" name1.mp3", "name1.mp3", true},
		{"name1.wav", "name1.mp3", false},
		{"name10.mp3", "name1.mp3", false},
		{"other.mp3", "name1.mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.candidate+"_"+tt.wanted, func(t *testing.T) {
			result := isSimilarFileName(tt.candidate, tt.wanted)
			if result != tt.expected {
				t.Errorf("isSimilarFileName(%q, %q) = %v, expected %v",
					tt.candidate, tt.wanted, result, tt.expected)
			}
		})
	}
}

func TestFindResourceDir_PrefersDirectoryWithMarker(t *testing.T) {
	configured := t.TempDir()
	touch(t, filepath.Join(configured, "72_names_kabbalah.csv"))

	dir, err := FindResourceDir(configured, "72_names_kabbalah.csv")
	if err != nil {
		t.Fatalf("FindResourceDir failed: %v", err)
	}
	if dir != configured {
		t.Errorf("Expected %s, got %s", configured, dir)
	}
}

func TestFindResourceDir_FallsBackToExistingDirectory(t *testing.T) {
	configured := t.TempDir()

	dir, err := FindResourceDir(configured, "missing-marker.csv")
	if err != nil {
		t.Fatalf("FindResourceDir failed: %v", err)
	}
	if dir != configured {
		t.Errorf("Expected %s, got %s", configured, dir)
	}
}

func TestResourceDirCandidates(t *testing.T) {
	candidates := ResourceDirCandidates("/opt/names72")
	if len(candidates) == 0 || candidates[0] != "/opt/names72" {
		t.Fatalf("Configured directory should come first, got %v", candidates)
	}
	for _, dir := range candidates[1:] {
		if filepath.Base(dir) != ResourcesDirName {
			t.Errorf("Expected fallback to end with %q, got %s", ResourcesDirName, dir)
		}
	}

	if got := ResourceDirCandidates(""); len(got) != len(candidates)-1 {
		t.Errorf("Empty configured directory should be skipped, got %v", got)
	}
}

func TestDefaultConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := DefaultConfigFile()
	if err != nil {
		t.Fatalf("DefaultConfigFile failed: %v", err)
	}
	if filepath.Base(path) != ConfigFileName {
		t.Errorf("Expected file name %s, got %s", ConfigFileName, path)
	}
	if filepath.Base(filepath.Dir(path)) != AppDirName {
		t.Errorf("Expected parent directory %s, got %s", AppDirName, path)
	}
}
