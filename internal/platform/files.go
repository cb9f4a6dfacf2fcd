package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Resource locations
const (
	AppDirName         = "names72"
	ConfigFileName     = "config.yaml"
	ResourcesDirName   = "resources"
	ChartImageFileName = "72names.jpg"
)

// Common file name variations tried when the exact name is missing
var (
	FileNameVariations = []string{"-", "_", " "}
)

// IsAndroid reports whether the process runs on Android, including Fyne
// builds where GOOS is linux
func IsAndroid() bool {
	return runtime.GOOS == OSAndroid ||
		os.Getenv("ANDROID_DATA") != "" ||
		os.Getenv("ANDROID_ROOT") != "" ||
		filepath.Base(os.Args[0]) == "libdist.so" // Fyne Android apps run as libdist.so
}

// DefaultConfigFile returns the per-user configuration file path
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// ResourceDirCandidates lists the directories searched for bundled resources,
// most specific first: the configured directory, a resources directory next
// to the executable and one in the working directory.
func ResourceDirCandidates(configured string) []string {
	var dirs []string
	if configured != "" {
		dirs = append(dirs, configured)
	}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), ResourcesDirName))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(wd, ResourcesDirName))
	}
	return dirs
}

// FindResourceDir returns the first candidate directory that contains marker.
// When none does, the first existing directory is returned so partial
// resource sets still load.
func FindResourceDir(configured, marker string) (string, error) {
	candidates := ResourceDirCandidates(configured)

	for _, dir := range candidates {
		if _, err := FindFileWithFallback(filepath.Join(dir, marker)); err == nil {
			return dir, nil
		}
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no resource directory found (tried %s)", strings.Join(candidates, ", "))
}

// FindFileWithFallback tries to find a file by its path, and if not found,
// looks for a file in the same directory whose name differs only in case or
// by a leading or trailing separator
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		return filePath, nil
	}

	dir := filepath.Dir(filePath)
	originalName := filepath.Base(filePath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if isSimilarFileName(entry.Name(), originalName) {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("file not found: %s", filePath)
}

// isSimilarFileName checks if two file names are close enough to be
// considered the same resource
func isSimilarFileName(candidate, wanted string) bool {
	if strings.EqualFold(candidate, wanted) {
		return true
	}

	ext := filepath.Ext(wanted)
	if !strings.EqualFold(filepath.Ext(candidate), ext) {
		return false
	}
	base := strings.TrimSuffix(candidate, filepath.Ext(candidate))
	wantedBase := strings.TrimSuffix(wanted, ext)

	for _, sep := range FileNameVariations {
		trimmed := strings.TrimSuffix(strings.TrimPrefix(base, sep), sep)
		if strings.EqualFold(trimmed, wantedBase) {
			return true
		}
	}
	return false
}
