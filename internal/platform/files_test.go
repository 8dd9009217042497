package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestNormalizePath(t *testing.T) {
	tempDir := t.TempDir()

	normalized := NormalizePath(filepath.Join(tempDir, "dog.gif"))
	if strings.Contains(normalized, "\\") {
		t.Errorf("Normalized path should not contain backslashes: %s", normalized)
	}
	if !filepath.IsAbs(filepath.FromSlash(normalized)) {
		t.Errorf("Normalized path should be absolute: %s", normalized)
	}

	// Same file through a messy relative spelling normalizes identically
	messy := NormalizePath(filepath.Join(tempDir, "sub", "..", "dog.gif"))
	if messy != normalized {
		t.Errorf("Expected %s, got %s", normalized, messy)
	}
}

func TestCopyFilePreservingMetadata(t *testing.T) {
	tempDir := t.TempDir()
	src := filepath.Join(tempDir, "src.gif")
	dst := filepath.Join(tempDir, "dst.gif")

	content := []byte("GIF89a-fake-content")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	// Backdate the source so metadata preservation is observable
	modTime := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	if err := os.Chtimes(src, modTime, modTime); err != nil {
		t.Fatalf("Failed to set source times: %v", err)
	}

	if err := CopyFilePreservingMetadata(src, dst); err != nil {
		t.Fatalf("Copy failed: %v", err)
	}

	copied, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("Failed to read destination: %v", err)
	}
	if string(copied) != string(content) {
		t.Errorf("Destination content mismatch: got %q", copied)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatalf("Failed to stat destination: %v", err)
	}
	if !info.ModTime().Truncate(time.Second).Equal(modTime) {
		t.Errorf("Expected mod time %v, got %v", modTime, info.ModTime())
	}
}

func TestCopyFilePreservingMetadata_MissingSource(t *testing.T) {
	tempDir := t.TempDir()

	err := CopyFilePreservingMetadata(filepath.Join(tempDir, "missing.gif"), filepath.Join(tempDir, "dst.gif"))
	if err == nil {
		t.Error("Expected error for missing source file, got nil")
	}
}

func TestUserDataDir(t *testing.T) {
	dir, err := UserDataDir("MaltesePet")
	if err != nil {
		t.Fatalf("Failed to resolve user data directory: %v", err)
	}
	if dir == "" {
		t.Fatal("User data directory is empty")
	}
	if !strings.Contains(strings.ToLower(dir), "maltesepet") {
		t.Errorf("Expected directory to contain app name, got: %s", dir)
	}
}

func TestOpenFolder_NonExistent(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Error("Expected error for non-existent directory, got nil")
	}
}
