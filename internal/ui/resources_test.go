package ui

import (
	"bytes"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDefaultAnimationProducesValidGif(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultAnimationName)

	if err := WriteDefaultAnimation(path); err != nil {
		t.Fatalf("WriteDefaultAnimation() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read generated animation: %v", err)
	}

	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated animation does not decode: %v", err)
	}
	if len(anim.Image) != defaultGifFrames {
		t.Errorf("frame count = %d, want %d", len(anim.Image), defaultGifFrames)
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (infinite)", anim.LoopCount)
	}
	for i, frame := range anim.Image {
		b := frame.Bounds()
		if b.Dx() != defaultGifSize || b.Dy() != defaultGifSize {
			t.Errorf("frame %d size = %dx%d, want %dx%d", i, b.Dx(), b.Dy(), defaultGifSize, defaultGifSize)
		}
	}
}

func TestResolveTrayIconConfiguredPath(t *testing.T) {
	dir := t.TempDir()
	iconPath := filepath.Join(dir, "custom.png")
	writeTestIcon(t, iconPath)

	res := ResolveTrayIcon(iconPath, filepath.Join(dir, "no-icons"))
	if res == nil {
		t.Fatal("ResolveTrayIcon() returned nil")
	}
	if res.Name() != "custom.png" {
		t.Errorf("resource name = %q, want custom.png", res.Name())
	}
}

func TestResolveTrayIconDirectoryFallback(t *testing.T) {
	iconsDir := t.TempDir()
	writeTestIcon(t, filepath.Join(iconsDir, "tray.png"))

	res := ResolveTrayIcon("", iconsDir)
	if res == nil {
		t.Fatal("ResolveTrayIcon() returned nil")
	}
	if res.Name() != "tray.png" {
		t.Errorf("resource name = %q, want tray.png", res.Name())
	}
}

func TestResolveTrayIconPlaceholderFallback(t *testing.T) {
	res := ResolveTrayIcon("", filepath.Join(t.TempDir(), "missing"))
	if res == nil {
		t.Fatal("ResolveTrayIcon() returned nil")
	}
	if len(res.Content()) == 0 {
		t.Error("placeholder resource has no content")
	}
	if _, err := png.Decode(bytes.NewReader(res.Content())); err != nil {
		t.Errorf("placeholder is not a decodable PNG: %v", err)
	}
}

// writeTestIcon writes a tiny valid PNG to path.
func writeTestIcon(t *testing.T, path string) {
	t.Helper()
	res := placeholderIconResource()
	if err := os.WriteFile(path, res.Content(), 0644); err != nil {
		t.Fatalf("failed to write test icon: %v", err)
	}
}
