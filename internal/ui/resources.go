package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DefaultAnimationName is the file name of the seeded fallback animation.
const DefaultAnimationName = "default_dog.gif"

// Icon lookup order within the icons directory; jpg first, matching the
// original asset set.
var iconExtensions = []string{".jpg", ".png", ".ico", ".gif"}

// Placeholder drawing constants
const (
	placeholderIconSize = 16
	defaultGifSize      = 150
	defaultGifFrames    = 10
	defaultGifFrameTime = 10 // hundredths of a second per frame
)

// Dog colors shared by the placeholder icon and the seeded animation.
var (
	dogHeadColor = color.NRGBA{R: 245, G: 208, B: 169, A: 255}
	dogInkColor  = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

// ResolveTrayIcon resolves the tray icon with multi-tier fallback:
// an explicitly configured path, then the first image found in iconsDir,
// then a generated placeholder.
func ResolveTrayIcon(configuredPath, iconsDir string) fyne.Resource {
	if configuredPath != "" {
		if _, err := os.Stat(configuredPath); err == nil {
			res, err := fyne.LoadResourceFromPath(configuredPath)
			if err == nil {
				log.Printf("Loaded configured tray icon: %s", configuredPath)
				return res
			}
			log.Printf("Failed to load configured tray icon %s: %v", configuredPath, err)
		}
	}

	for _, ext := range iconExtensions {
		matches, err := filepath.Glob(filepath.Join(iconsDir, "*"+ext))
		if err != nil || len(matches) == 0 {
			continue
		}
		res, err := fyne.LoadResourceFromPath(matches[0])
		if err != nil {
			log.Printf("Failed to load tray icon %s: %v", matches[0], err)
			continue
		}
		log.Printf("Loaded tray icon: %s", matches[0])
		return res
	}

	log.Printf("No tray icon found, using generated placeholder")
	return placeholderIconResource()
}

// placeholderIconResource draws a tiny dog face and wraps it as a static
// resource.
func placeholderIconResource() fyne.Resource {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderIconSize, placeholderIconSize))
	drawDogFace(img, placeholderIconSize, 0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		// Unreachable in practice; keep the tray alive regardless
		log.Printf("Failed to encode placeholder icon: %v", err)
		return theme.ComputerIcon()
	}
	return fyne.NewStaticResource("maltese-pet.png", buf.Bytes())
}

// WriteDefaultAnimation generates the fallback blink animation and writes
// it to path, so the pet always has something to play on first run.
func WriteDefaultAnimation(path string) error {
	anim := gif.GIF{LoopCount: 0}
	palette := color.Palette{
		color.NRGBA{0, 0, 0, 0},
		dogHeadColor,
		dogInkColor,
	}

	for i := 0; i < defaultGifFrames; i++ {
		frame := image.NewPaletted(image.Rect(0, 0, defaultGifSize, defaultGifSize), palette)
		drawDogFace(frame, defaultGifSize, i%5-2)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, defaultGifFrameTime)
		anim.Disposal = append(anim.Disposal, gif.DisposalBackground)
	}

	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, &anim); err != nil {
		return fmt.Errorf("failed to encode default animation: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write default animation: %w", err)
	}
	log.Printf("Seeded default animation: %s", path)
	return nil
}

// setter is the subset of draw targets both image kinds satisfy.
type setter interface {
	Set(x, y int, c color.Color)
	Bounds() image.Rectangle
}

// drawDogFace paints a round dog head with eyes and a mouth. eyeShift
// nudges the eyes vertically so successive frames look like a blink.
func drawDogFace(img setter, size, eyeShift int) {
	center := size / 2
	radius := size * 2 / 5

	fillCircle(img, center, center, radius, dogHeadColor)

	eyeSize := size * 6 / 100
	if eyeSize < 1 {
		eyeSize = 1
	}
	eyeY := center - size*5/100 + eyeShift
	fillCircle(img, center-size*15/100, eyeY, eyeSize, dogInkColor)
	fillCircle(img, center+size*15/100, eyeY, eyeSize, dogInkColor)

	mouthY := center + size*15/100
	for x := center - size/10; x <= center+size/10; x++ {
		img.Set(x, mouthY, dogInkColor)
	}
}

// fillCircle paints a filled circle clipped to the image bounds.
func fillCircle(img setter, cx, cy, r int, c color.Color) {
	bounds := img.Bounds()
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
				continue
			}
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, c)
			}
		}
	}
}
