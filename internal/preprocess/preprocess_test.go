package preprocess

import (
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
)

func writeNoisePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func writeFlatJPEG(t *testing.T, path string, w, h, quality int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 200, 200, 200, 255
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
}

func TestAssessQualityHigh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	writeNoisePNG(t, path, 2000, 1500)

	m, err := AssessQuality(path)
	if err != nil {
		t.Fatalf("AssessQuality() error = %v", err)
	}
	if m.EstimatedQuality != QualityHigh {
		t.Fatalf("quality = %q, want %q (recommendations: %v)", m.EstimatedQuality, QualityHigh, m.Recommendations)
	}
	if m.Width != 2000 || m.Height != 1500 {
		t.Fatalf("resolution = %dx%d, want 2000x1500", m.Width, m.Height)
	}
	if len(m.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", m.Recommendations)
	}
}

func TestAssessQualityLow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeFlatJPEG(t, path, 800, 600, 20)

	m, err := AssessQuality(path)
	if err != nil {
		t.Fatalf("AssessQuality() error = %v", err)
	}
	if m.EstimatedQuality != QualityLow {
		t.Fatalf("quality = %q, want %q", m.EstimatedQuality, QualityLow)
	}
	if len(m.Recommendations) == 0 {
		t.Fatal("expected at least one recommendation")
	}
	last := m.Recommendations[len(m.Recommendations)-1]
	if last != "quality.retake_photo" {
		t.Fatalf("last recommendation = %q, want quality.retake_photo", last)
	}
}

func TestAssessQualityMissingFile(t *testing.T) {
	if _, err := AssessQuality(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestProcessWritesScratchPNG(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "card.png")
	writeNoisePNG(t, src, 600, 400)

	p := NewPreprocessor(filepath.Join(dir, "cache"), nil)
	out, err := p.Process(src, ProfileFor(constants.DocTypeDriversLicense))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	defer os.Remove(out)

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Fatalf("output format = %q, want png", format)
	}
	if cfg.Width != 600 || cfg.Height != 400 {
		t.Fatalf("output resolution = %dx%d, want 600x400 (no upscale)", cfg.Width, cfg.Height)
	}
}

func TestProcessBoundedResize(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "big.png")
	writeNoisePNG(t, src, 2600, 1300)

	p := NewPreprocessor(filepath.Join(dir, "cache"), nil)
	profile := ProfileFor(constants.DocTypeDriversLicense)
	out, err := p.Process(src, profile)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	defer os.Remove(out)

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if cfg.Width != profile.MaxDimension {
		t.Fatalf("width = %d, want %d", cfg.Width, profile.MaxDimension)
	}
	if cfg.Height != 1200 {
		t.Fatalf("height = %d, want 1200 (aspect preserved)", cfg.Height)
	}
}

func TestProcessDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(src, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p := NewPreprocessor(dir, nil)
	_, err := p.Process(src, EnhancedProfile)
	if !errors.Is(err, common.ErrImagePreprocessing) {
		t.Fatalf("error = %v, want ErrImagePreprocessing", err)
	}
}

func TestProfileThresholds(t *testing.T) {
	// Security overprinting on ID cards needs gentler thresholding than
	// plain-paper SSN cards.
	id := ProfileFor(constants.DocTypeDriversLicense)
	passport := ProfileFor(constants.DocTypePassport)
	ssn := ProfileFor(constants.DocTypeSSN)
	if !(id.Threshold < passport.Threshold && passport.Threshold < ssn.Threshold) {
		t.Fatalf("thresholds not ordered: id=%d passport=%d ssn=%d",
			id.Threshold, passport.Threshold, ssn.Threshold)
	}
	if EnhancedProfile.Threshold >= id.Threshold {
		t.Fatalf("enhanced threshold %d should be below primary %d", EnhancedProfile.Threshold, id.Threshold)
	}
	if EnhancedProfile.MaxDimension <= id.MaxDimension {
		t.Fatal("enhanced profile should allow a larger resize bound")
	}
}
