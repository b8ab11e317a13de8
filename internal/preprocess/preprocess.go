// Package preprocess assesses capture quality and prepares document images
// for OCR with a fixed transform chain tuned per document type.
package preprocess

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/hireflow/docscan/constants"
	"github.com/hireflow/docscan/internal/common"
)

// Profile holds the per-document-type transform parameters. Government ID
// cards carry security overprinting that lowers contrast, so they binarize
// at a gentler threshold than plain-paper SSN cards.
type Profile struct {
	Threshold    uint8
	SharpenSigma float64
	ContrastPct  float64
	MaxDimension int
}

var profiles = map[constants.DocumentType]Profile{
	constants.DocTypeDriversLicense:    {Threshold: 170, SharpenSigma: 1.0, ContrastPct: 20, MaxDimension: 2400},
	constants.DocTypeStateID:           {Threshold: 170, SharpenSigma: 1.0, ContrastPct: 20, MaxDimension: 2400},
	constants.DocTypeWorkAuthorization: {Threshold: 175, SharpenSigma: 1.0, ContrastPct: 20, MaxDimension: 2400},
	constants.DocTypePassport:          {Threshold: 190, SharpenSigma: 0.8, ContrastPct: 15, MaxDimension: 2400},
	constants.DocTypeSSN:               {Threshold: 200, SharpenSigma: 1.2, ContrastPct: 25, MaxDimension: 2000},
}

// EnhancedProfile trades latency for robustness on noisy captures: a lower
// fixed threshold, stronger sharpening, and a larger resize bound.
var EnhancedProfile = Profile{Threshold: 150, SharpenSigma: 2.0, ContrastPct: 30, MaxDimension: 3200}

// ProfileFor returns the transform parameters for a document type.
func ProfileFor(t constants.DocumentType) Profile {
	if p, ok := profiles[t]; ok {
		return p
	}
	return profiles[constants.DocTypeDriversLicense]
}

// Preprocessor writes OCR-ready scratch images into the artifact cache dir.
type Preprocessor struct {
	cacheDir string
	logger   *slog.Logger
}

func NewPreprocessor(cacheDir string, logger *slog.Logger) *Preprocessor {
	if logger == nil {
		logger = slog.Default()
	}
	if cacheDir == "" {
		cacheDir = "./tmp"
	}
	return &Preprocessor{cacheDir: cacheDir, logger: logger}
}

// Process runs the transform chain on the source image and returns the path
// of the preprocessed scratch PNG. The scratch file is the caller's to
// delete once OCR has consumed it.
//
// Chain: grayscale -> contrast normalization -> sharpen -> binarize at the
// profile threshold -> bounded resize (longest side capped, aspect kept,
// never upscaled) -> lossless PNG encode.
func (p *Preprocessor) Process(srcPath string, profile Profile) (string, error) {
	src, err := imaging.Open(srcPath)
	if err != nil {
		p.logger.Error("preprocess.decode.failed", "path", srcPath, "error", err)
		return "", fmt.Errorf("%w: decode %s: %v", common.ErrImagePreprocessing, srcPath, err)
	}

	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, profile.ContrastPct)
	img = imaging.Sharpen(img, profile.SharpenSigma)

	threshold := profile.Threshold
	img = imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		// Already grayscale, so the red channel is the brightness.
		if c.R > threshold {
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	})

	b := img.Bounds()
	if b.Dx() > profile.MaxDimension || b.Dy() > profile.MaxDimension {
		img = imaging.Fit(img, profile.MaxDimension, profile.MaxDimension, imaging.Lanczos)
	}

	if err := os.MkdirAll(p.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create cache dir: %v", common.ErrImagePreprocessing, err)
	}
	outPath := filepath.Join(p.cacheDir, uuid.NewString()+".png")
	if err := imaging.Save(img, outPath); err != nil {
		p.logger.Error("preprocess.save.failed", "path", outPath, "error", err)
		return "", fmt.Errorf("%w: save %s: %v", common.ErrImagePreprocessing, outPath, err)
	}

	p.logger.Debug("preprocess.ok", "src", srcPath, "out", outPath,
		"threshold", profile.Threshold, "sigma", profile.SharpenSigma)
	return outPath, nil
}
