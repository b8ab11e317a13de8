package preprocess

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// QualityTier is the coarse capture-quality estimate.
type QualityTier string

const (
	QualityLow    QualityTier = "low"
	QualityMedium QualityTier = "medium"
	QualityHigh   QualityTier = "high"
)

// QualityMetrics summarizes a source image before any transform runs.
// Recommendations are translation keys; rendering belongs to the caller.
type QualityMetrics struct {
	Width            int         `json:"width"`
	Height           int         `json:"height"`
	FileSize         int64       `json:"fileSize"`
	Format           string      `json:"format"`
	EstimatedQuality QualityTier `json:"estimatedQuality"`
	Recommendations  []string    `json:"recommendations"`
}

// AssessQuality scores a source image by summing three independent point
// contributions: resolution tier, bytes-per-pixel (a compression proxy),
// and format. Total >=5 is high, >=3 medium, else low. A low rating always
// carries the retake-photo advisory.
func AssessQuality(path string) (QualityMetrics, error) {
	f, err := os.Open(path)
	if err != nil {
		return QualityMetrics{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return QualityMetrics{}, fmt.Errorf("decode image config: %w", err)
	}
	st, err := f.Stat()
	if err != nil {
		return QualityMetrics{}, fmt.Errorf("stat image: %w", err)
	}

	m := QualityMetrics{
		Width:    cfg.Width,
		Height:   cfg.Height,
		FileSize: st.Size(),
		Format:   format,
	}

	points := 0

	switch {
	case cfg.Width >= 1500 && cfg.Height >= 1000:
		points += 3
	case cfg.Width >= 1000 && cfg.Height >= 700:
		points += 2
		m.Recommendations = append(m.Recommendations, "quality.resolution_medium")
	default:
		points += 1
		m.Recommendations = append(m.Recommendations, "quality.resolution_low")
	}

	bpp := bytesPerPixel(st.Size(), cfg.Width, cfg.Height)
	switch {
	case bpp > 2:
		points += 2
	case bpp > 1:
		points += 1
		m.Recommendations = append(m.Recommendations, "quality.compression_moderate")
	default:
		m.Recommendations = append(m.Recommendations, "quality.compression_high")
	}

	// JPEG density tags are routinely stripped by phone uploads, so the
	// format point for JPEG rides on the bytes-per-pixel proxy instead.
	if format == "png" || (format == "jpeg" && bpp >= 1.5) {
		points += 1
	} else {
		m.Recommendations = append(m.Recommendations, "quality.lossy_format")
	}

	switch {
	case points >= 5:
		m.EstimatedQuality = QualityHigh
	case points >= 3:
		m.EstimatedQuality = QualityMedium
	default:
		m.EstimatedQuality = QualityLow
		m.Recommendations = append(m.Recommendations, "quality.retake_photo")
	}
	return m, nil
}

func bytesPerPixel(size int64, w, h int) float64 {
	if w <= 0 || h <= 0 {
		return 0
	}
	return float64(size) / float64(w*h)
}
