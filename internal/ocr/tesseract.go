package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/hireflow/docscan/constants"
)

// TesseractEngine implements Engine with a gosseract client per invocation.
// Clients hold a native tesseract handle, so each one is closed before the
// call returns no matter how it exits.
type TesseractEngine struct {
	tessdataDir   string
	clientFactory func() *gosseract.Client
}

func NewTesseractEngine(tessdataDir string) *TesseractEngine {
	return &TesseractEngine{
		tessdataDir:   tessdataDir,
		clientFactory: gosseract.NewClient,
	}
}

func (e *TesseractEngine) Recognize(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	c := e.clientFactory()
	defer c.Close()

	if e.tessdataDir != "" {
		if err := c.SetTessdataPrefix(e.tessdataDir); err != nil {
			return Result{}, fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(constants.TesseractLang(req.Language)); err != nil {
		return Result{}, fmt.Errorf("set language: %w", err)
	}
	if err := c.SetPageSegMode(gosseract.PageSegMode(req.SegMode)); err != nil {
		return Result{}, fmt.Errorf("set page seg mode: %w", err)
	}
	if err := c.SetImage(req.ImagePath); err != nil {
		return Result{}, fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return Result{}, fmt.Errorf("recognize text: %w", err)
	}

	res := Result{Text: strings.TrimSpace(text)}
	if req.Mode == ModeFast {
		// Detection pre-pass only needs text; skip the word-box walk.
		return res, nil
	}
	res.Confidence = meanWordConfidence(c)
	return res, nil
}

// meanWordConfidence averages per-word confidences from the engine's
// bounding boxes, on a 0-100 scale. Zero when the engine reports no words.
func meanWordConfidence(c *gosseract.Client) float64 {
	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, b := range boxes {
		sum += b.Confidence
	}
	return sum / float64(len(boxes))
}
