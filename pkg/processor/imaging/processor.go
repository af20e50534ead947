package imagingprocessor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
	"github.com/muesli/smartcrop/nfnt"
	"github.com/thebartekbanach/canvas/pkg/metrics"
	"github.com/thebartekbanach/canvas/pkg/processor"
	"github.com/thebartekbanach/canvas/pkg/transform"
)

const DefaultOverlayFontSize = 12

type Config struct {
	// Workers is the number of pipelines allowed to run at once, zero means
	// one per CPU.
	Workers int
	// OverlayFontSize is the point size of overlay text, rendered at 72 DPI.
	OverlayFontSize float64
	// Watermark holds the encoded watermark image, nil disables watermarking.
	Watermark []byte
}

// Cropper selects the most salient width:height region of an image.
type Cropper interface {
	FindBestCrop(img image.Image, width, height int) (image.Rectangle, error)
}

type Processor struct {
	config  Config
	pool    *processor.WorkerPool
	cropper Cropper
	text    *textRenderer
}

var _ processor.ProcessingService = (*Processor)(nil)

func NewProcessor(config Config) (*Processor, error) {
	if config.OverlayFontSize <= 0 {
		config.OverlayFontSize = DefaultOverlayFontSize
	}

	text, err := newTextRenderer(config.OverlayFontSize)
	if err != nil {
		return nil, fmt.Errorf("loading overlay font: %w", err)
	}

	return &Processor{
		config:  config,
		pool:    processor.NewWorkerPool(config.Workers),
		cropper: smartcrop.NewAnalyzer(nfnt.NewDefaultResizer()),
		text:    text,
	}, nil
}

func (proc *Processor) Process(ctx context.Context, source []byte, spec transform.Spec) (output []byte, err error) {
	started := time.Now()

	poolErr := proc.pool.Run(ctx, func() {
		output, err = proc.run(source, spec)
	})
	if poolErr != nil {
		return nil, poolErr
	}

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.RecordPipeline(spec.Format.String(), status, time.Since(started).Seconds())

	return output, err
}

func (proc *Processor) run(source []byte, spec transform.Spec) ([]byte, error) {
	img, err := decode(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	img = proc.coverFit(img, spec.Width, spec.Height)

	img, err = proc.smartCrop(img, spec.Width, spec.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCropFailed, err)
	}

	if spec.Watermark && len(proc.config.Watermark) > 0 {
		img, err = proc.applyWatermark(img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWatermarkFailed, err)
		}
	}

	if spec.HasOverlay() {
		img, err = proc.applyOverlay(img, spec.Overlay)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOverlayFailed, err)
		}
	}

	output, err := encode(img, spec.Format, spec.Quality)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrEncodeFailed, err)
	}

	return output, nil
}

func (proc *Processor) coverFit(img image.Image, tw, th int) image.Image {
	bounds := img.Bounds()
	factor := coverFitFactor(bounds.Dx(), bounds.Dy(), tw, th)
	if factor >= 1.0 {
		return img
	}

	width, height := scaledSize(bounds.Dx(), bounds.Dy(), factor)
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

func (proc *Processor) smartCrop(img image.Image, tw, th int) (image.Image, error) {
	bounds := img.Bounds()
	width, height := clampedCropSize(bounds.Dx(), bounds.Dy(), tw, th)
	if width == bounds.Dx() && height == bounds.Dy() {
		return img, nil
	}

	salient, err := proc.cropper.FindBestCrop(img, width, height)
	if err != nil {
		return nil, err
	}

	return imaging.Crop(img, placeCropBox(bounds, salient, width, height)), nil
}

// applyWatermark decodes a private copy of the watermark on every call,
// decoded images are never shared between requests.
func (proc *Processor) applyWatermark(img image.Image) (image.Image, error) {
	watermark, err := imaging.Decode(bytes.NewReader(proc.config.Watermark))
	if err != nil {
		return nil, err
	}

	return screenComposite(img, watermark), nil
}

func (proc *Processor) applyOverlay(img image.Image, text string) (image.Image, error) {
	rendered, err := proc.text.render(text)
	if err != nil {
		return nil, err
	}

	return screenComposite(img, rendered), nil
}

var (
	ErrDecodeFailed      = errors.New("decoding source image failed")
	ErrCropFailed        = errors.New("cropping image failed")
	ErrWatermarkFailed   = errors.New("applying watermark failed")
	ErrOverlayFailed     = errors.New("applying text overlay failed")
	ErrEncodeFailed      = errors.New("encoding image failed")
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
