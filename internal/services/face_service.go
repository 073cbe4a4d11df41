package services

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	goface "github.com/Kagami/go-face"
)

// FaceEncoder turns raw image bytes into a face embedding. When the
// image contains several faces the first detection wins.
type FaceEncoder interface {
	EncodeFace(imageBytes []byte) ([]float32, error)
}

// DlibFaceEncoder extracts 128-dimensional face descriptors with dlib.
// It is not safe for concurrent use; callers share one instance behind
// the request-scoped service.
type DlibFaceEncoder struct {
	rec *goface.Recognizer
}

// NewDlibFaceEncoder loads the dlib models (shape predictor, resnet
// descriptor net) from modelsDir.
func NewDlibFaceEncoder(modelsDir string) (*DlibFaceEncoder, error) {
	rec, err := goface.NewRecognizer(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("load face models: %w", err)
	}
	return &DlibFaceEncoder{rec: rec}, nil
}

func (e *DlibFaceEncoder) EncodeFace(imageBytes []byte) ([]float32, error) {
	jpegBytes, err := ensureJPEG(imageBytes)
	if err != nil {
		return nil, err
	}

	faces, err := e.rec.Recognize(jpegBytes)
	if err != nil {
		return nil, fmt.Errorf("recognize face: %w", err)
	}
	if len(faces) == 0 {
		return nil, ErrNoFaceDetected
	}

	descriptor := faces[0].Descriptor
	return descriptor[:], nil
}

// ensureJPEG passes JPEG input through untouched and re-encodes the
// other supported containers (PNG, GIF) to JPEG; the recognizer only
// accepts JPEG data.
func ensureJPEG(imageBytes []byte) ([]byte, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, ErrUndecodableImage
	}
	if format == "jpeg" {
		return imageBytes, nil
	}

	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return nil, ErrUndecodableImage
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, fmt.Errorf("transcode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *DlibFaceEncoder) Close() {
	if e.rec != nil {
		e.rec.Close()
	}
}
