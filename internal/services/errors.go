package services

import (
	"errors"
	"fmt"
)

var (
	ErrNoFaceDetected         = errors.New("no face detected in the image")
	ErrUndecodableImage       = errors.New("image could not be decoded")
	ErrEmptyUpdate            = errors.New("no fields to update")
	ErrUnknownObjective       = errors.New("unknown objective")
	ErrUnknownExperienceLevel = errors.New("unknown experience level")
	ErrInvalidAIResponse      = errors.New("the AI did not return valid JSON")
)

// InvalidVectorShapeError reports an embedding whose length is not the
// required 128 elements.
type InvalidVectorShapeError struct {
	Len int
}

func (e *InvalidVectorShapeError) Error() string {
	return fmt.Sprintf("biometric vector has invalid size %d, must have 128 elements", e.Len)
}
