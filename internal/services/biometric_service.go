package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/percytaquila/apiGYM/internal/models"
	"github.com/percytaquila/apiGYM/internal/repository"
)

// EmbeddingLen is the required length of a face embedding.
const EmbeddingLen = 128

type biometricUserStore interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	UpdateBiometric(ctx context.Context, userID int64, input repository.BiometricUpdateInput) error
}

type BiometricService struct {
	userRepo biometricUserStore
	encoder  FaceEncoder
}

func NewBiometricService(userRepo *repository.UserRepository, encoder FaceEncoder) *BiometricService {
	return &BiometricService{userRepo: userRepo, encoder: encoder}
}

// BiometricFields are the optional profile fields a client may submit
// alongside the enrollment image.
type BiometricFields struct {
	Genero           *string  `json:"genero"`
	Edad             *int     `json:"edad"`
	Altura           *float64 `json:"altura"`
	PesoActual       *float64 `json:"peso_actual"`
	Objetivo         *string  `json:"objetivo"`
	NivelExperiencia *string  `json:"nivel_experiencia"`
	DatosCompletos   *bool    `json:"datos_completos"`
}

// Enroll runs the biometric pipeline: extract an embedding from the
// image, validate its shape, encode it, and merge it with the submitted
// fields into a single partial update. Nothing is written unless every
// step succeeds.
func (s *BiometricService) Enroll(ctx context.Context, userID int64, imageBytes []byte, fields BiometricFields) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	embedding, err := s.encoder.EncodeFace(imageBytes)
	if err != nil {
		return err
	}

	blob, err := EncodeVector(embedding)
	if err != nil {
		return err
	}

	input := repository.BiometricUpdateInput{
		Genero:           fields.Genero,
		Edad:             fields.Edad,
		Altura:           fields.Altura,
		PesoActual:       fields.PesoActual,
		Objetivo:         fields.Objetivo,
		NivelExperiencia: fields.NivelExperiencia,
		VectorBiometrico: blob,
		DatosCompletos:   fields.DatosCompletos,
	}
	if input.IsEmpty() {
		return ErrEmptyUpdate
	}

	return s.userRepo.UpdateBiometric(ctx, userID, input)
}

// EncodeVector serializes an embedding to its canonical storage form:
// 128 little-endian IEEE-754 float32 values, 512 bytes.
func EncodeVector(vector []float32) ([]byte, error) {
	if len(vector) != EmbeddingLen {
		return nil, &InvalidVectorShapeError{Len: len(vector)}
	}

	blob := make([]byte, 4*EmbeddingLen)
	for i, v := range vector {
		binary.LittleEndian.PutUint32(blob[4*i:], math.Float32bits(v))
	}
	return blob, nil
}

// DecodeVector is the inverse of EncodeVector.
func DecodeVector(blob []byte) ([]float32, error) {
	if len(blob) != 4*EmbeddingLen {
		return nil, fmt.Errorf("biometric blob has %d bytes, want %d", len(blob), 4*EmbeddingLen)
	}

	vector := make([]float32, EmbeddingLen)
	for i := range vector {
		vector[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vector, nil
}
