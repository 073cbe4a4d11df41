package models

type User struct {
	ID               int64    `json:"id"`
	Nombre           string   `json:"nombre"`
	Apellido         string   `json:"apellido"`
	Email            string   `json:"email"`
	PasswordHash     string   `json:"-"`
	Genero           *string  `json:"genero,omitempty"`
	Edad             *int     `json:"edad,omitempty"`
	Altura           *float64 `json:"altura,omitempty"`
	PesoActual       *float64 `json:"peso_actual,omitempty"`
	Objetivo         *string  `json:"objetivo,omitempty"`
	NivelExperiencia *string  `json:"nivel_experiencia,omitempty"`
	DatosCompletos   bool     `json:"datos_completos"`
}
