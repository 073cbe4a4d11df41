package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/percytaquila/apiGYM/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.db.QueryRow(ctx, query, user.Nombre, user.Apellido, user.Email, user.PasswordHash).
		Scan(&user.ID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, nombre, apellido, email, password_hash, datos_completos
		FROM usuarios
		WHERE email = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, email).
		Scan(&user.ID, &user.Nombre, &user.Apellido, &user.Email, &user.PasswordHash, &user.DatosCompletos)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, nombre, apellido, email, password_hash, genero, edad, altura,
			   peso_actual, objetivo, nivel_experiencia, datos_completos
		FROM usuarios
		WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Nombre,
		&user.Apellido,
		&user.Email,
		&user.PasswordHash,
		&user.Genero,
		&user.Edad,
		&user.Altura,
		&user.PesoActual,
		&user.Objetivo,
		&user.NivelExperiencia,
		&user.DatosCompletos,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// BiometricUpdateInput carries the biometric blob plus any co-submitted
// profile fields. Nil fields keep their stored value.
type BiometricUpdateInput struct {
	Genero           *string
	Edad             *int
	Altura           *float64
	PesoActual       *float64
	Objetivo         *string
	NivelExperiencia *string
	VectorBiometrico []byte
	DatosCompletos   *bool
}

func (i BiometricUpdateInput) IsEmpty() bool {
	return i.Genero == nil &&
		i.Edad == nil &&
		i.Altura == nil &&
		i.PesoActual == nil &&
		i.Objetivo == nil &&
		i.NivelExperiencia == nil &&
		i.VectorBiometrico == nil &&
		i.DatosCompletos == nil
}

func (r *UserRepository) UpdateBiometric(ctx context.Context, userID int64, input BiometricUpdateInput) error {
	query := `
		UPDATE usuarios
		SET genero = COALESCE($1, genero),
			edad = COALESCE($2, edad),
			altura = COALESCE($3, altura),
			peso_actual = COALESCE($4, peso_actual),
			objetivo = COALESCE($5, objetivo),
			nivel_experiencia = COALESCE($6, nivel_experiencia),
			vector_biometrico = COALESCE($7, vector_biometrico),
			datos_completos = COALESCE($8, datos_completos)
		WHERE id = $9
	`
	_, err := r.db.Exec(ctx, query,
		input.Genero,
		input.Edad,
		input.Altura,
		input.PesoActual,
		input.Objetivo,
		input.NivelExperiencia,
		input.VectorBiometrico,
		input.DatosCompletos,
		userID,
	)
	return err
}

func (r *UserRepository) UpdateGoals(ctx context.Context, userID int64, objetivo, nivelExperiencia *string) error {
	query := `
		UPDATE usuarios
		SET objetivo = COALESCE($1, objetivo),
			nivel_experiencia = COALESCE($2, nivel_experiencia)
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, objetivo, nivelExperiencia, userID)
	return err
}
