package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/IMANOL01277/BollitoPy/internal/dto"
	"github.com/IMANOL01277/BollitoPy/internal/model"
	"github.com/IMANOL01277/BollitoPy/internal/repository"
	"github.com/IMANOL01277/BollitoPy/internal/sesion"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

// Registration messages, reported in rule order.
const (
	MensajeNombreInvalido    = "El nombre solo puede contener letras y espacios"
	MensajeCorreoInvalido    = "El correo electrónico no es válido"
	MensajeNoCoinciden       = "Las contraseñas no coinciden"
	MensajeContrasenaDebil   = "La contraseña debe tener al menos 8 caracteres, una mayúscula y un carácter especial"
	MensajeCorreoRegistrado  = "El correo ya está registrado"
	longitudMinimaContrasena = 8
)

var (
	reNombre    = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	reCorreo    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	reMayuscula = regexp.MustCompile(`[A-Z]`)
	reEspecial  = regexp.MustCompile(`[\W_]`)
)

type AuthService interface {
	Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error)
	// Autenticar returns ErrCredenciales for an unknown e-mail or a wrong
	// password alike.
	Autenticar(ctx context.Context, correo, contrasena string) (*sesion.Identidad, error)

	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo repository.UsuarioRepository
	cost int
}

func NewAuthService(repo repository.UsuarioRepository) AuthService {
	return &authService{repo: repo, cost: bcryptCost}
}

func toUsuarioResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		IDUsuario: u.ID.String(),
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rol:       u.Rol,
	}
}

// validarRegistro applies the sign-up rules in order; the first failure wins.
func validarRegistro(nombre, correo, contrasena, confirmar string) error {
	if !reNombre.MatchString(nombre) {
		return validacion(MensajeNombreInvalido)
	}
	if strings.Contains(correo, "..") || !reCorreo.MatchString(correo) {
		return validacion(MensajeCorreoInvalido)
	}
	if contrasena != confirmar {
		return validacion(MensajeNoCoinciden)
	}
	if utf8.RuneCountInString(contrasena) < longitudMinimaContrasena ||
		!reMayuscula.MatchString(contrasena) ||
		!reEspecial.MatchString(contrasena) {
		return validacion(MensajeContrasenaDebil)
	}
	return nil
}

// correoDisponible returns a validation error when the e-mail is taken.
func (s *authService) correoDisponible(ctx context.Context, correo string, excepto uuid.UUID) error {
	u, err := s.repo.FindByCorreo(ctx, correo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if u.ID == excepto {
		return nil
	}
	return validacion(MensajeCorreoRegistrado)
}

func (s *authService) hash(contrasena string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(contrasena), s.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (s *authService) Registrar(ctx context.Context, req dto.RegistroRequest) (*dto.UsuarioResponse, error) {
	nombre := strings.TrimSpace(req.Nombre)
	correo := strings.TrimSpace(req.Correo)
	if err := validarRegistro(nombre, correo, req.Contrasena, req.Confirmar); err != nil {
		return nil, err
	}
	if err := s.correoDisponible(ctx, correo, uuid.Nil); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Contrasena)
	if err != nil {
		return nil, err
	}
	u := &model.Usuario{
		Nombre:       nombre,
		Correo:       correo,
		PasswordHash: hash,
		Rol:          model.RolEmpleado,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	log.Info().Str("usuario_id", u.ID.String()).Msg("usuario registrado")
	return toUsuarioResponse(u), nil
}

func (s *authService) Autenticar(ctx context.Context, correo, contrasena string) (*sesion.Identidad, error) {
	u, err := s.repo.FindByCorreo(ctx, strings.TrimSpace(correo))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCredenciales
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(contrasena)); err != nil {
		return nil, ErrCredenciales
	}
	return &sesion.Identidad{
		UsuarioID: u.ID,
		Nombre:    u.Nombre,
		Correo:    u.Correo,
		Rol:       u.Rol,
	}, nil
}

func (s *authService) ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = *toUsuarioResponse(&users[i])
	}
	return resp, nil
}

func (s *authService) CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	correo := strings.TrimSpace(req.Correo)
	if err := s.correoDisponible(ctx, correo, uuid.Nil); err != nil {
		return nil, err
	}
	hash, err := s.hash(req.Contrasena)
	if err != nil {
		return nil, err
	}
	rol := req.Rol
	if rol == "" {
		rol = model.RolEmpleado
	}
	u := &model.Usuario{
		Nombre:       strings.TrimSpace(req.Nombre),
		Correo:       correo,
		PasswordHash: hash,
		Rol:          rol,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

func (s *authService) ActualizarUsuario(ctx context.Context, id uuid.UUID, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrUsuarioNoEncontrado)
	}
	correo := strings.TrimSpace(req.Correo)
	if err := s.correoDisponible(ctx, correo, u.ID); err != nil {
		return nil, err
	}
	u.Nombre = strings.TrimSpace(req.Nombre)
	u.Correo = correo
	u.Rol = req.Rol
	// Password is only replaced when a new one is supplied
	if req.Contrasena != "" {
		hash, err := s.hash(req.Contrasena)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

func (s *authService) EliminarUsuario(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUsuarioNoEncontrado
	}
	return nil
}
