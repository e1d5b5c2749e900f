package service

import (
	"context"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/apierror"
	"github.com/edulopezdev/barberiaLopez/internal/config"
	"github.com/edulopezdev/barberiaLopez/internal/dto"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// dummyHash is a bcrypt cost-12 hash of a throwaway string. Failure paths
// that never reach the real comparison burn the same bcrypt work against it
// so an unknown email costs the same as a wrong password.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Login authenticates by exact email match. Every failure path returns the
// same 401, after the same bcrypt cost, so callers cannot tell which emails
// exist or are disabled.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	credencialesInvalidas := apierror.Unauthorized("Email o contraseña incorrectos.")

	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
		return nil, credencialesInvalidas
	}
	if !user.Activo || !user.AccedeAlSistema || user.PasswordHash == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
		return nil, credencialesInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, credencialesInvalidas
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, apierror.Internal("No se pudo generar el token.")
	}

	return &dto.LoginResponse{
		Token: token,
		Usuario: dto.UsuarioResumen{
			ID:     user.ID,
			Nombre: user.Nombre,
			Email:  user.Email,
			RolID:  user.RolID,
		},
	}, nil
}

func (s *authService) generateToken(user *model.Usuario) (string, error) {
	rol, err := model.RolDesdeID(user.RolID)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"rol":     string(rol),
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
