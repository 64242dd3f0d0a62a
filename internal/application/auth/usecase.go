package auth

import (
	"github.com/jcastro/personas-api/internal/application/dto"
	"github.com/jcastro/personas-api/internal/application/usecase"
	"github.com/jcastro/personas-api/internal/domain"
	"github.com/jcastro/personas-api/internal/domain/entity"
	"github.com/jcastro/personas-api/internal/domain/repository"
	"github.com/jcastro/personas-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	Algorithm  string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, emisión de token y
// registro bootstrap del primer administrador.
type AuthUseCase struct {
	userRepo repository.UserRepository
	userUC   *usecase.UserUseCase
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, userUC *usecase.UserUseCase, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, userUC: userUC, jwtCfg: jwtCfg}
}

// Login verifica email y password, y emite el bearer token. Email inexistente
// y password incorrecto colapsan en el mismo ErrUnauthorized para no permitir
// enumeración de cuentas; la comparación bcrypt es de tiempo constante.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := uc.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// IssueToken firma un JWT con subject id, email, rol y expiración configurada.
func (uc *AuthUseCase) IssueToken(user *entity.User) (string, error) {
	return jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Algorithm,
		user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
}

// RegisterFirstAdmin registra el primer usuario del sistema. Solo procede si
// no existe ningún usuario; el rol solicitado se ignora y se fuerza admin.
// Con usuarios existentes devuelve ErrForbidden: las altas posteriores pasan
// por el alta de usuarios autenticada.
func (uc *AuthUseCase) RegisterFirstAdmin(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	total, err := uc.userUC.Count()
	if err != nil {
		return nil, err
	}
	if total > 0 {
		return nil, domain.ErrForbidden
	}
	in.Role = entity.RoleAdmin
	return uc.userUC.Create(in)
}
