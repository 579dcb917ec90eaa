package services

import (
	"errors"
	"time"

	"literary-cms/config"
	"literary-cms/models"
	"literary-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest, ip string) (*models.AuthResponse, error)
	Logout(actor models.User, ip string)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	limiter  *LoginRateLimiter
	recorder ActivityRecorder
	log      zerolog.Logger
}

func NewAuthService(userRepo repositories.UserRepository, limiter *LoginRateLimiter, recorder ActivityRecorder, log zerolog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		limiter:  limiter,
		recorder: recorder,
		log:      log,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrorConflict{Message: "user already exists"}
	}

	role := req.Role
	if role == "" {
		role = models.RoleWriter
	}
	if !role.Valid() {
		return nil, models.ErrorBadRequest{Message: "invalid role"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(req models.LoginRequest, ip string) (*models.AuthResponse, error) {
	// Every attempt counts against the window, successful or not.
	limit := s.limiter.Check(req.Email)
	if !limit.Allowed {
		return nil, models.ErrorTooManyRequests{
			Message:    "too many login attempts, try again later",
			RetryAfter: limit.ResetIn,
		}
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	// A successful login wipes the identifier's rate-limit state.
	s.limiter.Reset(req.Email)

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	runSideEffect(s.log, "activity.login", func() error {
		return s.recorder.Record(*user, models.ActionLogin, "user", user.ID, user.Username, "", ip)
	})

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// Logout only records the event; the JWT itself stays valid until expiry.
func (s *authService) Logout(actor models.User, ip string) {
	runSideEffect(s.log, "activity.logout", func() error {
		return s.recorder.Record(actor, models.ActionLogout, "user", actor.ID, actor.Username, "", ip)
	})
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	return user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
