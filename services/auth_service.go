package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ALjabriOmars/SCSP/entity"
	"github.com/ALjabriOmars/SCSP/repository"
	"github.com/ALjabriOmars/SCSP/utils"
)

// AuthService จัดการ business logic ของการ login/register
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Register สร้าง user ใหม่ ถ้า email ซ้ำจะ error
func (s *AuthService) Register(name, email, phone, role, password, department string) (*entity.User, error) {
	if name == "" || email == "" || phone == "" || role == "" || password == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	email = strings.ToLower(strings.TrimSpace(email))

	// ตรวจซ้ำ email
	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user := &entity.User{
		FullName: strings.TrimSpace(name),
		Email:    email,
		Phone:    strings.TrimSpace(phone),
		Role:     role,
	}
	if department != "" {
		user.Department = &department
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login ตรวจสอบ user + สร้าง JWT
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return "", nil, ErrInvalidCredentials
	}

	// ออก token
	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me โหลด profile ของผู้ใช้ที่ login อยู่
func (s *AuthService) Me(userID uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrNotFound
	}
	return user, nil
}
