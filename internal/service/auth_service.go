package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"navportal/internal/model"
	"navportal/internal/repository"
)

// 认证错误
var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrInvalidPassword = errors.New("密码错误")
	ErrInvalidToken    = errors.New("令牌无效")
)

// tokenTTL 令牌有效期，签发后24小时过期
const tokenTTL = 24 * time.Hour

// TokenClaims 令牌中携带的管理员身份
type TokenClaims struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthService 管理员认证服务接口
type AuthService interface {
	Login(username string, password string) (string, *model.AdminUser, error)
	Verify(tokenString string) (*TokenClaims, error)
}

type authService struct {
	repo   repository.AdminUserRepository
	secret []byte
}

// NewAuthService 创建认证服务
func NewAuthService(repo repository.AdminUserRepository, secret string) AuthService {
	return &authService{
		repo:   repo,
		secret: []byte(secret),
	}
}

// Login 校验用户名密码，成功后签发令牌
func (s *authService) Login(username string, password string) (string, *model.AdminUser, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	// 密码与bcrypt哈希比对
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidPassword
	}

	now := time.Now()
	claims := TokenClaims{
		ID:       user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Verify 校验令牌签名和有效期，返回其中的管理员身份
func (s *authService) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
