package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "cashtrackr/internal/errors"
	"cashtrackr/internal/mailer"
	"cashtrackr/internal/models"
)

const (
	tokenLength = 6
	// tokenAttempts bounds the draws made while looking for a code no other
	// user currently holds.
	tokenAttempts = 10
)

// userService handles account lifecycle business logic.
type userService struct {
	db       *gorm.DB
	mailer   mailer.Mailer
	newToken func() (string, error)
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB, m mailer.Mailer) UserServicer {
	return &userService{db: db, mailer: m, newToken: generateToken}
}

// CreateAccount registers an unconfirmed user and emails the confirmation token.
// The insert and the email share one transaction: if the email cannot be sent
// the account is not created. Email uniqueness is enforced by the unique index.
func (s *userService) CreateAccount(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name, email and password are required")
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    strings.ToLower(email),
		Password: hashedPassword,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.issueToken(tx)
		if err != nil {
			return err
		}
		user.Token = &token

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrDuplicateEmail
			}
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return s.sendTokenEmail(ctx, mailer.ConfirmationEmail, user)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ConfirmAccount marks the token's owner as confirmed and consumes the token.
func (s *userService) ConfirmAccount(token string) error {
	user, err := s.findByToken(token, apperrors.ErrInvalidToken)
	if err != nil {
		return err
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{"confirmed": true, "token": nil}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// AttemptLogin checks, in order, that the user exists, is confirmed, and that
// the password matches.
func (s *userService) AttemptLogin(email, password string) (*models.User, error) {
	user, err := s.getUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if !user.Confirmed {
		return nil, apperrors.ErrAccountNotConfirmed
	}

	if !verifyPassword(user, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// ForgotPassword issues a fresh token and emails it to the user.
func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.getUserByEmail(email)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, err := s.issueToken(tx)
		if err != nil {
			return err
		}
		if err := tx.Model(user).Update("token", token).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		user.Token = &token
		return s.sendTokenEmail(ctx, mailer.PasswordResetEmail, user)
	})
}

// ValidateToken reports whether a pending token exists.
func (s *userService) ValidateToken(token string) error {
	_, err := s.findByToken(token, apperrors.ErrTokenNotFound)
	return err
}

// ResetPassword replaces the password of the token's owner and consumes the token.
func (s *userService) ResetPassword(token, password string) error {
	user, err := s.findByToken(token, apperrors.ErrTokenNotFound)
	if err != nil {
		return err
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return err
	}

	if err := s.db.Model(user).Updates(map[string]interface{}{"password": hashedPassword, "token": nil}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdatePassword changes the password after checking the current one.
func (s *userService) UpdatePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !verifyPassword(user, currentPassword) {
		return apperrors.WithMessage(apperrors.ErrInvalidCredentials, "Current password is incorrect")
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.db.Model(user).Update("password", hashedPassword).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CheckPassword verifies the password of an authenticated user.
func (s *userService) CheckPassword(userID uint, password string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}

	if !verifyPassword(user, password) {
		return apperrors.ErrInvalidCredentials
	}
	return nil
}

func (s *userService) getUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// findByToken looks up the owner of a pending token, returning notFound when
// there is none.
func (s *userService) findByToken(token string, notFound *apperrors.AppError) (*models.User, error) {
	if token == "" {
		return nil, notFound
	}

	var user models.User
	if err := s.db.Where("token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// issueToken draws codes until one is not held by any user, so a token always
// resolves to a single account.
func (s *userService) issueToken(tx *gorm.DB) (string, error) {
	for i := 0; i < tokenAttempts; i++ {
		token, err := s.newToken()
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var holders int64
		if err := tx.Model(&models.User{}).Where("token = ?", token).Count(&holders).Error; err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if holders == 0 {
			return token, nil
		}
	}
	return "", apperrors.Wrap(apperrors.ErrInternalServer,
		fmt.Errorf("no free token after %d attempts", tokenAttempts))
}

func (s *userService) sendTokenEmail(ctx context.Context, build func(mailer.Recipient) (mailer.Message, error), user *models.User) error {
	msg, err := build(mailer.Recipient{Name: user.Name, Email: user.Email, Token: *user.Token})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return string(hashed), nil
}

func verifyPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}

// generateToken returns a zero-padded random numeric code of tokenLength digits.
func generateToken() (string, error) {
	limit := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", tokenLength, n.Int64()), nil
}
