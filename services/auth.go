package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
	"unicode"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rentride/backend-rental/models"
)

// Verification codes stay valid for three hours.
const codeTTL = 3 * time.Hour

type AuthService struct {
	db     *gorm.DB
	codes  CodeStore
	mailer EmailSender
}

func NewAuthService(db *gorm.DB, codes CodeStore, mailer EmailSender) *AuthService {
	return &AuthService{db: db, codes: codes, mailer: mailer}
}

func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      role,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrEmailTaken
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}

	s.issueCode(&user)
	return &user, nil
}

func (s *AuthService) Login(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		// Re-issue a code so the user can complete verification.
		s.issueCode(&user)
		return nil, ErrNotVerified
	}

	return &user, nil
}

func (s *AuthService) VerifyEmail(email, code string) error {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	stored, err := s.codes.Get(email)
	if err != nil {
		return err
	}
	if stored != code {
		return ErrInvalidCode
	}

	if err := s.db.Model(&user).Update("is_verified", true).Error; err != nil {
		return err
	}

	s.codes.Remove(email)
	return nil
}

func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// issueCode stores a fresh verification code and mails it. Mail failure
// is logged only; registration and login must not fail on it.
func (s *AuthService) issueCode(user *models.User) {
	code := generateCode()
	s.codes.Put(user.Email, code, codeTTL)

	body := fmt.Sprintf("Hello %s,\n\nYour verification code is %s. It expires in 3 hours.\n", user.FirstName, code)
	if err := s.mailer.Send(user.Email, "Verify your account", body); err != nil {
		log.WithError(err).WithField("email", user.Email).Warn("Failed to send verification email")
	}
}

// generateCode creates a random 6-digit verification code.
func generateCode() string {
	max := big.NewInt(1000000)
	n, _ := rand.Int(rand.Reader, max)
	return fmt.Sprintf("%06d", n.Int64())
}

// validatePassword enforces at least 8 characters with an upper case
// letter, a lower case letter, a digit and a symbol.
func validatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return ErrWeakPassword
	}
	return nil
}
