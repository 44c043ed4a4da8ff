package customer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/muerroui/gsm-ma-achat-simple/internal/domain"
	custrepo "github.com/muerroui/gsm-ma-achat-simple/internal/repository/customer"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountNotApproved is returned when the account exists but has not
	// been approved for wholesale access yet.
	ErrAccountNotApproved = errors.New("account not yet approved for B2B access")
	// ErrEmailTaken is returned on signup with an already registered email.
	ErrEmailTaken = errors.New("email already registered")
)

// Service handles wholesale account signup and credential checks.
type Service struct {
	repo        custrepo.Repository
	passwordMin int
}

func New(repo custrepo.Repository) *Service {
	return &Service{repo: repo, passwordMin: 8}
}

// SignupInput captures a B2B access request.
type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Company  string `json:"company"`
}

// Signup registers a new wholesale account in the pending state; a back
// office approves it before the first login can succeed.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.Customer, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.New("valid email required")
	}
	if err := validatePassword(in.Password, s.passwordMin); err != nil {
		return nil, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.Customer{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hashed),
		Company:      strings.TrimSpace(in.Company),
		Approved:     false,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

// Authenticate validates credentials and returns the matching approved
// account. Unknown emails and wrong passwords are indistinguishable to the
// caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.Customer, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !c.Approved {
		return nil, ErrAccountNotApproved
	}
	return c, nil
}

func validatePassword(p string, min int) error {
	if len(strings.TrimSpace(p)) < min {
		return fmt.Errorf("password must be at least %d characters", min)
	}
	return nil
}
