package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vaga-hub/internal/domain/user"
	"vaga-hub/internal/pkg/jwt"
	ucauth "vaga-hub/internal/usecase/auth"
)

func newTestJWT() jwt.Service {
	return jwt.NewHMACService("access-secret-for-tests", "refresh-secret-for-tests", time.Hour, 24*time.Hour)
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewAuthUsecase(users, newTestJWT())
	ctx := context.Background()

	usr, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{
		Email:     "Maria@Example.com",
		Password:  "segredo-forte",
		FirstName: "Maria",
		LastName:  "Silva",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Email != "maria@example.com" {
		t.Fatalf("expected normalized email, got %s", usr.Email)
	}
	if usr.Role != user.RoleUser {
		t.Fatalf("expected default role, got %s", usr.Role)
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	if _, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "maria@example.com", Password: "errada-errada"}); !errors.Is(err, ucauth.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	logged, _, _, err := uc.Login(ctx, ucauth.LoginInput{Email: "maria@example.com", Password: "segredo-forte"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if logged.ID != usr.ID {
		t.Fatalf("expected same user")
	}
}

func TestAuth_RegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewAuthUsecase(users, newTestJWT())
	ctx := context.Background()

	in := ucauth.RegisterInput{Email: "dup@example.com", Password: "segredo-forte"}
	if _, _, _, err := uc.Register(ctx, in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, _, _, err := uc.Register(ctx, in); !errors.Is(err, ucauth.ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_RefreshRotatesTokens(t *testing.T) {
	users := &mockUserRepo{}
	uc := NewAuthUsecase(users, newTestJWT())
	ctx := context.Background()

	_, access, refresh, err := uc.Register(ctx, ucauth.RegisterInput{Email: "r@example.com", Password: "segredo-forte"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	newAccess, newRefresh, err := uc.Refresh(ctx, refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if newAccess == "" || newRefresh == "" {
		t.Fatalf("expected rotated tokens")
	}

	// An access token must not work as a refresh token.
	if _, _, err := uc.Refresh(ctx, access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}

	if _, _, err := uc.Refresh(ctx, "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for garbage, got %v", err)
	}
}

func TestAuth_WeakPassword(t *testing.T) {
	uc := NewAuthUsecase(&mockUserRepo{}, newTestJWT())
	_, _, _, err := uc.Register(context.Background(), ucauth.RegisterInput{Email: "w@example.com", Password: "curta"})
	if !errors.Is(err, ucauth.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_CheckEmail(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	uc := NewAuthUsecase(users, newTestJWT())

	if _, _, _, err := uc.Register(ctx, ucauth.RegisterInput{Email: "Taken@Example.com", Password: "segredo-forte"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	exists, err := uc.CheckEmail(ctx, "  TAKEN@example.com ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !exists {
		t.Fatalf("expected registered email to exist")
	}

	exists, err = uc.CheckEmail(ctx, "livre@example.com")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if exists {
		t.Fatalf("expected unused email to be free")
	}

	if _, err := uc.CheckEmail(ctx, "not-an-email"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
