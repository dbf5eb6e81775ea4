package domain_test

import (
	"strings"
	"testing"

	"github.com/arco/demo/internal/domain"
)

func TestCreateUserRequest_Validate(t *testing.T) {
	valid := domain.CreateUserRequest{ID: "42", Name: "Kim JeongTae"}

	t.Run("valid request passes", func(t *testing.T) {
		if err := valid.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		r := valid
		r.ID = ""
		if err := r.Validate(); err != domain.ErrInvalidUserID {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("id too long", func(t *testing.T) {
		r := valid
		r.ID = strings.Repeat("x", domain.MaxUserIDLength+1)
		if err := r.Validate(); err != domain.ErrInvalidUserID {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		r := valid
		r.Name = ""
		if err := r.Validate(); err != domain.ErrInvalidName {
			t.Fatalf("expected ErrInvalidName, got %v", err)
		}
	})

	t.Run("multi-byte name counts characters", func(t *testing.T) {
		r := valid
		r.Name = strings.Repeat("김", domain.MaxNameLength)
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error for %d Hangul characters, got %v", domain.MaxNameLength, err)
		}
		r.Name += "김"
		if err := r.Validate(); err != domain.ErrInvalidName {
			t.Fatalf("expected ErrInvalidName past the limit, got %v", err)
		}
	})

	t.Run("multi-byte id counts characters", func(t *testing.T) {
		r := valid
		r.ID = strings.Repeat("정", domain.MaxUserIDLength)
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("name at max length passes", func(t *testing.T) {
		r := valid
		r.Name = strings.Repeat("x", domain.MaxNameLength)
		if err := r.Validate(); err != nil {
			t.Fatalf("expected no error at max length, got %v", err)
		}
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	r := domain.UpdateUserRequest{Name: strings.Repeat("x", domain.MaxNameLength+1)}
	if err := r.Validate(); err != domain.ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
	r.Name = "ok"
	if err := r.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
