package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, email string, password string) (models.User, error)
	Login(ctx context.Context, email string, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
