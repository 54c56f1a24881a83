package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

type usersService struct {
	*client
}

type loginReply struct {
	Token string `json:"token"`
}

func (s *usersService) Echo(ctx context.Context) error {
	return s.echo(ctx, "/echo")
}

func (s *usersService) Register(ctx context.Context, req service.RegisterRequest) error {
	return s.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, nil)
}

func (s *usersService) Login(ctx context.Context, req service.LoginRequest) (string, error) {
	var reply loginReply
	if err := s.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &reply); err != nil {
		return "", err
	}
	if reply.Token == "" {
		return "", errors.New("login reply carried no token")
	}

	return reply.Token, nil
}

func (s *usersService) Me(ctx context.Context) (*entity.Profile, error) {
	var profile entity.Profile
	if err := s.getJSON(ctx, "/user/me", nil, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *usersService) UpdateMe(ctx context.Context, req service.UpdateProfileRequest) error {
	return s.doJSON(ctx, http.MethodPut, "/user/me", nil, req, nil)
}

func (s *usersService) DeleteMe(ctx context.Context) error {
	return s.doJSON(ctx, http.MethodDelete, "/user/me", nil, nil, nil)
}

func (s *usersService) ListUsers(ctx context.Context) (json.RawMessage, error) {
	var users json.RawMessage
	if err := s.getJSON(ctx, "/user/all", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *usersService) ListPurchases(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	if err := s.getJSON(ctx, "/compras/all", nil, &purchases); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (s *usersService) MyPurchases(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase
	if err := s.getJSON(ctx, "/compras/me", nil, &purchases); err != nil {
		return nil, err
	}

	return purchases, nil
}

func (s *usersService) CreatePurchase(ctx context.Context, purchase entity.PurchaseInput) (json.RawMessage, error) {
	var created json.RawMessage
	if err := s.doJSON(ctx, http.MethodPost, "/compras", nil, purchase, &created); err != nil {
		return nil, err
	}

	return created, nil
}
