package service

import (
	"context"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

type UserService struct {
	backend ports.Dispatcher
}

func NewUserService(backend ports.Dispatcher) *UserService {
	return &UserService{backend: backend}
}

func (s *UserService) GetAll(ctx context.Context) domain.Result[[]domain.User] {
	raw := s.backend.Dispatch(ctx, request(endpoint.ListUser, "fetch users", nil))
	return decodeList[domain.User](raw, "fetch users", "users")
}

func (s *UserService) GetByID(ctx context.Context, id int) domain.Result[domain.User] {
	raw := s.backend.Dispatch(ctx, requestWithID(endpoint.ListUser, id, "fetch user"))
	return decodeResult[domain.User](raw, "fetch user")
}
