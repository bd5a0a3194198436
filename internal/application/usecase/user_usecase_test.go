package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cantina-api/internal/application/usecase"
	"github.com/tu-usuario/cantina-api/internal/domain"
	"github.com/tu-usuario/cantina-api/internal/domain/entity"
)

// memUserRepo repositorio de usuarios en memoria para los tests del caso de uso.
type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(ctx context.Context, u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	return list, nil
}

func (r *memUserRepo) UpdateStatus(ctx context.Context, id, status string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func TestUserSetStatus_Deactivate(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		ID: "u1", Username: "maria", Name: "María", Status: "active",
	}))
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.SetStatus(context.Background(), "u1", "inactive")
	require.NoError(t, err)
	assert.Equal(t, "inactive", out.Status)

	stored, _ := repo.GetByID(context.Background(), "u1")
	assert.Equal(t, "inactive", stored.Status)
}

func TestUserSetStatus_Reactivate(t *testing.T) {
	repo := newMemUserRepo()
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		ID: "u1", Username: "maria", Status: "inactive",
	}))
	uc := usecase.NewUserUseCase(repo)

	out, err := uc.SetStatus(context.Background(), "u1", "active")
	require.NoError(t, err)
	assert.Equal(t, "active", out.Status)
}

func TestUserSetStatus_InvalidStatus(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())

	_, err := uc.SetStatus(context.Background(), "u1", "suspendido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUserSetStatus_NotFound(t *testing.T) {
	uc := usecase.NewUserUseCase(newMemUserRepo())

	_, err := uc.SetStatus(context.Background(), "no-existe", "inactive")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
