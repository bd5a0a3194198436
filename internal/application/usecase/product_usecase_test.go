package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/cantina-api/internal/application/dto"
	"github.com/tu-usuario/cantina-api/internal/application/usecase"
	"github.com/tu-usuario/cantina-api/internal/domain"
	"github.com/tu-usuario/cantina-api/internal/domain/entity"
)

// memProductRepo repositorio de productos en memoria. withMovements simula
// la restricción de clave foránea del libro de movimientos: Delete de un
// producto con historial retorna ErrConflict, igual que el adaptador postgres.
type memProductRepo struct {
	products      map[string]*entity.Product
	withMovements map[string]bool
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{
		products:      make(map[string]*entity.Product),
		withMovements: make(map[string]bool),
	}
}

func (r *memProductRepo) Create(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	if p, ok := r.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *memProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *memProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.IsLowStock() {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func (r *memProductRepo) Delete(ctx context.Context, id string) error {
	if r.withMovements[id] {
		return domain.ErrConflict
	}
	delete(r.products, id)
	return nil
}

func createProduct(t *testing.T, uc *usecase.ProductUseCase, sku, name string, qty, minStock int64) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:      sku,
		Name:     name,
		Unit:     "un",
		Quantity: qty,
		MinStock: minStock,
	})
	require.NoError(t, err)
	return out
}

func TestProductCreate_Success(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:      "LAC-001",
		Name:     "Leche entera 1L",
		Brand:    "La Serenísima",
		Unit:     "un",
		Quantity: 10,
		MinStock: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, int64(10), out.Quantity)
	assert.False(t, out.LowStock)
}

func TestProductCreate_DuplicateSKU(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	createProduct(t, uc, "LAC-001", "Leche entera 1L", 10, 5)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU:  "LAC-001",
		Name: "Leche descremada 1L",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_NegativeValuesRejected(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X", Name: "X", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "X", Name: "X", MinStock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_DoesNotTouchQuantity(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created := createProduct(t, uc, "LAC-001", "Leche entera 1L", 10, 5)

	newName := "Leche entera 1L (tetra)"
	newMin := int64(8)
	out, err := uc.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:     &newName,
		MinStock: &newMin,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, out.Name)
	assert.Equal(t, int64(8), out.MinStock)
	// la cantidad no cambia por Update, solo por movimientos
	assert.Equal(t, int64(10), out.Quantity)
}

func TestProductUpdate_NotFoundReturnsNil(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	name := "X"
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestProductUpdate_NegativeMinStockRejected(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created := createProduct(t, uc, "LAC-001", "Leche", 10, 5)

	bad := int64(-1)
	_, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{MinStock: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductDelete_RestrictedWithMovementHistory(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created := createProduct(t, uc, "LAC-001", "Leche", 10, 5)
	repo.withMovements[created.ID] = true

	err := uc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// el producto sigue existiendo
	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestProductDelete_NoHistory(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	created := createProduct(t, uc, "LAC-001", "Leche", 10, 5)

	require.NoError(t, uc.Delete(ctx, created.ID))

	got, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductDelete_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_SearchByName(t *testing.T) {
	repo := newMemProductRepo()
	uc := usecase.NewProductUseCase(repo)
	ctx := context.Background()

	createProduct(t, uc, "LAC-001", "Leche entera 1L", 10, 5)
	createProduct(t, uc, "LAC-002", "Leche descremada 1L", 3, 5)
	createProduct(t, uc, "PAN-001", "Pan de molde", 7, 2)

	out, err := uc.List(ctx, "leche", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	// el item con stock bajo la bandera encendida
	assert.Equal(t, "Leche descremada 1L", out.Items[0].Name)
	assert.True(t, out.Items[0].LowStock)
	assert.False(t, out.Items[1].LowStock)

	out, err = uc.List(ctx, "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
}
