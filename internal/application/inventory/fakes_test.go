package inventory_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/tu-usuario/cantina-api/internal/domain/entity"
	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

// fakeStore estado compartido en memoria para los tests del motor de
// movimientos. El mutex cumple el rol del bloqueo de fila: mientras una
// "transacción" está abierta, ninguna otra puede leer-calcular-escribir.
type fakeStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	users     map[string]*entity.User
	movements []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
	}
}

func (s *fakeStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

func (s *fakeStore) addUser(u *entity.User) {
	cp := *u
	s.users[u.ID] = &cp
}

func (s *fakeStore) productQuantity(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

func (s *fakeStore) movementCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.movements)
}

// fakeProductRepo repositorio fuera de transacción (lecturas sueltas).
type fakeProductRepo struct {
	store *fakeStore
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.addProduct(p)
	return nil
}

func (r *fakeProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if p, ok := r.store.products[id]; ok {
		p.Quantity = quantity
	}
	return nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.store.products {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.MinStock > 0 && p.Quantity < p.MinStock {
			cp := *p
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeProductRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.products)), nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.products, id)
	return nil
}

// fakeMovementRepo repositorio fuera de transacción (listados y count).
type fakeMovementRepo struct {
	store *fakeStore
}

func (r *fakeMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithNames, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	sorted := make([]*entity.StockMovement, len(r.store.movements))
	copy(sorted, r.store.movements)
	// created_at DESC, id ASC como desempate estable
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	list := make([]*entity.MovementWithNames, 0, len(sorted))
	for _, m := range sorted {
		item := &entity.MovementWithNames{StockMovement: *m}
		if p, ok := r.store.products[m.ProductID]; ok {
			item.ProductName = p.Name
		}
		if u, ok := r.store.users[m.UserID]; ok {
			item.UserName = u.Name
		}
		list = append(list, item)
	}
	return list, nil
}

func (r *fakeMovementRepo) Count(ctx context.Context) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.movements)), nil
}

// errQuantityUpdate se inyecta para simular una falla de la segunda escritura.
var errQuantityUpdate = errors.New("update quantity failed")

// fakeTxRunner serializa las transacciones con el mutex del store y aplica
// las escrituras solo si fn retorna nil, imitando Commit/Rollback.
type fakeTxRunner struct {
	store *fakeStore
	// failQuantityUpdate fuerza el fallo de UpdateQuantity dentro de la tx.
	failQuantityUpdate bool
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tx := &txState{}
	movRepo := &txMovementRepo{store: r.store, tx: tx}
	productRepo := &txProductRepo{store: r.store, tx: tx, failQuantityUpdate: r.failQuantityUpdate}

	if err := fn(movRepo, productRepo); err != nil {
		return err // rollback: nada pendiente se aplica
	}

	// commit
	r.store.movements = append(r.store.movements, tx.pendingMovements...)
	for id, qty := range tx.pendingQuantities {
		r.store.products[id].Quantity = qty
	}
	return nil
}

type txState struct {
	pendingMovements  []*entity.StockMovement
	pendingQuantities map[string]int64
}

type txProductRepo struct {
	store              *fakeStore
	tx                 *txState
	failQuantityUpdate bool
}

func (r *txProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *txProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	if r.failQuantityUpdate {
		return errQuantityUpdate
	}
	if r.tx.pendingQuantities == nil {
		r.tx.pendingQuantities = make(map[string]int64)
	}
	r.tx.pendingQuantities[id] = quantity
	return nil
}

func (r *txProductRepo) Create(ctx context.Context, p *entity.Product) error { panic("no usado en tx") }
func (r *txProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetForUpdate(ctx, id)
}
func (r *txProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	panic("no usado en tx")
}
func (r *txProductRepo) Update(ctx context.Context, p *entity.Product) error { panic("no usado en tx") }
func (r *txProductRepo) List(ctx context.Context, search string, limit, offset int) ([]*entity.Product, error) {
	panic("no usado en tx")
}
func (r *txProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	panic("no usado en tx")
}
func (r *txProductRepo) Count(ctx context.Context) (int64, error) { panic("no usado en tx") }
func (r *txProductRepo) Delete(ctx context.Context, id string) error {
	panic("no usado en tx")
}

type txMovementRepo struct {
	store *fakeStore
	tx    *txState
}

func (r *txMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	cp := *m
	r.tx.pendingMovements = append(r.tx.pendingMovements, &cp)
	return nil
}

func (r *txMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithNames, error) {
	panic("no usado en tx")
}

func (r *txMovementRepo) Count(ctx context.Context) (int64, error) { panic("no usado en tx") }
