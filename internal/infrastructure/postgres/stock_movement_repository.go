package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tu-usuario/cantina-api/internal/domain/entity"
	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro de movimientos es append-only: no hay UPDATE ni DELETE.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste un movimiento de stock con su balance_after.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, product_id, user_id, type, quantity, movement_date, balance_after, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	note := (*string)(nil)
	if movement.Note != "" {
		note = &movement.Note
	}
	_, err := r.q.Exec(ctx, query,
		movement.ID, movement.ProductID, movement.UserID, movement.Type,
		movement.Quantity, movement.MovementDate, movement.BalanceAfter,
		note, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListRecent lista los movimientos más recientes con nombre de producto y
// usuario. Orden: created_at DESC con id ASC como desempate estable.
func (r *StockMovementRepo) ListRecent(ctx context.Context, limit int) ([]*entity.MovementWithNames, error) {
	query := `
		SELECT s.id, s.product_id, s.user_id, s.type, s.quantity, s.movement_date,
		       s.balance_after, s.note, s.created_at, p.name, u.name
		FROM stock_movements s
		JOIN products p ON p.id = s.product_id
		JOIN users u ON u.id = s.user_id
		ORDER BY s.created_at DESC, s.id ASC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovementWithNames
	for rows.Next() {
		var m entity.MovementWithNames
		var note *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity, &m.MovementDate,
			&m.BalanceAfter, &note, &m.CreatedAt, &m.ProductName, &m.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if note != nil {
			m.Note = *note
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Count devuelve el total de movimientos registrados.
func (r *StockMovementRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock movements: %w", err)
	}
	return n, nil
}
