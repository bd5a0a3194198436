package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/cantina-api/internal/application/dto"
	"github.com/tu-usuario/cantina-api/internal/domain"
	"github.com/tu-usuario/cantina-api/internal/domain/entity"
	"github.com/tu-usuario/cantina-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock (in/out) de forma
// transaccional con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El saldo del producto y el snapshot balance_after del movimiento se
// escriben como una sola unidad.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, productRepo: productRepo}
}

// MovementInput entrada para registrar un movimiento de stock.
// UserID viene del token de la petición, nunca de estado ambiente.
type MovementInput struct {
	UserID       string
	ProductID    string
	Type         string // in, out
	Quantity     int64  // > 0
	MovementDate time.Time
	Note         string
}

// RegisterMovement valida la entrada, inicia una transacción, bloquea la fila
// del producto, verifica que el nuevo saldo no sea negativo y persiste el
// movimiento (con balance_after) junto con el nuevo saldo del producto.
// Devuelve el movimiento creado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.StockMovement, error) {
	if input.Type != entity.MovementTypeIn && input.Type != entity.MovementTypeOut {
		return nil, domain.ErrInvalidInput
	}
	if input.Quantity <= 0 || input.ProductID == "" || input.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Validar que el producto exista antes de abrir la transacción
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	movementDate := input.MovementDate
	if movementDate.IsZero() {
		movementDate = now
	}

	mov := &entity.StockMovement{
		ID:           uuid.New().String(),
		ProductID:    input.ProductID,
		UserID:       input.UserID,
		Type:         input.Type,
		Quantity:     input.Quantity,
		MovementDate: movementDate,
		Note:         input.Note,
		CreatedAt:    now,
	}

	// Sección crítica: leer-calcular-escribir bajo bloqueo de fila.
	// Commit si todo ok, Rollback si algo falla (TxRunner.Run lo hace).
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error {
		locked, err := productRepo.GetForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}

		newBalance := locked.Quantity + input.Quantity
		if input.Type == entity.MovementTypeOut {
			newBalance = locked.Quantity - input.Quantity
		}
		if newBalance < 0 {
			return &domain.InsufficientStockError{
				ProductName: locked.Name,
				Current:     locked.Quantity,
				Requested:   input.Quantity,
			}
		}

		mov.BalanceAfter = newBalance
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		return productRepo.UpdateQuantity(ctx, input.ProductID, newBalance)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterMovementFromRequest adapta el request HTTP al caso de uso RegisterMovement.
// Usar desde handlers HTTP que tengan el userID del token y dto.RegisterMovementRequest.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	var movementDate time.Time
	if in.MovementDate != "" {
		parsed, err := time.Parse("2006-01-02", in.MovementDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		movementDate = parsed
	}
	mov, err := uc.RegisterMovement(ctx, MovementInput{
		UserID:       userID,
		ProductID:    in.ProductID,
		Type:         in.Type,
		Quantity:     in.Quantity,
		MovementDate: movementDate,
		Note:         in.Note,
	})
	if err != nil {
		return nil, err
	}
	return toMovementResponse(mov), nil
}

func toMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:           m.ID,
		ProductID:    m.ProductID,
		UserID:       m.UserID,
		Type:         m.Type,
		Quantity:     m.Quantity,
		MovementDate: m.MovementDate.Format("2006-01-02"),
		BalanceAfter: m.BalanceAfter,
		Note:         m.Note,
		CreatedAt:    m.CreatedAt,
	}
}
