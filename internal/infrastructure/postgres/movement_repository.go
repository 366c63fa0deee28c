package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

var (
	_ repository.MovementRepository      = (*MovementRepo)(nil)
	_ repository.MovementQueryRepository = (*MovementRepo)(nil)
)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento. Una impresora inexistente (FK) devuelve domain.ErrNotFound.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (id, printer_id, item_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, m.ID, m.PrinterID, m.ItemID, m.Quantity, m.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("create movement", err)
	}
	return nil
}

// GetForUpdate obtiene el movimiento y bloquea la fila (SELECT FOR UPDATE).
func (r *MovementRepo) GetForUpdate(ctx context.Context, id string) (*entity.Movement, error) {
	query := `
		SELECT id, printer_id, item_id, quantity, created_at
		FROM movements WHERE id = $1
		FOR UPDATE`
	var m entity.Movement
	err := r.q.QueryRow(ctx, query, id).Scan(&m.ID, &m.PrinterID, &m.ItemID, &m.Quantity, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get movement", err)
	}
	return &m, nil
}

// Update reescribe printer_id, item_id y quantity. created_at es inmutable.
func (r *MovementRepo) Update(ctx context.Context, m *entity.Movement) error {
	query := `
		UPDATE movements SET printer_id = $2, item_id = $3, quantity = $4
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query, m.ID, m.PrinterID, m.ItemID, m.Quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return dbError("update movement", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return dbError("delete movement", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ── Lecturas desnormalizadas ────────────────────────────────────────────────

// El item se resuelve por fila con dos LEFT JOIN sobre item_id; si el id estuviera en ambas
// tablas gana toners, igual que el resolver.
const detailsSelect = `
	SELECT m.id, m.quantity, m.created_at,
	       p.id, COALESCE(p.name, ''), COALESCE(p.model, ''),
	       m.item_id,
	       CASE WHEN t.id IS NOT NULL THEN 'toner'
	            WHEN d.id IS NOT NULL THEN 'drum'
	            ELSE '' END,
	       COALESCE(t.name, d.name, ''),
	       CASE WHEN t.id IS NOT NULL THEN t.stock ELSE d.stock END,
	       CASE WHEN t.id IS NOT NULL THEN t.price ELSE d.price END
	FROM movements m
	LEFT JOIN printers p ON p.id = m.printer_id
	LEFT JOIN toners t ON t.id = m.item_id
	LEFT JOIN drums d ON d.id = m.item_id`

const detailsFrom = `
	FROM movements m
	LEFT JOIN toners t ON t.id = m.item_id
	LEFT JOIN drums d ON d.id = m.item_id`

// kindCondition devuelve la condición WHERE para un filtro por tipo ("" = sin filtro).
func kindCondition(kind entity.ItemKind) (string, error) {
	switch kind {
	case "":
		return "", nil
	case entity.ItemKindToner:
		return " WHERE t.id IS NOT NULL", nil
	case entity.ItemKindDrum:
		return " WHERE t.id IS NULL AND d.id IS NOT NULL", nil
	}
	return "", fmt.Errorf("%w: tipo de item %q", domain.ErrInvalidInput, kind)
}

// Count cuenta movimientos, opcionalmente por tipo de item.
func (r *MovementRepo) Count(ctx context.Context, filter entity.MovementFilter) (int, error) {
	where, err := kindCondition(filter.Kind)
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*)`+detailsFrom+where).Scan(&count); err != nil {
		return 0, dbError("count movements", err)
	}
	return count, nil
}

// GetDetails obtiene un movimiento con impresora e item.
func (r *MovementRepo) GetDetails(ctx context.Context, id string) (*entity.MovementDetails, error) {
	row := r.q.QueryRow(ctx, detailsSelect+` WHERE m.id = $1`, id)
	d, err := scanDetails(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get movement details", err)
	}
	return d, nil
}

// ListDetails lista movimientos ordenados por created_at, id.
func (r *MovementRepo) ListDetails(ctx context.Context, filter entity.MovementFilter) ([]*entity.MovementDetails, error) {
	where, err := kindCondition(filter.Kind)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	sb.WriteString(detailsSelect)
	sb.WriteString(where)
	sb.WriteString(` ORDER BY m.created_at ASC, m.id ASC`)
	args := []any{}
	pos := 1
	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", pos))
		args = append(args, filter.Limit)
		pos++
	}
	if filter.Offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET $%d", pos))
		args = append(args, filter.Offset)
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, dbError("list movements", err)
	}
	defer rows.Close()
	list := []*entity.MovementDetails{}
	for rows.Next() {
		d, err := scanDetails(rows)
		if err != nil {
			return nil, dbError("scan movement", err)
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("list movements", err)
	}
	return list, nil
}

func scanDetails(row pgx.Row) (*entity.MovementDetails, error) {
	var d entity.MovementDetails
	var printerID *string
	var kind string
	if err := row.Scan(
		&d.ID, &d.Quantity, &d.CreatedAt,
		&printerID, &d.Printer.Name, &d.Printer.Model,
		&d.Item.ID, &kind, &d.Item.Name, &d.Item.Stock, &d.Item.Price,
	); err != nil {
		return nil, err
	}
	if printerID != nil {
		d.Printer.ID = *printerID
	}
	d.Item.Kind = entity.ItemKind(kind)
	return &d, nil
}
