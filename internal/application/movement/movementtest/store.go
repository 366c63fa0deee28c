// Package movementtest provee un almacén en memoria que implementa los puertos del ledger
// (TxRunner, catálogo y lecturas) para pruebas de casos de uso y handlers HTTP.
// Run serializa las transacciones y revierte el estado si fn devuelve error.
package movementtest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jhoicas/printer-supplies-api/internal/domain"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/domain/repository"
)

var (
	_ repository.CatalogRepository       = (*Store)(nil)
	_ repository.MovementQueryRepository = (*Store)(nil)
)

// Store estado en memoria del catálogo y del ledger.
type Store struct {
	mu        sync.Mutex
	toners    map[string]*entity.StockItem
	drums     map[string]*entity.StockItem
	printers  map[string]*entity.Printer
	movements map[string]*entity.Movement

	// FailMovementCreate, si no es nil, hace fallar el INSERT del movimiento (después del UPDATE de stock).
	FailMovementCreate error
	// Commits cuenta las transacciones confirmadas.
	Commits int
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		toners:    map[string]*entity.StockItem{},
		drums:     map[string]*entity.StockItem{},
		printers:  map[string]*entity.Printer{},
		movements: map[string]*entity.Movement{},
	}
}

// AddToner agrega un toner y devuelve su id.
func (s *Store) AddToner(name string, stock int) string {
	return s.addItem(entity.ItemKindToner, uuid.New().String(), name, stock)
}

// AddDrum agrega un drum y devuelve su id.
func (s *Store) AddDrum(name string, stock int) string {
	return s.addItem(entity.ItemKindDrum, uuid.New().String(), name, stock)
}

// AddItemWithID agrega un item con un id fijo (permite simular colisiones entre catálogos).
func (s *Store) AddItemWithID(kind entity.ItemKind, id, name string, stock int) string {
	return s.addItem(kind, id, name, stock)
}

func (s *Store) addItem(kind entity.ItemKind, id, name string, stock int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := &entity.StockItem{Kind: kind, ID: id, Name: name, Stock: stock}
	if kind == entity.ItemKindToner {
		s.toners[id] = item
	} else {
		s.drums[id] = item
	}
	return id
}

// RemoveItem borra un item del catálogo (simula un borrado concurrente).
func (s *Store) RemoveItem(ref entity.ItemRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.itemTable(s.toners, s.drums, ref.Kind), ref.ID)
}

// AddPrinter agrega una impresora y devuelve su id.
func (s *Store) AddPrinter(name, model string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New().String()
	s.printers[id] = &entity.Printer{ID: id, Name: name, Model: model}
	return id
}

// Stock devuelve el stock actual del item (-1 si no existe).
func (s *Store) Stock(ref entity.ItemRef) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.itemTable(s.toners, s.drums, ref.Kind)[ref.ID]
	if !ok {
		return -1
	}
	return item.Stock
}

// Movements devuelve una copia de los movimientos guardados.
func (s *Store) Movements() []entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) itemTable(toners, drums map[string]*entity.StockItem, kind entity.ItemKind) map[string]*entity.StockItem {
	if kind == entity.ItemKindToner {
		return toners
	}
	return drums
}

// ── TxRunner ────────────────────────────────────────────────────────────────

// Run ejecuta fn sobre una copia del estado y la confirma solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &txState{
		store:     s,
		toners:    cloneItems(s.toners),
		drums:     cloneItems(s.drums),
		movements: cloneMovements(s.movements),
	}
	if err := fn(tx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.toners, s.drums, s.movements = tx.toners, tx.drums, tx.movements
	s.Commits++
	return nil
}

type txState struct {
	store     *Store
	toners    map[string]*entity.StockItem
	drums     map[string]*entity.StockItem
	movements map[string]*entity.Movement
}

func (t *txState) Increment(_ context.Context, ref entity.ItemRef, delta int) (int, error) {
	item, ok := t.store.itemTable(t.toners, t.drums, ref.Kind)[ref.ID]
	if !ok {
		return 0, domain.ErrItemNotFound
	}
	item.Stock += delta
	return item.Stock, nil
}

func (t *txState) LockItem(_ context.Context, ref entity.ItemRef) error {
	if _, ok := t.store.itemTable(t.toners, t.drums, ref.Kind)[ref.ID]; !ok {
		return domain.ErrItemNotFound
	}
	return nil
}

func (t *txState) Create(_ context.Context, m *entity.Movement) error {
	if t.store.FailMovementCreate != nil {
		return domain.NewDatabaseError("create movement", t.store.FailMovementCreate)
	}
	if _, ok := t.store.printers[m.PrinterID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	t.movements[m.ID] = &cp
	return nil
}

func (t *txState) GetForUpdate(_ context.Context, id string) (*entity.Movement, error) {
	m, ok := t.movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (t *txState) Update(_ context.Context, m *entity.Movement) error {
	if _, ok := t.movements[m.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *m
	t.movements[m.ID] = &cp
	return nil
}

func (t *txState) Delete(_ context.Context, id string) error {
	delete(t.movements, id)
	return nil
}

// ── CatalogRepository ───────────────────────────────────────────────────────

func (s *Store) TonerExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.toners[id]
	return ok, nil
}

func (s *Store) DrumExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drums[id]
	return ok, nil
}

func (s *Store) PrinterExists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.printers[id]
	return ok, nil
}

// ── MovementQueryRepository ─────────────────────────────────────────────────

func (s *Store) Count(ctx context.Context, filter entity.MovementFilter) (int, error) {
	list, err := s.ListDetails(ctx, entity.MovementFilter{Kind: filter.Kind})
	return len(list), err
}

func (s *Store) GetDetails(_ context.Context, id string) (*entity.MovementDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movements[id]
	if !ok {
		return nil, nil
	}
	return s.details(m), nil
}

func (s *Store) ListDetails(_ context.Context, filter entity.MovementFilter) ([]*entity.MovementDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*entity.MovementDetails, 0, len(s.movements))
	for _, m := range s.movements {
		d := s.details(m)
		if filter.Kind != "" && d.Item.Kind != filter.Kind {
			continue
		}
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].ID < list[j].ID
	})
	if filter.Offset > 0 {
		if filter.Offset >= len(list) {
			return []*entity.MovementDetails{}, nil
		}
		list = list[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}
	return list, nil
}

func (s *Store) details(m *entity.Movement) *entity.MovementDetails {
	d := &entity.MovementDetails{
		ID:        m.ID,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		Item:      entity.ItemSummary{ID: m.ItemID},
	}
	if p, ok := s.printers[m.PrinterID]; ok {
		d.Printer = entity.PrinterSummary{ID: p.ID, Name: p.Name, Model: p.Model}
	}
	item, ok := s.toners[m.ItemID]
	if !ok {
		item, ok = s.drums[m.ItemID]
	}
	if ok {
		stock := item.Stock
		d.Item.Kind = item.Kind
		d.Item.Name = item.Name
		d.Item.Stock = &stock
		d.Item.Price = item.Price
	}
	return d
}

func cloneItems(in map[string]*entity.StockItem) map[string]*entity.StockItem {
	out := make(map[string]*entity.StockItem, len(in))
	for k, v := range in {
		cp := *v
		out[k] = &cp
	}
	return out
}

func cloneMovements(in map[string]*entity.Movement) map[string]*entity.Movement {
	out := make(map[string]*entity.Movement, len(in))
	for k, v := range in {
		cp := *v
		out[k] = &cp
	}
	return out
}
