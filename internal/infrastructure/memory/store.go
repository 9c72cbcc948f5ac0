// Package memory implementa los puertos de persistencia de stock en memoria.
// Aplica las mismas reglas que el esquema PostgreSQL (unicidad parcial sobre filas
// activas, CHECK de cantidades, transacciones todo-o-nada). Es el doble de prueba
// de los casos de uso y del API HTTP; cmd/api solo usa PostgreSQL.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/domain/entity"
	"github.com/jhoicas/stock-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

// ErrInjected error devuelto por los fallos provocados con FailMovementCreateAfter.
var ErrInjected = errors.New("memory: fallo inyectado")

type dataset struct {
	merchants map[int64]entity.MerchantSummary
	products  map[int64]entity.Product
	variants  map[int64]entity.Variant
	locations map[int64]entity.Location
	items     map[int64]entity.StockItem
	movements map[int64]entity.Movement
	lastID    int64
}

func newDataset() *dataset {
	return &dataset{
		merchants: map[int64]entity.MerchantSummary{},
		products:  map[int64]entity.Product{},
		variants:  map[int64]entity.Variant{},
		locations: map[int64]entity.Location{},
		items:     map[int64]entity.StockItem{},
		movements: map[int64]entity.Movement{},
	}
}

func (d *dataset) nextID() int64 {
	d.lastID++
	return d.lastID
}

// clone copia el conjunto de datos; las filas se guardan por valor y sin resúmenes.
func (d *dataset) clone() *dataset {
	c := newDataset()
	c.lastID = d.lastID
	for k, v := range d.merchants {
		c.merchants[k] = v
	}
	for k, v := range d.products {
		c.products[k] = v
	}
	for k, v := range d.variants {
		c.variants[k] = v
	}
	for k, v := range d.locations {
		c.locations[k] = v
	}
	for k, v := range d.items {
		c.items[k] = v
	}
	for k, v := range d.movements {
		c.movements[k] = v
	}
	return c
}

// Store base de datos en memoria protegida por un mutex.
// Dentro de Run solo deben usarse los repositorios recibidos por fn: el lock se mantiene
// durante toda la transacción.
type Store struct {
	mu   sync.Mutex
	data *dataset

	failMovementAfter int // -1 = sin fallo programado
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{data: newDataset(), failMovementAfter: -1}
}

// FailMovementCreateAfter programa un fallo: las siguientes n inserciones de movimientos
// funcionan y la n+1 devuelve ErrInjected. Sirve para verificar el rollback de traslados.
func (s *Store) FailMovementCreateAfter(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failMovementAfter = n
}

// Run ejecuta fn sobre una copia del estado y la publica solo si fn no devuelve error.
func (s *Store) Run(ctx context.Context, fn func(
	itemRepo repository.StockItemRepository,
	movRepo repository.MovementRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.data.clone()
	if err := fn(&StockItemRepo{s: s, tx: tx}, &MovementRepo{s: s, tx: tx}); err != nil {
		return err
	}
	s.data = tx
	return nil
}

// view ejecuta fn sobre el estado de la tx, o sobre el estado publicado tomando el lock.
func (s *Store) view(tx *dataset, fn func(d *dataset) error) error {
	if tx != nil {
		return fn(tx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// Repositories devuelve los adaptadores fuera de transacción.
func (s *Store) Repositories() (*LocationRepo, *StockItemRepo, *MovementRepo, *CatalogRepo) {
	return &LocationRepo{s: s}, &StockItemRepo{s: s}, &MovementRepo{s: s}, &CatalogRepo{s: s}
}

// SeedMerchant registra un comercio y devuelve su id.
func (s *Store) SeedMerchant(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.data.nextID()
	s.data.merchants[id] = entity.MerchantSummary{ID: id, Name: name}
	return id
}

// SeedProduct registra un producto del catálogo.
func (s *Store) SeedProduct(merchantID int64, name string, active bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.data.nextID()
	s.data.products[id] = entity.Product{ID: id, MerchantID: merchantID, Name: name, IsActive: active}
	return id
}

// SeedVariant registra una variante de producto.
func (s *Store) SeedVariant(productID int64, name string, active bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.data.nextID()
	s.data.variants[id] = entity.Variant{ID: id, ProductID: productID, Name: name, IsActive: active}
	return id
}
