// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Se usa en pruebas y para correr el servicio sin una base de datos.
package memory

import (
	"sync"

	"github.com/armasset/ledger-api/internal/domain/entity"
)

// Store guarda todo el estado bajo un único mutex. Los eventos de movimiento
// viven en slices append-only; el rollback transaccional trunca a la longitud
// previa, igual que descartar una tx nunca comprometida.
type Store struct {
	mu sync.Mutex

	bases  map[string]*entity.Base
	assets map[string]*entity.Asset
	users  map[string]*entity.User

	purchases    []*entity.Purchase
	transfers    []*entity.Transfer
	assignments  []*entity.Assignment
	expenditures []*entity.Expenditure
	audits       []*entity.AuditLog

	// Inyección de fallos para pruebas.
	CreateErr      error // falla el Create de cualquier evento de movimiento
	AuditCreateErr error // falla solo el Create del log de auditoría
	CommitErr      error // hace fallar el commit del TxRunner
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		bases:  make(map[string]*entity.Base),
		assets: make(map[string]*entity.Asset),
		users:  make(map[string]*entity.User),
	}
}

// acquire toma el mutex salvo que el llamador ya lo tenga (repos atados a una tx).
func (s *Store) acquire(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

type snapshot struct {
	purchases    int
	transfers    int
	assignments  int
	expenditures int
	audits       int
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		purchases:    len(s.purchases),
		transfers:    len(s.transfers),
		assignments:  len(s.assignments),
		expenditures: len(s.expenditures),
		audits:       len(s.audits),
	}
}

func (s *Store) restore(sn snapshot) {
	s.purchases = s.purchases[:sn.purchases]
	s.transfers = s.transfers[:sn.transfers]
	s.assignments = s.assignments[:sn.assignments]
	s.expenditures = s.expenditures[:sn.expenditures]
	s.audits = s.audits[:sn.audits]
}

// CountEvents devuelve cuántos eventos de movimiento hay en total (útil para
// verificar en pruebas que un rechazo no dejó rastro).
func (s *Store) CountEvents() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.purchases) + len(s.transfers) + len(s.assignments) + len(s.expenditures)
}

// CountAudits devuelve cuántos registros de auditoría hay.
func (s *Store) CountAudits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.audits)
}
