package memory

import (
	"sort"
	"time"

	"github.com/armasset/ledger-api/internal/domain/repository"
)

// inWindow evalúa la ventana de fechas: From/To inclusivos, Before estricto.
func inWindow(d time.Time, w repository.DateWindow) bool {
	if w.From != nil && d.Before(*w.From) {
		return false
	}
	if w.To != nil && d.After(*w.To) {
		return false
	}
	if w.Before != nil && !d.Before(*w.Before) {
		return false
	}
	return true
}

// assetHasType resuelve el filtro por categoría mirando el activo referenciado.
// El llamador debe sostener el mutex del Store.
func (s *Store) assetHasType(assetID, assetType string) bool {
	if assetType == "" {
		return true
	}
	a, ok := s.assets[assetID]
	return ok && a.Type == assetType
}

// sortMovements ordena por fecha descendente y desempata por fecha de creación,
// el mismo orden que las listas del almacén SQL.
func sortMovements[T any](items []T, date func(T) time.Time, created func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := date(items[i]), date(items[j])
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return created(items[i]).After(created(items[j]))
	})
}

// paginate aplica offset y limit; limit <= 0 significa sin tope.
func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
