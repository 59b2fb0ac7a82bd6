package ordering

import (
	"github.com/jhoicas/restaurante-rb-api/internal/domain"
	"github.com/jhoicas/restaurante-rb-api/internal/domain/entity"
)

// AccessPolicy decide si un caller puede ver una orden de ownerUserID.
type AccessPolicy interface {
	CanView(caller entity.Caller, ownerUserID int64) bool
}

// OwnerOrAdmin permite ver la orden a su dueño y a cualquier administrador.
type OwnerOrAdmin struct{}

// CanView implementa AccessPolicy.
func (OwnerOrAdmin) CanView(caller entity.Caller, ownerUserID int64) bool {
	if caller.IsAdmin() {
		return true
	}
	return caller.Authenticated() && caller.UserID == ownerUserID
}

// Authorize envuelve CanView devolviendo domain.ErrForbidden.
func Authorize(p AccessPolicy, caller entity.Caller, ownerUserID int64) error {
	if p.CanView(caller, ownerUserID) {
		return nil
	}
	return domain.ErrForbidden
}
