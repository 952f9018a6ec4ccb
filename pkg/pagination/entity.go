package pagination

import "github.com/dmitrymomot/formrequest/pkg/entity"

// FromEntity rebuilds a State from data produced by State.Entry.
// Missing values fall back to the defaults.
func FromEntity(e *entity.Entity) State {
	page := e.Int(EntityPageKey, 1)
	limit := e.Int(EntityPageItemLimitKey, DefaultPageItemLimit)
	shift := e.Int(EntityStartPositionKey, 0)
	return New(page, limit, shift)
}
