// Package pagination derives page, offset and range values for list endpoints.
//
// All functions are pure and never fail; invalid inputs are normalized to the
// defaults (page 1, DefaultPageItemLimit items, no start offset).
package pagination

import "github.com/dmitrymomot/formrequest/pkg/input"

const (
	// PageKey is the request field carrying the page number.
	PageKey = "page"
	// DefaultPageItemLimit is used when no positive limit is configured.
	DefaultPageItemLimit = 10
)

// Entity data keys written by Entry and read by FromEntity.
const (
	EntityPageKey          = "page"
	EntityPageItemLimitKey = "pageItemLimit"
	EntityStartPositionKey = "startPosition"
)

// State is a normalized pagination position.
type State struct {
	Page                int
	PageItemLimit       int
	StartPositionOffset int
}

// New normalizes the given values.
func New(page, pageItemLimit, startPositionOffset int) State {
	if page < 1 {
		page = 1
	}
	if pageItemLimit < 1 {
		pageItemLimit = DefaultPageItemLimit
	}
	if startPositionOffset < 0 {
		startPositionOffset = 0
	}
	return State{
		Page:                page,
		PageItemLimit:       pageItemLimit,
		StartPositionOffset: startPositionOffset,
	}
}

// Offset is the number of items before the current page.
func (s State) Offset() int {
	return (s.normalized().Page - 1) * s.normalized().PageItemLimit
}

// Start is the zero-based index of the first item: the offset plus the
// start position offset, shifted by extra.
func (s State) Start(extra int) int {
	return s.Offset() + s.normalized().StartPositionOffset + extra
}

// End is the zero-based index of the last item, shifted by extra.
func (s State) End(extra int) int {
	return s.Start(extra) + s.normalized().PageItemLimit - 1
}

// Limit is the page size.
func (s State) Limit() int {
	return s.normalized().PageItemLimit
}

// Entry returns the values a pagination request contributes to its entity.
func (s State) Entry() map[string]any {
	n := s.normalized()
	return map[string]any{
		EntityPageKey:          n.Page,
		EntityPageItemLimitKey: n.PageItemLimit,
		EntityStartPositionKey: n.StartPositionOffset,
	}
}

func (s State) normalized() State {
	return New(s.Page, s.PageItemLimit, s.StartPositionOffset)
}

// PageInput declares the page field: optional, but an integer when sent.
func PageInput() *input.Input {
	return input.Field(PageKey).Filled().Integer()
}
