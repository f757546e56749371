package components

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// MaxRowComponents is the number of components Discord accepts in one action row.
const MaxRowComponents = 5

var (
	ErrEmptyRow          = errors.New("action row needs at least one component")
	ErrTooManyComponents = errors.New("can have up to 5 buttons in action row")
	ErrMixedRow          = errors.New("a select menu must be the only component in its action row")
	ErrNilComponent      = errors.New("action row component is nil")
)

// ActionRow is one horizontal row of components together with the callbacks
// of its interactive members.
type ActionRow struct {
	elements  []Element
	callbacks Callbacks
}

// NewActionRow groups buttons and link buttons into a row. A select menu is
// also accepted as long as it is the sole element.
func NewActionRow(elements ...Element) (*ActionRow, error) {
	if len(elements) == 0 {
		return nil, ErrEmptyRow
	}
	if len(elements) > MaxRowComponents {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyComponents, len(elements))
	}

	for _, el := range elements {
		if isNilElement(el) {
			return nil, ErrNilComponent
		}
		if _, isMenu := el.(*SelectMenu); isMenu && len(elements) > 1 {
			return nil, ErrMixedRow
		}
	}

	row := &ActionRow{
		elements:  append([]Element(nil), elements...),
		callbacks: make(Callbacks, len(elements)),
	}
	for _, el := range elements {
		if in, ok := el.(Interactive); ok {
			row.callbacks[in.CustomID()] = in.Callback()
		}
	}
	return row, nil
}

// isNilElement also catches nil pointers of this package's types stored in
// a non-nil interface.
func isNilElement(el Element) bool {
	switch v := el.(type) {
	case nil:
		return true
	case *Button:
		return v == nil
	case *LinkButton:
		return v == nil
	case *SelectMenu:
		return v == nil
	}
	return false
}

// NewSelectMenuRow wraps a single select menu in a row. menu must not be nil.
func NewSelectMenuRow(menu *SelectMenu) *ActionRow {
	return &ActionRow{
		elements:  []Element{menu},
		callbacks: Callbacks{menu.CustomID(): menu.Callback()},
	}
}

// MustActionRow is NewActionRow for rows whose shape is fixed at compile time.
func MustActionRow(elements ...Element) *ActionRow {
	row, err := NewActionRow(elements...)
	if err != nil {
		panic(err)
	}
	return row
}

func (r *ActionRow) Component() discordgo.ActionsRow {
	children := make([]discordgo.MessageComponent, 0, len(r.elements))
	for _, el := range r.elements {
		children = append(children, el.Component())
	}
	return discordgo.ActionsRow{Components: children}
}

// Callbacks returns a copy of the row's id -> callback entries. Link buttons
// have no entry.
func (r *ActionRow) Callbacks() Callbacks {
	out := make(Callbacks, len(r.callbacks))
	out.Merge(r.callbacks)
	return out
}

func (r *ActionRow) Len() int {
	return len(r.elements)
}
