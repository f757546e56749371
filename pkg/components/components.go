// Package components builds Discord message components (buttons, link
// buttons, select menus and the action rows that hold them) and keeps track
// of the callback attached to every interactive one.
package components

import (
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

// Callback produces the response for a component interaction. A nil
// response means nothing is sent back.
type Callback func(i *discordgo.InteractionCreate) *discordgo.InteractionResponse

// Callbacks maps a component custom id to its callback.
type Callbacks map[string]Callback

// Merge copies every entry of other into c. Entries from other replace
// existing entries with the same id.
func (c Callbacks) Merge(other Callbacks) {
	for id, cb := range other {
		c[id] = cb
	}
}

// IDs returns the registered custom ids in sorted order.
func (c Callbacks) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Element is anything that can be placed in an action row.
type Element interface {
	Component() discordgo.MessageComponent
}

// Interactive is an Element whose interactions are routed back to a callback.
type Interactive interface {
	Element
	CustomID() string
	Callback() Callback
}

func newCustomID() string {
	return uuid.NewString()
}

func copyEmoji(emoji *discordgo.ComponentEmoji) *discordgo.ComponentEmoji {
	if emoji == nil {
		return nil
	}
	e := *emoji
	return &e
}
