package components

import "github.com/bwmarrin/discordgo"

// SelectMenu is a string select menu. Users may pick any number of options
// from one up to all of them.
type SelectMenu struct {
	record   discordgo.SelectMenu
	callback Callback
}

func NewSelectMenu(callback Callback, options []discordgo.SelectMenuOption, placeholder string) *SelectMenu {
	minValues := 1
	opts := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		opt.Emoji = copyEmoji(opt.Emoji)
		opts[i] = opt
	}

	return &SelectMenu{
		record: discordgo.SelectMenu{
			MenuType:    discordgo.StringSelectMenu,
			CustomID:    newCustomID(),
			Placeholder: placeholder,
			MinValues:   &minValues,
			MaxValues:   len(options),
			Options:     opts,
		},
		callback: callback,
	}
}

func (m *SelectMenu) Component() discordgo.MessageComponent {
	record := m.record
	minValues := *m.record.MinValues
	record.MinValues = &minValues
	record.Options = make([]discordgo.SelectMenuOption, len(m.record.Options))
	for i, opt := range m.record.Options {
		opt.Emoji = copyEmoji(opt.Emoji)
		record.Options[i] = opt
	}
	return record
}

func (m *SelectMenu) CustomID() string {
	return m.record.CustomID
}

func (m *SelectMenu) Callback() Callback {
	return m.callback
}
