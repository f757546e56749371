package components

import "github.com/bwmarrin/discordgo"

// Button is a clickable button with a generated custom id.
type Button struct {
	record   discordgo.Button
	callback Callback
}

// NewButton returns a button with the given style and label. emoji may be nil.
func NewButton(callback Callback, style discordgo.ButtonStyle, label string, emoji *discordgo.ComponentEmoji) *Button {
	return &Button{
		record: discordgo.Button{
			Label:    label,
			Style:    style,
			Emoji:    copyEmoji(emoji),
			CustomID: newCustomID(),
		},
		callback: callback,
	}
}

func (b *Button) Component() discordgo.MessageComponent {
	record := b.record
	record.Emoji = copyEmoji(b.record.Emoji)
	return record
}

func (b *Button) CustomID() string {
	return b.record.CustomID
}

func (b *Button) Callback() Callback {
	return b.callback
}

// LinkButton opens a URL and never produces an interaction.
type LinkButton struct {
	record discordgo.Button
}

func NewLinkButton(label, url string, emoji *discordgo.ComponentEmoji) *LinkButton {
	return &LinkButton{
		record: discordgo.Button{
			Label: label,
			Style: discordgo.LinkButton,
			Emoji: copyEmoji(emoji),
			URL:   url,
		},
	}
}

func (b *LinkButton) Component() discordgo.MessageComponent {
	record := b.record
	record.Emoji = copyEmoji(b.record.Emoji)
	return record
}

func (b *LinkButton) URL() string {
	return b.record.URL
}
