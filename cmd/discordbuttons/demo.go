package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"discordbuttons/pkg/buttons"
	"discordbuttons/pkg/components"
	"discordbuttons/pkg/logger"
)

var demoOptions = []discordgo.SelectMenuOption{
	{
		Label:       "Rogue",
		Value:       "rogue",
		Description: "Sneak n stab",
		Emoji:       &discordgo.ComponentEmoji{Name: "rogue", ID: "625891304148303894"},
	},
	{
		Label:       "Mage",
		Value:       "mage",
		Description: "Turn 'em into a sheep",
		Emoji:       &discordgo.ComponentEmoji{Name: "mage", ID: "625891304081063986"},
	},
	{
		Label:       "Priest",
		Value:       "priest",
		Description: "You get heals when I'm done doing damage",
		Emoji:       &discordgo.ComponentEmoji{Name: "priest", ID: "625891303795982337"},
	},
}

// echoCustomID answers with the custom id of the clicked component.
func echoCustomID(i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: i.MessageComponentData().CustomID,
		},
	}
}

// echoSelection answers with the picked select menu values.
func echoSelection(i *discordgo.InteractionCreate) *discordgo.InteractionResponse {
	data := i.MessageComponentData()
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: fmt.Sprintf("%s: %v", data.CustomID, data.Values),
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}

func buildDemoRows() ([]*components.ActionRow, error) {
	fire := &discordgo.ComponentEmoji{Name: "🔥"}

	menu := components.NewSelectMenu(echoSelection, demoOptions, "Make a selection")
	ok := components.NewButton(echoCustomID, discordgo.SuccessButton, "ok", fire)
	link := components.NewLinkButton("ok", "https://google.com/", fire)
	closeButton := components.NewButton(echoCustomID, discordgo.DangerButton, "close", nil)

	buttonRow, err := components.NewActionRow(ok, link, closeButton)
	if err != nil {
		return nil, err
	}
	return []*components.ActionRow{components.NewSelectMenuRow(menu), buttonRow}, nil
}

func sendDemoMessage(ctx context.Context, client *buttons.Client, channelID string) error {
	rows, err := buildDemoRows()
	if err != nil {
		return fmt.Errorf("build demo rows: %w", err)
	}

	body := &discordgo.MessageSend{
		Content: "To jest fajna wiadomość :)",
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Kliknij w ciastko!",
			Description: "Click! Click! Click!",
			Color:       15105570,
			URL:         "https://orteil.dashnet.org/cookieclicker/",
		}},
	}

	callbacks, err := client.SendMessage(ctx, channelID, body, rows...)
	if err != nil {
		return err
	}
	logger.InfoCF("demo", "Demo message submitted", map[string]interface{}{
		logger.FieldChannelID: channelID,
		logger.FieldCallbacks: callbacks.IDs(),
	})
	return nil
}
