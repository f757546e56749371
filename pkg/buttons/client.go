// discordbuttons - action row components with callback routing for Discord bots
// License: MIT

package buttons

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"discordbuttons/pkg/components"
	"discordbuttons/pkg/config"
	"discordbuttons/pkg/logger"
)

// MaxActionRows is the number of action rows Discord accepts on one message.
const MaxActionRows = 5

var ErrTooManyRows = errors.New("can have up to 5 action rows in single message")

// Client owns the Discord gateway session and dispatches component
// interactions to the callbacks registered by SendMessage.
type Client struct {
	session       Session
	applicationID string

	callbacks components.Callbacks
	mu        sync.RWMutex

	// connected is written from gateway event handlers, which discordgo may
	// run on the goroutine calling Open or Close.
	connected   atomic.Bool
	removers    []func()
	lifecycleMu sync.Mutex
}

// NewClient creates a bot session from cfg. The gateway is not opened until Start.
func NewClient(cfg config.DiscordConfig, initial components.Callbacks) (*Client, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("discord bot token not configured")
	}
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return NewClientWithSession(session, cfg.ApplicationID, initial), nil
}

func NewClientWithSession(session Session, applicationID string, initial components.Callbacks) *Client {
	c := &Client{
		session:       session,
		applicationID: applicationID,
		callbacks:     make(components.Callbacks, len(initial)),
	}
	c.callbacks.Merge(initial)
	return c
}

// Start subscribes to gateway events and opens the connection.
func (c *Client) Start(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if len(c.removers) > 0 {
		return nil
	}

	logger.InfoCF("buttons", "Connecting to Discord gateway", map[string]interface{}{
		"application_id": c.applicationID,
	})

	c.removers = append(c.removers,
		c.session.AddHandler(c.onConnect),
		c.session.AddHandler(c.onDisconnect),
		c.session.AddHandler(c.onReady),
		c.session.AddHandler(c.onRateLimit),
		c.session.AddHandler(c.onInteractionCreate),
	)

	if err := ctx.Err(); err != nil {
		c.removeHandlersLocked()
		return err
	}
	if err := c.session.Open(); err != nil {
		c.removeHandlersLocked()
		return fmt.Errorf("failed to open discord gateway: %w", err)
	}
	return nil
}

func (c *Client) Stop(ctx context.Context) error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()

	if len(c.removers) == 0 {
		return nil
	}
	logger.InfoC("buttons", "Closing Discord gateway")
	c.removeHandlersLocked()
	c.connected.Store(false)
	return c.session.Close()
}

func (c *Client) removeHandlersLocked() {
	for _, remove := range c.removers {
		remove()
	}
	c.removers = nil
}

// SendMessage attaches rows to body and posts it to channelID. The rows'
// callbacks are registered before the message goes out, replacing any
// earlier callback with the same custom id.
//
// Only row validation is reported as an error. A failed send is logged and
// the returned error stays nil. The returned map holds the callbacks
// contributed by rows.
func (c *Client) SendMessage(ctx context.Context, channelID string, body *discordgo.MessageSend, rows ...*components.ActionRow) (components.Callbacks, error) {
	if len(rows) > MaxActionRows {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyRows, len(rows))
	}

	msg := &discordgo.MessageSend{}
	if body != nil {
		copied := *body
		msg = &copied
	}
	msg.Components = make([]discordgo.MessageComponent, 0, len(rows))

	rowCallbacks := make(components.Callbacks)
	for i, row := range rows {
		if row == nil {
			return nil, fmt.Errorf("action row %d is nil", i)
		}
		msg.Components = append(msg.Components, row.Component())
		rowCallbacks.Merge(row.Callbacks())
	}

	c.mu.Lock()
	c.callbacks.Merge(rowCallbacks)
	total := len(c.callbacks)
	c.mu.Unlock()

	logger.DebugCF("buttons", "Registered component callbacks", map[string]interface{}{
		logger.FieldChannelID: channelID,
		logger.FieldRows:      len(rows),
		logger.FieldCallbacks: total,
	})

	sent, err := c.session.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		logger.ErrorCF("buttons", "Failed to send message", map[string]interface{}{
			logger.FieldChannelID: channelID,
			logger.FieldError:     err.Error(),
		})
		return rowCallbacks, nil
	}

	fields := map[string]interface{}{
		logger.FieldChannelID: channelID,
		logger.FieldRows:      len(rows),
	}
	if sent != nil {
		fields["message_id"] = sent.ID
	}
	logger.InfoCF("buttons", "Message sent", fields)

	return rowCallbacks, nil
}

// HandleInteraction routes a component interaction to its callback and sends
// the callback's response. Other interaction types and unknown custom ids are
// ignored.
func (c *Client) HandleInteraction(i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil || i.Type != discordgo.InteractionMessageComponent {
		return
	}
	data, ok := i.Data.(discordgo.MessageComponentInteractionData)
	if !ok {
		return
	}

	c.mu.RLock()
	callback, exists := c.callbacks[data.CustomID]
	c.mu.RUnlock()

	if !exists || callback == nil {
		logger.DebugCF("buttons", "No callback for component interaction", interactionFields(i, data.CustomID))
		return
	}

	resp, ok := c.invoke(callback, i, data.CustomID)
	if !ok || resp == nil {
		return
	}

	if err := c.session.InteractionRespond(i.Interaction, resp); err != nil {
		fields := interactionFields(i, data.CustomID)
		fields[logger.FieldError] = err.Error()
		logger.ErrorCF("buttons", "Failed to respond to interaction", fields)
	}
}

// interactionFields describes who clicked what. Guild interactions carry the
// user on Member, direct messages on User.
func interactionFields(i *discordgo.InteractionCreate, customID string) map[string]interface{} {
	fields := map[string]interface{}{
		logger.FieldCustomID:      customID,
		logger.FieldInteractionID: i.ID,
	}
	if i.GuildID != "" {
		fields[logger.FieldGuildID] = i.GuildID
	}
	switch {
	case i.Member != nil && i.Member.User != nil:
		fields[logger.FieldUserID] = i.Member.User.ID
	case i.User != nil:
		fields[logger.FieldUserID] = i.User.ID
	}
	return fields
}

func (c *Client) invoke(callback components.Callback, i *discordgo.InteractionCreate, customID string) (resp *discordgo.InteractionResponse, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			fields := interactionFields(i, customID)
			fields["panic"] = fmt.Sprintf("%v", r)
			logger.ErrorCF("buttons", "Recovered panic in component callback", fields)
			resp, ok = nil, false
		}
	}()
	return callback(i), true
}

// Callbacks returns a snapshot of every registered callback.
func (c *Client) Callbacks() components.Callbacks {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(components.Callbacks, len(c.callbacks))
	out.Merge(c.callbacks)
	return out
}

func (c *Client) CallbackCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.callbacks)
}

func (c *Client) Connected() bool {
	return c.connected.Load()
}

func (c *Client) ApplicationID() string {
	return c.applicationID
}

func (c *Client) onConnect(_ *discordgo.Session, _ *discordgo.Connect) {
	c.connected.Store(true)
	logger.InfoC("buttons", "Connection established")
}

func (c *Client) onDisconnect(_ *discordgo.Session, _ *discordgo.Disconnect) {
	c.connected.Store(false)
	logger.ErrorC("buttons", "Disconnected from Discord gateway")
}

func (c *Client) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	fields := map[string]interface{}{"session_id": r.SessionID}
	if r.User != nil {
		fields["username"] = r.User.Username
	}
	logger.InfoCF("buttons", "Discord gateway ready", fields)
}

func (c *Client) onRateLimit(_ *discordgo.Session, r *discordgo.RateLimit) {
	fields := map[string]interface{}{"url": r.URL}
	if r.TooManyRequests != nil {
		fields["retry_after"] = r.RetryAfter.String()
	}
	logger.WarnCF("buttons", "Rate limited by Discord", fields)
}

func (c *Client) onInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	c.HandleInteraction(i)
}
