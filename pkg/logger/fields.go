package logger

const (
	FieldChannelID     = "channel_id"
	FieldCustomID      = "custom_id"
	FieldInteractionID = "interaction_id"
	FieldGuildID       = "guild_id"
	FieldUserID        = "user_id"
	FieldRows          = "rows"
	FieldCallbacks     = "callbacks"
	FieldError         = "error"
)
