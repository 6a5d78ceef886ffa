package domain

// ChatEvent is one inbound update from the chat platform. Exactly one of
// Message or Callback is set. Events are read-only and live for the duration
// of a single processing cycle.
type ChatEvent struct {
	Message  *MessageEvent
	Callback *CallbackEvent
}

// MessageEvent is an inbound text message.
type MessageEvent struct {
	ChatID int64
	Text   string
}

// CallbackEvent is an inline-keyboard button press.
type CallbackEvent struct {
	ID         string
	FromChatID int64
	Data       string
}

// ResolvedMedia is the structured result of one media resolution. Every
// field has a defined empty default; partial results are valid.
type ResolvedMedia struct {
	Title           string
	Creator         string
	ThumbnailURL    string
	VideoCandidates []string
	AudioURL        string
	ImageURLs       []string
}

// PlanKind discriminates the DeliveryPlan variants.
type PlanKind int

const (
	PlanUnresolvable PlanKind = iota
	PlanVideo
	PlanImageSingle
	PlanImageAlbum
)

// DeliveryPlan describes what the gateway should send for one resolution.
type DeliveryPlan struct {
	Kind    PlanKind
	URL     string      // video or single-image URL
	Caption string      // caption for video / single image
	Items   []AlbumItem // album items, caption on the first item only
}

// AlbumItem is one entry of a grouped media send.
type AlbumItem struct {
	URL     string
	Caption string
}

// InlineKeyboard is a grid of inline buttons attached to a message.
type InlineKeyboard [][]InlineButton

// InlineButton is a single inline-keyboard button. Exactly one of URL or
// CallbackData should be set.
type InlineButton struct {
	Text         string
	URL          string
	CallbackData string
}

// WebhookInfo reports the currently registered webhook.
type WebhookInfo struct {
	URL                string
	PendingUpdateCount int
	LastErrorMessage   string
}
