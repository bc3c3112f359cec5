package td

// Request is a call to the Telegram backend.
type Request interface {
	tdType() string
}

// LoadChats asks the backend to load up to Limit more chats of the given
// list. The response is only an acknowledgement; the chats themselves arrive
// through the update stream.
type LoadChats struct {
	List  ListID
	Limit int32
}

// GetChat fetches a single chat by id.
type GetChat struct {
	ChatID int64
}

// SendMessage sends a text message to a chat.
type SendMessage struct {
	ChatID              int64
	Text                string
	ReplyToMessageID    int64
	DisableNotification bool
}

// SendSticker sends a sticker to a chat by file id.
type SendSticker struct {
	ChatID        int64
	StickerFileID int32
}

// GetInstalledStickerSets lists the account's installed sticker sets.
type GetInstalledStickerSets struct{}

// GetStickerSet fetches a full sticker set by id.
type GetStickerSet struct {
	SetID int64
}

// SetAuthenticationPhoneNumber submits the account phone number.
type SetAuthenticationPhoneNumber struct {
	PhoneNumber string
}

// CheckAuthenticationCode submits the login code sent to the account.
type CheckAuthenticationCode struct {
	Code string
}

// SetTdlibParameters answers the backend's parameter handshake.
type SetTdlibParameters struct {
	DatabaseDirectory  string
	FilesDirectory     string
	UseTestDC          bool
	UseMessageDatabase bool
	UseSecretChats     bool
	APIID              int32
	APIHash            string
	SystemLanguageCode string
	DeviceModel        string
	ApplicationVersion string
}

// SetLogVerbosityLevel adjusts the backend's internal log verbosity.
type SetLogVerbosityLevel struct {
	Level int32
}

func (LoadChats) tdType() string                    { return "loadChats" }
func (GetChat) tdType() string                      { return "getChat" }
func (SendMessage) tdType() string                  { return "sendMessage" }
func (SendSticker) tdType() string                  { return "sendMessage" }
func (GetInstalledStickerSets) tdType() string      { return "getInstalledStickerSets" }
func (GetStickerSet) tdType() string                { return "getStickerSet" }
func (SetAuthenticationPhoneNumber) tdType() string { return "setAuthenticationPhoneNumber" }
func (CheckAuthenticationCode) tdType() string      { return "checkAuthenticationCode" }
func (SetTdlibParameters) tdType() string           { return "setTdlibParameters" }
func (SetLogVerbosityLevel) tdType() string         { return "setLogVerbosityLevel" }

// ResultHandler receives the result of a single request: Ok, Error, or a
// request-specific payload.
type ResultHandler func(Object)

// Client is the asynchronous interface to the Telegram backend. Send never
// blocks the caller; fn is invoked later from the receive loop once the
// response arrives. fn may be nil for fire-and-forget requests.
type Client interface {
	Send(req Request, fn ResultHandler)
}
