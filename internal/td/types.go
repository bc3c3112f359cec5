package td

// ListID identifies a logical chat list on the Telegram side.
type ListID string

const (
	// ListMain is the only list whose ordering the cache tracks.
	ListMain    ListID = "main"
	ListArchive ListID = "archive"
)

// ChatKind classifies a chat. Mirrors TDLib's chatType variants.
type ChatKind string

const (
	KindPrivate    ChatKind = "private"
	KindBasicGroup ChatKind = "group"
	KindSupergroup ChatKind = "supergroup"
	KindChannel    ChatKind = "channel"
	KindSecret     ChatKind = "secret"
	KindUnknown    ChatKind = "unknown"
)

// ChatPosition describes where a chat sits in one list. Order is an opaque
// magnitude assigned by the backend; zero means the chat is not in the list.
type ChatPosition struct {
	List   ListID
	Order  uint64
	Pinned bool
}

// Chat is a full chat record as delivered by the backend.
type Chat struct {
	ID          int64
	Title       string
	Kind        ChatKind
	LastMessage *Message
	Positions   []ChatPosition
}

// Message is a message summary. Text is the extracted text content; it is
// empty for content kinds the daemon does not render as text.
type Message struct {
	ID     int64
	ChatID int64
	Date   int64
	Text   string
}

// StickerSetInfo is a short sticker set description.
type StickerSetInfo struct {
	ID    int64
	Title string
	Name  string
	Size  int32
}

// StickerSets is the response to GetInstalledStickerSets.
type StickerSets struct {
	Sets []StickerSetInfo
}

// StickerSet is a full sticker set with its stickers.
type StickerSet struct {
	ID       int64
	Title    string
	Name     string
	Stickers []Sticker
}

// Sticker is a single sticker inside a set.
type Sticker struct {
	FileID int32
	Emoji  string
	Width  int32
	Height int32
}

// AuthState mirrors TDLib's authorizationState variants.
type AuthState string

const (
	AuthStateWaitTdlibParameters AuthState = "authorizationStateWaitTdlibParameters"
	AuthStateWaitPhoneNumber     AuthState = "authorizationStateWaitPhoneNumber"
	AuthStateWaitCode            AuthState = "authorizationStateWaitCode"
	AuthStateReady               AuthState = "authorizationStateReady"
	AuthStateLoggingOut          AuthState = "authorizationStateLoggingOut"
	AuthStateClosing             AuthState = "authorizationStateClosing"
	AuthStateClosed              AuthState = "authorizationStateClosed"
)

// Object is any value the backend can deliver: a response to a request or an
// update pushed on the stream.
type Object interface {
	isObject()
}

// Ok is the empty acknowledgement response.
type Ok struct{}

// Error is a backend rejection of a single request.
type Error struct {
	Code    int32
	Message string
}

// ErrorCodeNotFound is the code Telegram uses both for "no such entity" and,
// on loadChats, for "the list has no further entries".
const ErrorCodeNotFound = 404

func (Ok) isObject()          {}
func (Error) isObject()       {}
func (Chat) isObject()        {}
func (Message) isObject()     {}
func (StickerSets) isObject() {}
func (StickerSet) isObject()  {}

// Update is a tagged event pushed by the backend independently of requests.
type Update interface {
	Object
	isUpdate()
}

// UpdateNewChat announces a chat the client did not know about yet.
type UpdateNewChat struct {
	Chat Chat
}

// UpdateChatTitle changes a chat's title.
type UpdateChatTitle struct {
	ChatID int64
	Title  string
}

// UpdateChatLastMessage replaces a chat's last message together with the full
// position set (not a delta).
type UpdateChatLastMessage struct {
	ChatID      int64
	LastMessage *Message
	Positions   []ChatPosition
}

// UpdateChatPosition changes a chat's position in a single list.
type UpdateChatPosition struct {
	ChatID   int64
	Position ChatPosition
}

// UpdateAuthorizationState signals an authorization flow transition.
type UpdateAuthorizationState struct {
	State AuthState
}

func (*UpdateNewChat) isObject()            {}
func (*UpdateNewChat) isUpdate()            {}
func (*UpdateChatTitle) isObject()          {}
func (*UpdateChatTitle) isUpdate()          {}
func (*UpdateChatLastMessage) isObject()    {}
func (*UpdateChatLastMessage) isUpdate()    {}
func (*UpdateChatPosition) isObject()       {}
func (*UpdateChatPosition) isUpdate()       {}
func (*UpdateAuthorizationState) isObject() {}
func (*UpdateAuthorizationState) isUpdate() {}
