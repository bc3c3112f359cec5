package td

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type wireProbe struct {
	Type  string `json:"@type"`
	Extra string `json:"@extra"`
}

type wireError struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

type wireChat struct {
	ID          int64              `json:"id"`
	Title       string             `json:"title"`
	Type        json.RawMessage    `json:"type"`
	LastMessage *wireMessage       `json:"last_message"`
	Positions   []wireChatPosition `json:"positions"`
}

type wireChatType struct {
	Type      string `json:"@type"`
	IsChannel bool   `json:"is_channel"`
}

type wireChatPosition struct {
	List     wireProbe `json:"list"`
	Order    string    `json:"order"`
	IsPinned bool      `json:"is_pinned"`
}

type wireMessage struct {
	ID      int64           `json:"id"`
	ChatID  int64           `json:"chat_id"`
	Date    int64           `json:"date"`
	Content json.RawMessage `json:"content"`
}

type wireMessageText struct {
	Type string `json:"@type"`
	Text struct {
		Text string `json:"text"`
	} `json:"text"`
}

type wireStickerSets struct {
	Sets []wireStickerSetInfo `json:"sets"`
}

type wireStickerSetInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Name  string `json:"name"`
	Size  int32  `json:"size"`
}

type wireStickerSet struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Name     string        `json:"name"`
	Stickers []wireSticker `json:"stickers"`
}

type wireSticker struct {
	Emoji  string `json:"emoji"`
	Width  int32  `json:"width"`
	Height int32  `json:"height"`
	Sticker struct {
		ID int32 `json:"id"`
	} `json:"sticker"`
}

// ParseObject decodes one backend payload into a typed Object and the echoed
// "@extra" correlation token. Payloads of kinds the daemon does not handle
// return a nil Object with no error; the caller drops them.
func ParseObject(data []byte) (Object, string, error) {
	var probe wireProbe
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, "", fmt.Errorf("decode payload: %w", err)
	}

	switch probe.Type {
	case "ok":
		return Ok{}, probe.Extra, nil

	case "error":
		var w wireError
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode error payload: %w", err)
		}
		return Error{Code: w.Code, Message: w.Message}, probe.Extra, nil

	case "chat":
		var w wireChat
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode chat: %w", err)
		}
		return chatFromWire(&w), probe.Extra, nil

	case "message":
		var w wireMessage
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode message: %w", err)
		}
		return *messageFromWire(&w), probe.Extra, nil

	case "stickerSets":
		var w wireStickerSets
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode sticker sets: %w", err)
		}
		out := StickerSets{Sets: make([]StickerSetInfo, 0, len(w.Sets))}
		for _, s := range w.Sets {
			id, _ := strconv.ParseInt(s.ID, 10, 64)
			out.Sets = append(out.Sets, StickerSetInfo{ID: id, Title: s.Title, Name: s.Name, Size: s.Size})
		}
		return out, probe.Extra, nil

	case "stickerSet":
		var w wireStickerSet
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode sticker set: %w", err)
		}
		id, _ := strconv.ParseInt(w.ID, 10, 64)
		out := StickerSet{ID: id, Title: w.Title, Name: w.Name}
		for _, s := range w.Stickers {
			out.Stickers = append(out.Stickers, Sticker{
				FileID: s.Sticker.ID,
				Emoji:  s.Emoji,
				Width:  s.Width,
				Height: s.Height,
			})
		}
		return out, probe.Extra, nil

	case "updateNewChat":
		var w struct {
			Chat wireChat `json:"chat"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode updateNewChat: %w", err)
		}
		return &UpdateNewChat{Chat: chatFromWire(&w.Chat)}, probe.Extra, nil

	case "updateChatTitle":
		var w struct {
			ChatID int64  `json:"chat_id"`
			Title  string `json:"title"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode updateChatTitle: %w", err)
		}
		return &UpdateChatTitle{ChatID: w.ChatID, Title: w.Title}, probe.Extra, nil

	case "updateChatLastMessage":
		var w struct {
			ChatID      int64              `json:"chat_id"`
			LastMessage *wireMessage       `json:"last_message"`
			Positions   []wireChatPosition `json:"positions"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode updateChatLastMessage: %w", err)
		}
		return &UpdateChatLastMessage{
			ChatID:      w.ChatID,
			LastMessage: messageFromWire(w.LastMessage),
			Positions:   positionsFromWire(w.Positions),
		}, probe.Extra, nil

	case "updateChatPosition":
		var w struct {
			ChatID   int64            `json:"chat_id"`
			Position wireChatPosition `json:"position"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode updateChatPosition: %w", err)
		}
		return &UpdateChatPosition{ChatID: w.ChatID, Position: positionFromWire(w.Position)}, probe.Extra, nil

	case "updateAuthorizationState":
		var w struct {
			State wireProbe `json:"authorization_state"`
		}
		if err := json.Unmarshal(data, &w); err != nil {
			return nil, "", fmt.Errorf("decode updateAuthorizationState: %w", err)
		}
		return &UpdateAuthorizationState{State: AuthState(w.State.Type)}, probe.Extra, nil
	}

	// All other payload kinds are out of scope for the daemon.
	return nil, probe.Extra, nil
}

func chatFromWire(w *wireChat) Chat {
	return Chat{
		ID:          w.ID,
		Title:       w.Title,
		Kind:        kindFromWire(w.Type),
		LastMessage: messageFromWire(w.LastMessage),
		Positions:   positionsFromWire(w.Positions),
	}
}

func kindFromWire(raw json.RawMessage) ChatKind {
	if len(raw) == 0 {
		return KindUnknown
	}
	var t wireChatType
	if err := json.Unmarshal(raw, &t); err != nil {
		return KindUnknown
	}
	switch t.Type {
	case "chatTypePrivate":
		return KindPrivate
	case "chatTypeBasicGroup":
		return KindBasicGroup
	case "chatTypeSupergroup":
		if t.IsChannel {
			return KindChannel
		}
		return KindSupergroup
	case "chatTypeSecret":
		return KindSecret
	}
	return KindUnknown
}

func messageFromWire(w *wireMessage) *Message {
	if w == nil {
		return nil
	}
	return &Message{
		ID:     w.ID,
		ChatID: w.ChatID,
		Date:   w.Date,
		Text:   extractText(w.Content),
	}
}

// extractText returns the message text for text content and "" for every
// other content kind.
func extractText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var t wireMessageText
	if err := json.Unmarshal(raw, &t); err != nil || t.Type != "messageText" {
		return ""
	}
	return t.Text.Text
}

func positionsFromWire(ws []wireChatPosition) []ChatPosition {
	if len(ws) == 0 {
		return nil
	}
	out := make([]ChatPosition, 0, len(ws))
	for _, w := range ws {
		out = append(out, positionFromWire(w))
	}
	return out
}

func positionFromWire(w wireChatPosition) ChatPosition {
	order, _ := strconv.ParseUint(w.Order, 10, 64)
	p := ChatPosition{Order: order, Pinned: w.IsPinned}
	switch w.List.Type {
	case "chatListArchive":
		p.List = ListArchive
	default:
		p.List = ListMain
	}
	return p
}
