package td

import "testing"

func TestParseOkWithExtra(t *testing.T) {
	obj, extra, err := ParseObject([]byte(`{"@type":"ok","@extra":"req-1"}`))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	if _, ok := obj.(Ok); !ok {
		t.Errorf("object = %T, want Ok", obj)
	}
	if extra != "req-1" {
		t.Errorf("extra = %q, want req-1", extra)
	}
}

func TestParseError(t *testing.T) {
	obj, _, err := ParseObject([]byte(`{"@type":"error","code":404,"message":"Not Found"}`))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	e, ok := obj.(Error)
	if !ok {
		t.Fatalf("object = %T, want Error", obj)
	}
	if e.Code != ErrorCodeNotFound || e.Message != "Not Found" {
		t.Errorf("error = %+v", e)
	}
}

func TestParseUnknownTypeDropped(t *testing.T) {
	obj, _, err := ParseObject([]byte(`{"@type":"updateOption","name":"version"}`))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	if obj != nil {
		t.Errorf("object = %T, want nil for unhandled kinds", obj)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, _, err := ParseObject([]byte(`{`)); err == nil {
		t.Error("ParseObject expected error for malformed payload")
	}
}

func TestParseUpdateNewChat(t *testing.T) {
	payload := `{
		"@type": "updateNewChat",
		"chat": {
			"id": 1001,
			"title": "golang news",
			"type": {"@type": "chatTypeSupergroup", "is_channel": true},
			"last_message": {
				"id": 5,
				"chat_id": 1001,
				"date": 1700000000,
				"content": {"@type": "messageText", "text": {"text": "released"}}
			},
			"positions": [
				{"list": {"@type": "chatListMain"}, "order": "2294974870861201234", "is_pinned": true},
				{"list": {"@type": "chatListArchive"}, "order": "5"}
			]
		}
	}`

	obj, _, err := ParseObject([]byte(payload))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	upd, ok := obj.(*UpdateNewChat)
	if !ok {
		t.Fatalf("object = %T, want *UpdateNewChat", obj)
	}

	c := upd.Chat
	if c.ID != 1001 || c.Title != "golang news" {
		t.Errorf("chat = %+v", c)
	}
	if c.Kind != KindChannel {
		t.Errorf("kind = %q, want channel (supergroup with is_channel)", c.Kind)
	}
	if c.LastMessage == nil || c.LastMessage.Text != "released" {
		t.Errorf("last message = %+v, want text released", c.LastMessage)
	}
	if len(c.Positions) != 2 {
		t.Fatalf("positions = %d, want 2", len(c.Positions))
	}
	if c.Positions[0].List != ListMain || c.Positions[0].Order != 2294974870861201234 || !c.Positions[0].Pinned {
		t.Errorf("main position = %+v", c.Positions[0])
	}
	if c.Positions[1].List != ListArchive || c.Positions[1].Order != 5 {
		t.Errorf("archive position = %+v", c.Positions[1])
	}
}

func TestParseNonTextContentYieldsEmptyText(t *testing.T) {
	payload := `{
		"@type": "updateChatLastMessage",
		"chat_id": 7,
		"last_message": {
			"id": 9,
			"chat_id": 7,
			"date": 100,
			"content": {"@type": "messagePhoto"}
		},
		"positions": []
	}`

	obj, _, err := ParseObject([]byte(payload))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	upd := obj.(*UpdateChatLastMessage)
	if upd.LastMessage.Text != "" {
		t.Errorf("text = %q, want empty for non-text content", upd.LastMessage.Text)
	}
}

func TestParseUpdateChatTitle(t *testing.T) {
	obj, _, err := ParseObject([]byte(`{"@type":"updateChatTitle","chat_id":3,"title":"renamed"}`))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	upd := obj.(*UpdateChatTitle)
	if upd.ChatID != 3 || upd.Title != "renamed" {
		t.Errorf("update = %+v", upd)
	}
}

func TestParseUpdateChatPosition(t *testing.T) {
	payload := `{
		"@type": "updateChatPosition",
		"chat_id": 3,
		"position": {"list": {"@type": "chatListMain"}, "order": "0"}
	}`

	obj, _, err := ParseObject([]byte(payload))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	upd := obj.(*UpdateChatPosition)
	if upd.ChatID != 3 || upd.Position.List != ListMain || upd.Position.Order != 0 {
		t.Errorf("update = %+v", upd)
	}
}

func TestParseUpdateAuthorizationState(t *testing.T) {
	payload := `{
		"@type": "updateAuthorizationState",
		"authorization_state": {"@type": "authorizationStateWaitCode"}
	}`

	obj, _, err := ParseObject([]byte(payload))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	upd := obj.(*UpdateAuthorizationState)
	if upd.State != AuthStateWaitCode {
		t.Errorf("state = %q, want %q", upd.State, AuthStateWaitCode)
	}
}

func TestParseChatKinds(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ChatKind
	}{
		{"private", `{"@type":"chatTypePrivate"}`, KindPrivate},
		{"basic group", `{"@type":"chatTypeBasicGroup"}`, KindBasicGroup},
		{"supergroup", `{"@type":"chatTypeSupergroup","is_channel":false}`, KindSupergroup},
		{"channel", `{"@type":"chatTypeSupergroup","is_channel":true}`, KindChannel},
		{"secret", `{"@type":"chatTypeSecret"}`, KindSecret},
		{"unknown", `{"@type":"chatTypeSomethingNew"}`, KindUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kindFromWire([]byte(tt.raw)); got != tt.want {
				t.Errorf("kindFromWire = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStickerSets(t *testing.T) {
	payload := `{
		"@type": "stickerSets",
		"sets": [
			{"id": "12345678901234567", "title": "Cats", "name": "cats_pack", "size": 20}
		]
	}`

	obj, _, err := ParseObject([]byte(payload))
	if err != nil {
		t.Fatalf("ParseObject error = %v", err)
	}
	sets := obj.(StickerSets)
	if len(sets.Sets) != 1 {
		t.Fatalf("sets = %d, want 1", len(sets.Sets))
	}
	if sets.Sets[0].ID != 12345678901234567 || sets.Sets[0].Title != "Cats" {
		t.Errorf("set = %+v", sets.Sets[0])
	}
}
