package td

import (
	"encoding/json"
	"testing"
)

func marshalToMap(t *testing.T, req Request, extra string) map[string]any {
	t.Helper()
	data, err := MarshalRequest(req, extra)
	if err != nil {
		t.Fatalf("MarshalRequest error = %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("request is not valid JSON: %v", err)
	}
	return m
}

func TestMarshalLoadChats(t *testing.T) {
	m := marshalToMap(t, LoadChats{List: ListMain, Limit: 7}, "extra-1")

	if m["@type"] != "loadChats" {
		t.Errorf("@type = %v, want loadChats", m["@type"])
	}
	if m["@extra"] != "extra-1" {
		t.Errorf("@extra = %v, want extra-1", m["@extra"])
	}
	if m["limit"] != float64(7) {
		t.Errorf("limit = %v, want 7", m["limit"])
	}
	list, _ := m["chat_list"].(map[string]any)
	if list["@type"] != "chatListMain" {
		t.Errorf("chat_list = %v, want chatListMain", list)
	}
}

func TestMarshalGetChat(t *testing.T) {
	m := marshalToMap(t, GetChat{ChatID: -100123}, "")

	if m["@type"] != "getChat" {
		t.Errorf("@type = %v, want getChat", m["@type"])
	}
	if m["chat_id"] != float64(-100123) {
		t.Errorf("chat_id = %v, want -100123", m["chat_id"])
	}
	if _, ok := m["@extra"]; ok {
		t.Error("@extra should be omitted when empty")
	}
}

func TestMarshalSendMessage(t *testing.T) {
	m := marshalToMap(t, SendMessage{
		ChatID:              42,
		Text:                "hi there",
		ReplyToMessageID:    7,
		DisableNotification: true,
	}, "x")

	if m["@type"] != "sendMessage" {
		t.Errorf("@type = %v, want sendMessage", m["@type"])
	}
	content, _ := m["input_message_content"].(map[string]any)
	if content["@type"] != "inputMessageText" {
		t.Fatalf("content = %v, want inputMessageText", content)
	}
	text, _ := content["text"].(map[string]any)
	if text["text"] != "hi there" {
		t.Errorf("text = %v, want hi there", text["text"])
	}
	reply, _ := m["reply_to"].(map[string]any)
	if reply["message_id"] != float64(7) {
		t.Errorf("reply_to.message_id = %v, want 7", reply["message_id"])
	}
	opts, _ := m["options"].(map[string]any)
	if opts["disable_notification"] != true {
		t.Errorf("disable_notification = %v, want true", opts["disable_notification"])
	}
}

func TestMarshalSendMessageNoReply(t *testing.T) {
	m := marshalToMap(t, SendMessage{ChatID: 42, Text: "plain"}, "")
	if _, ok := m["reply_to"]; ok {
		t.Error("reply_to should be omitted when unset")
	}
}

func TestMarshalGetStickerSetUsesStringID(t *testing.T) {
	m := marshalToMap(t, GetStickerSet{SetID: 9007199254740993}, "")
	// int64 ids travel as strings on the TDLib wire.
	if m["set_id"] != "9007199254740993" {
		t.Errorf("set_id = %v (%T), want string", m["set_id"], m["set_id"])
	}
}

func TestMarshalSetTdlibParameters(t *testing.T) {
	m := marshalToMap(t, SetTdlibParameters{
		DatabaseDirectory:  "/tmp/db",
		APIID:              1234,
		APIHash:            "hash",
		SystemLanguageCode: "en",
	}, "")

	if m["@type"] != "setTdlibParameters" {
		t.Errorf("@type = %v, want setTdlibParameters", m["@type"])
	}
	if m["api_id"] != float64(1234) || m["api_hash"] != "hash" {
		t.Errorf("api fields = %v/%v", m["api_id"], m["api_hash"])
	}
	if m["database_directory"] != "/tmp/db" {
		t.Errorf("database_directory = %v", m["database_directory"])
	}
}
