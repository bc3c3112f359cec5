package td

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalRequest encodes a request into TDLib's JSON wire form. extra is the
// correlation token echoed back as "@extra" on the response; empty omits it.
//
// TDLib's JSON interface serializes int64 fields as decimal strings, while
// chat and message ids (int53) travel as plain numbers.
func MarshalRequest(req Request, extra string) ([]byte, error) {
	m := map[string]any{"@type": req.tdType()}
	if extra != "" {
		m["@extra"] = extra
	}

	switch r := req.(type) {
	case LoadChats:
		m["chat_list"] = listToWire(r.List)
		m["limit"] = r.Limit
	case GetChat:
		m["chat_id"] = r.ChatID
	case SendMessage:
		m["chat_id"] = r.ChatID
		if r.ReplyToMessageID != 0 {
			m["reply_to"] = map[string]any{
				"@type":      "inputMessageReplyToMessage",
				"message_id": r.ReplyToMessageID,
			}
		}
		m["options"] = map[string]any{
			"@type":                "messageSendOptions",
			"disable_notification": r.DisableNotification,
		}
		m["input_message_content"] = map[string]any{
			"@type": "inputMessageText",
			"text": map[string]any{
				"@type": "formattedText",
				"text":  r.Text,
			},
		}
	case SendSticker:
		m["chat_id"] = r.ChatID
		m["input_message_content"] = map[string]any{
			"@type": "inputMessageSticker",
			"sticker": map[string]any{
				"@type": "inputFileId",
				"id":    r.StickerFileID,
			},
		}
	case GetInstalledStickerSets:
		m["sticker_type"] = map[string]any{"@type": "stickerTypeRegular"}
	case GetStickerSet:
		m["set_id"] = strconv.FormatInt(r.SetID, 10)
	case SetAuthenticationPhoneNumber:
		m["phone_number"] = r.PhoneNumber
	case CheckAuthenticationCode:
		m["code"] = r.Code
	case SetTdlibParameters:
		m["database_directory"] = r.DatabaseDirectory
		m["files_directory"] = r.FilesDirectory
		m["use_test_dc"] = r.UseTestDC
		m["use_message_database"] = r.UseMessageDatabase
		m["use_secret_chats"] = r.UseSecretChats
		m["api_id"] = r.APIID
		m["api_hash"] = r.APIHash
		m["system_language_code"] = r.SystemLanguageCode
		m["device_model"] = r.DeviceModel
		m["application_version"] = r.ApplicationVersion
	case SetLogVerbosityLevel:
		m["new_verbosity_level"] = r.Level
	default:
		return nil, fmt.Errorf("unsupported request type %T", req)
	}

	return json.Marshal(m)
}

func listToWire(l ListID) map[string]any {
	switch l {
	case ListArchive:
		return map[string]any{"@type": "chatListArchive"}
	default:
		return map[string]any{"@type": "chatListMain"}
	}
}
