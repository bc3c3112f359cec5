package api

import (
	"context"

	"github.com/google/uuid"
	tgdv1 "github.com/mvieira/tgd/gen/tgd/v1"
	"github.com/mvieira/tgd/internal/bus"
	"github.com/mvieira/tgd/internal/cache"
	"github.com/mvieira/tgd/internal/td"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

const defaultChatListLimit = 50

// ChatService implements the ChatService gRPC service on top of the chat
// cache synchronizer.
type ChatService struct {
	tgdv1.UnimplementedChatServiceServer

	sync        *cache.Synchronizer
	client      td.Client
	auth        cache.Authorizer
	bus         *bus.Bus
	sessionName string
}

// NewChatService creates a new chat service.
func NewChatService(sync *cache.Synchronizer, client td.Client, auth cache.Authorizer, b *bus.Bus, sessionName string) *ChatService {
	return &ChatService{
		sync:        sync,
		client:      client,
		auth:        auth,
		bus:         b,
		sessionName: sessionName,
	}
}

func (s *ChatService) ListChats(ctx context.Context, req *tgdv1.ListChatsRequest) (*tgdv1.ListChatsResponse, error) {
	limit := defaultChatListLimit
	if req.Limit > 0 {
		limit = int(req.Limit)
	}

	top, err := s.sync.GetTop(ctx, limit)
	if err != nil {
		return nil, toStatus("list chats", err)
	}

	chats := make([]*tgdv1.Chat, 0, len(top.Chats))
	for _, c := range top.Chats {
		chats = append(chats, summaryToProto(c))
	}

	return &tgdv1.ListChatsResponse{
		Chats:      chats,
		TotalKnown: int32(top.TotalKnown),
	}, nil
}

func (s *ChatService) GetChat(ctx context.Context, req *tgdv1.GetChatRequest) (*tgdv1.GetChatResponse, error) {
	sum, err := s.sync.GetByID(ctx, req.ChatId)
	if err != nil {
		return nil, toStatus("get chat", err)
	}
	return &tgdv1.GetChatResponse{Chat: summaryToProto(sum)}, nil
}

func (s *ChatService) SendMessage(ctx context.Context, req *tgdv1.SendMessageRequest) (*tgdv1.SendMessageResponse, error) {
	if !s.auth.IsAuthorized() {
		return nil, grpcstatus.Errorf(codes.Unauthenticated, "send message: not authorized")
	}

	obj, err := sendAwait(ctx, s.client, td.SendMessage{
		ChatID:              req.ChatId,
		Text:                req.Text,
		ReplyToMessageID:    req.ReplyToMessageId,
		DisableNotification: req.DisableNotification,
	})
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "send message: %v", err)
	}

	msg, ok := obj.(td.Message)
	if !ok {
		return nil, grpcstatus.Errorf(codes.Internal, "send message: unexpected backend response")
	}

	return &tgdv1.SendMessageResponse{
		MessageId: msg.ID,
		ChatId:    msg.ChatID,
		Text:      msg.Text,
		Date:      msg.Date,
	}, nil
}

func (s *ChatService) WatchChatUpdates(_ *tgdv1.WatchChatUpdatesRequest, stream tgdv1.ChatService_WatchChatUpdatesServer) error {
	ch, unsub := s.bus.Subscribe("td.update.chat", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if err := stream.Send(&tgdv1.EventEnvelope{
				EventId:          uuid.New().String(),
				Session:          s.sessionName,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func summaryToProto(c cache.ChatSummary) *tgdv1.Chat {
	return &tgdv1.Chat{
		Id:              c.ID,
		Title:           c.Title,
		Kind:            string(c.Kind),
		LastMessageText: c.LastMessageText,
		LastMessageDate: c.LastMessageDate,
	}
}
