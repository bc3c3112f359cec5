package api

import (
	"context"

	tgdv1 "github.com/mvieira/tgd/gen/tgd/v1"
	"github.com/mvieira/tgd/internal/cache"
	"github.com/mvieira/tgd/internal/td"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// StickerService implements the StickerService gRPC service. The sticker
// catalog carries no cached state; every call is a passthrough request.
type StickerService struct {
	tgdv1.UnimplementedStickerServiceServer

	client td.Client
	auth   cache.Authorizer
}

// NewStickerService creates a new sticker service.
func NewStickerService(client td.Client, auth cache.Authorizer) *StickerService {
	return &StickerService{client: client, auth: auth}
}

func (s *StickerService) ListStickerSets(ctx context.Context, _ *tgdv1.ListStickerSetsRequest) (*tgdv1.ListStickerSetsResponse, error) {
	if !s.auth.IsAuthorized() {
		return nil, grpcstatus.Errorf(codes.Unauthenticated, "list sticker sets: not authorized")
	}

	obj, err := sendAwait(ctx, s.client, td.GetInstalledStickerSets{})
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "list sticker sets: %v", err)
	}
	sets, ok := obj.(td.StickerSets)
	if !ok {
		return nil, grpcstatus.Errorf(codes.Internal, "list sticker sets: unexpected backend response")
	}

	out := make([]*tgdv1.StickerSetInfo, 0, len(sets.Sets))
	for _, set := range sets.Sets {
		out = append(out, &tgdv1.StickerSetInfo{
			Id:    set.ID,
			Title: set.Title,
			Name:  set.Name,
			Size:  set.Size,
		})
	}
	return &tgdv1.ListStickerSetsResponse{Sets: out}, nil
}

func (s *StickerService) GetStickerSet(ctx context.Context, req *tgdv1.GetStickerSetRequest) (*tgdv1.GetStickerSetResponse, error) {
	if !s.auth.IsAuthorized() {
		return nil, grpcstatus.Errorf(codes.Unauthenticated, "get sticker set: not authorized")
	}

	obj, err := sendAwait(ctx, s.client, td.GetStickerSet{SetID: req.SetId})
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "get sticker set: %v", err)
	}
	set, ok := obj.(td.StickerSet)
	if !ok {
		return nil, grpcstatus.Errorf(codes.Internal, "get sticker set: unexpected backend response")
	}

	stickers := make([]*tgdv1.Sticker, 0, len(set.Stickers))
	for _, st := range set.Stickers {
		stickers = append(stickers, &tgdv1.Sticker{
			FileId: st.FileID,
			Emoji:  st.Emoji,
			Width:  st.Width,
			Height: st.Height,
		})
	}
	return &tgdv1.GetStickerSetResponse{
		Set: &tgdv1.StickerSet{
			Id:       set.ID,
			Title:    set.Title,
			Name:     set.Name,
			Stickers: stickers,
		},
	}, nil
}

func (s *StickerService) SendSticker(ctx context.Context, req *tgdv1.SendStickerRequest) (*tgdv1.SendStickerResponse, error) {
	if !s.auth.IsAuthorized() {
		return nil, grpcstatus.Errorf(codes.Unauthenticated, "send sticker: not authorized")
	}

	obj, err := sendAwait(ctx, s.client, td.SendSticker{
		ChatID:        req.ChatId,
		StickerFileID: req.StickerFileId,
	})
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Unavailable, "send sticker: %v", err)
	}
	msg, ok := obj.(td.Message)
	if !ok {
		return nil, grpcstatus.Errorf(codes.Internal, "send sticker: unexpected backend response")
	}

	return &tgdv1.SendStickerResponse{MessageId: msg.ID}, nil
}
