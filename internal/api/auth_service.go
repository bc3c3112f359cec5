package api

import (
	"context"

	tgdv1 "github.com/mvieira/tgd/gen/tgd/v1"
	"github.com/mvieira/tgd/internal/auth"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// AuthService implements the AuthService gRPC service.
type AuthService struct {
	tgdv1.UnimplementedAuthServiceServer

	auth *auth.Service
}

// NewAuthService creates a new auth service.
func NewAuthService(a *auth.Service) *AuthService {
	return &AuthService{auth: a}
}

func (s *AuthService) GetAuthState(_ context.Context, _ *tgdv1.GetAuthStateRequest) (*tgdv1.GetAuthStateResponse, error) {
	return &tgdv1.GetAuthStateResponse{
		State:      string(s.auth.State()),
		Authorized: s.auth.IsAuthorized(),
	}, nil
}

func (s *AuthService) SendPhoneNumber(ctx context.Context, req *tgdv1.SendPhoneNumberRequest) (*tgdv1.SendPhoneNumberResponse, error) {
	if req.PhoneNumber == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "phone_number is required")
	}
	if err := s.auth.SendPhoneNumber(ctx, req.PhoneNumber); err != nil {
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "send phone number: %v", err)
	}
	return &tgdv1.SendPhoneNumberResponse{Success: true, Message: "phone number sent"}, nil
}

func (s *AuthService) CheckAuthCode(ctx context.Context, req *tgdv1.CheckAuthCodeRequest) (*tgdv1.CheckAuthCodeResponse, error) {
	if req.Code == "" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "code is required")
	}
	if err := s.auth.CheckCode(ctx, req.Code); err != nil {
		return nil, grpcstatus.Errorf(codes.FailedPrecondition, "check code: %v", err)
	}
	return &tgdv1.CheckAuthCodeResponse{Success: true, Message: "code verified"}, nil
}
