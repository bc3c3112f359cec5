// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: tgd/v1/tgd.proto

package tgdv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AuthService_GetAuthState_FullMethodName    = "/tgd.v1.AuthService/GetAuthState"
	AuthService_SendPhoneNumber_FullMethodName = "/tgd.v1.AuthService/SendPhoneNumber"
	AuthService_CheckAuthCode_FullMethodName   = "/tgd.v1.AuthService/CheckAuthCode"
)

// AuthServiceClient is the client API for AuthService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuthService drives the Telegram login flow.
type AuthServiceClient interface {
	GetAuthState(ctx context.Context, in *GetAuthStateRequest, opts ...grpc.CallOption) (*GetAuthStateResponse, error)
	SendPhoneNumber(ctx context.Context, in *SendPhoneNumberRequest, opts ...grpc.CallOption) (*SendPhoneNumberResponse, error)
	CheckAuthCode(ctx context.Context, in *CheckAuthCodeRequest, opts ...grpc.CallOption) (*CheckAuthCodeResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) GetAuthState(ctx context.Context, in *GetAuthStateRequest, opts ...grpc.CallOption) (*GetAuthStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAuthStateResponse)
	err := c.cc.Invoke(ctx, AuthService_GetAuthState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) SendPhoneNumber(ctx context.Context, in *SendPhoneNumberRequest, opts ...grpc.CallOption) (*SendPhoneNumberResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendPhoneNumberResponse)
	err := c.cc.Invoke(ctx, AuthService_SendPhoneNumber_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authServiceClient) CheckAuthCode(ctx context.Context, in *CheckAuthCodeRequest, opts ...grpc.CallOption) (*CheckAuthCodeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CheckAuthCodeResponse)
	err := c.cc.Invoke(ctx, AuthService_CheckAuthCode_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServiceServer is the server API for AuthService service.
// All implementations must embed UnimplementedAuthServiceServer
// for forward compatibility.
//
// AuthService drives the Telegram login flow.
type AuthServiceServer interface {
	GetAuthState(context.Context, *GetAuthStateRequest) (*GetAuthStateResponse, error)
	SendPhoneNumber(context.Context, *SendPhoneNumberRequest) (*SendPhoneNumberResponse, error)
	CheckAuthCode(context.Context, *CheckAuthCodeRequest) (*CheckAuthCodeResponse, error)
	mustEmbedUnimplementedAuthServiceServer()
}

// UnimplementedAuthServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) GetAuthState(context.Context, *GetAuthStateRequest) (*GetAuthStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAuthState not implemented")
}
func (UnimplementedAuthServiceServer) SendPhoneNumber(context.Context, *SendPhoneNumberRequest) (*SendPhoneNumberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendPhoneNumber not implemented")
}
func (UnimplementedAuthServiceServer) CheckAuthCode(context.Context, *CheckAuthCodeRequest) (*CheckAuthCodeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckAuthCode not implemented")
}
func (UnimplementedAuthServiceServer) mustEmbedUnimplementedAuthServiceServer() {}
func (UnimplementedAuthServiceServer) testEmbeddedByValue()                     {}

// UnsafeAuthServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuthServiceServer will
// result in compilation errors.
type UnsafeAuthServiceServer interface {
	mustEmbedUnimplementedAuthServiceServer()
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	// If the following call pancis, it indicates UnimplementedAuthServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func _AuthService_GetAuthState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAuthStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).GetAuthState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_GetAuthState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).GetAuthState(ctx, req.(*GetAuthStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthService_SendPhoneNumber_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendPhoneNumberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).SendPhoneNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_SendPhoneNumber_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).SendPhoneNumber(ctx, req.(*SendPhoneNumberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AuthService_CheckAuthCode_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckAuthCodeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).CheckAuthCode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_CheckAuthCode_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).CheckAuthCode(ctx, req.(*CheckAuthCodeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tgd.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAuthState",
			Handler:    _AuthService_GetAuthState_Handler,
		},
		{
			MethodName: "SendPhoneNumber",
			Handler:    _AuthService_SendPhoneNumber_Handler,
		},
		{
			MethodName: "CheckAuthCode",
			Handler:    _AuthService_CheckAuthCode_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tgd/v1/tgd.proto",
}

const (
	ChatService_ListChats_FullMethodName        = "/tgd.v1.ChatService/ListChats"
	ChatService_GetChat_FullMethodName          = "/tgd.v1.ChatService/GetChat"
	ChatService_SendMessage_FullMethodName      = "/tgd.v1.ChatService/SendMessage"
	ChatService_WatchChatUpdates_FullMethodName = "/tgd.v1.ChatService/WatchChatUpdates"
)

// ChatServiceClient is the client API for ChatService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ChatService exposes the cached chat list.
type ChatServiceClient interface {
	ListChats(ctx context.Context, in *ListChatsRequest, opts ...grpc.CallOption) (*ListChatsResponse, error)
	GetChat(ctx context.Context, in *GetChatRequest, opts ...grpc.CallOption) (*GetChatResponse, error)
	SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error)
	WatchChatUpdates(ctx context.Context, in *WatchChatUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error)
}

type chatServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewChatServiceClient(cc grpc.ClientConnInterface) ChatServiceClient {
	return &chatServiceClient{cc}
}

func (c *chatServiceClient) ListChats(ctx context.Context, in *ListChatsRequest, opts ...grpc.CallOption) (*ListChatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListChatsResponse)
	err := c.cc.Invoke(ctx, ChatService_ListChats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) GetChat(ctx context.Context, in *GetChatRequest, opts ...grpc.CallOption) (*GetChatResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetChatResponse)
	err := c.cc.Invoke(ctx, ChatService_GetChat_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) SendMessage(ctx context.Context, in *SendMessageRequest, opts ...grpc.CallOption) (*SendMessageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendMessageResponse)
	err := c.cc.Invoke(ctx, ChatService_SendMessage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatServiceClient) WatchChatUpdates(ctx context.Context, in *WatchChatUpdatesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[EventEnvelope], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &ChatService_ServiceDesc.Streams[0], ChatService_WatchChatUpdates_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[WatchChatUpdatesRequest, EventEnvelope]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ChatService_WatchChatUpdatesClient = grpc.ServerStreamingClient[EventEnvelope]

// ChatServiceServer is the server API for ChatService service.
// All implementations must embed UnimplementedChatServiceServer
// for forward compatibility.
//
// ChatService exposes the cached chat list.
type ChatServiceServer interface {
	ListChats(context.Context, *ListChatsRequest) (*ListChatsResponse, error)
	GetChat(context.Context, *GetChatRequest) (*GetChatResponse, error)
	SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error)
	WatchChatUpdates(*WatchChatUpdatesRequest, grpc.ServerStreamingServer[EventEnvelope]) error
	mustEmbedUnimplementedChatServiceServer()
}

// UnimplementedChatServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedChatServiceServer struct{}

func (UnimplementedChatServiceServer) ListChats(context.Context, *ListChatsRequest) (*ListChatsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListChats not implemented")
}
func (UnimplementedChatServiceServer) GetChat(context.Context, *GetChatRequest) (*GetChatResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetChat not implemented")
}
func (UnimplementedChatServiceServer) SendMessage(context.Context, *SendMessageRequest) (*SendMessageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendMessage not implemented")
}
func (UnimplementedChatServiceServer) WatchChatUpdates(*WatchChatUpdatesRequest, grpc.ServerStreamingServer[EventEnvelope]) error {
	return status.Errorf(codes.Unimplemented, "method WatchChatUpdates not implemented")
}
func (UnimplementedChatServiceServer) mustEmbedUnimplementedChatServiceServer() {}
func (UnimplementedChatServiceServer) testEmbeddedByValue()                     {}

// UnsafeChatServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ChatServiceServer will
// result in compilation errors.
type UnsafeChatServiceServer interface {
	mustEmbedUnimplementedChatServiceServer()
}

func RegisterChatServiceServer(s grpc.ServiceRegistrar, srv ChatServiceServer) {
	// If the following call pancis, it indicates UnimplementedChatServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ChatService_ServiceDesc, srv)
}

func _ChatService_ListChats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListChatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).ListChats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_ListChats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).ListChats(ctx, req.(*ListChatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_GetChat_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetChatRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).GetChat(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_GetChat_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).GetChat(ctx, req.(*GetChatRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_SendMessage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendMessageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServiceServer).SendMessage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ChatService_SendMessage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ChatServiceServer).SendMessage(ctx, req.(*SendMessageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ChatService_WatchChatUpdates_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(WatchChatUpdatesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatServiceServer).WatchChatUpdates(m, &grpc.GenericServerStream[WatchChatUpdatesRequest, EventEnvelope]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type ChatService_WatchChatUpdatesServer = grpc.ServerStreamingServer[EventEnvelope]

// ChatService_ServiceDesc is the grpc.ServiceDesc for ChatService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ChatService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tgd.v1.ChatService",
	HandlerType: (*ChatServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListChats",
			Handler:    _ChatService_ListChats_Handler,
		},
		{
			MethodName: "GetChat",
			Handler:    _ChatService_GetChat_Handler,
		},
		{
			MethodName: "SendMessage",
			Handler:    _ChatService_SendMessage_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "WatchChatUpdates",
			Handler:       _ChatService_WatchChatUpdates_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "tgd/v1/tgd.proto",
}

const (
	StickerService_ListStickerSets_FullMethodName = "/tgd.v1.StickerService/ListStickerSets"
	StickerService_GetStickerSet_FullMethodName   = "/tgd.v1.StickerService/GetStickerSet"
	StickerService_SendSticker_FullMethodName     = "/tgd.v1.StickerService/SendSticker"
)

// StickerServiceClient is the client API for StickerService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// StickerService is a thin passthrough to the sticker catalog.
type StickerServiceClient interface {
	ListStickerSets(ctx context.Context, in *ListStickerSetsRequest, opts ...grpc.CallOption) (*ListStickerSetsResponse, error)
	GetStickerSet(ctx context.Context, in *GetStickerSetRequest, opts ...grpc.CallOption) (*GetStickerSetResponse, error)
	SendSticker(ctx context.Context, in *SendStickerRequest, opts ...grpc.CallOption) (*SendStickerResponse, error)
}

type stickerServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStickerServiceClient(cc grpc.ClientConnInterface) StickerServiceClient {
	return &stickerServiceClient{cc}
}

func (c *stickerServiceClient) ListStickerSets(ctx context.Context, in *ListStickerSetsRequest, opts ...grpc.CallOption) (*ListStickerSetsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListStickerSetsResponse)
	err := c.cc.Invoke(ctx, StickerService_ListStickerSets_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stickerServiceClient) GetStickerSet(ctx context.Context, in *GetStickerSetRequest, opts ...grpc.CallOption) (*GetStickerSetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStickerSetResponse)
	err := c.cc.Invoke(ctx, StickerService_GetStickerSet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *stickerServiceClient) SendSticker(ctx context.Context, in *SendStickerRequest, opts ...grpc.CallOption) (*SendStickerResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SendStickerResponse)
	err := c.cc.Invoke(ctx, StickerService_SendSticker_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// StickerServiceServer is the server API for StickerService service.
// All implementations must embed UnimplementedStickerServiceServer
// for forward compatibility.
//
// StickerService is a thin passthrough to the sticker catalog.
type StickerServiceServer interface {
	ListStickerSets(context.Context, *ListStickerSetsRequest) (*ListStickerSetsResponse, error)
	GetStickerSet(context.Context, *GetStickerSetRequest) (*GetStickerSetResponse, error)
	SendSticker(context.Context, *SendStickerRequest) (*SendStickerResponse, error)
	mustEmbedUnimplementedStickerServiceServer()
}

// UnimplementedStickerServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedStickerServiceServer struct{}

func (UnimplementedStickerServiceServer) ListStickerSets(context.Context, *ListStickerSetsRequest) (*ListStickerSetsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListStickerSets not implemented")
}
func (UnimplementedStickerServiceServer) GetStickerSet(context.Context, *GetStickerSetRequest) (*GetStickerSetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStickerSet not implemented")
}
func (UnimplementedStickerServiceServer) SendSticker(context.Context, *SendStickerRequest) (*SendStickerResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SendSticker not implemented")
}
func (UnimplementedStickerServiceServer) mustEmbedUnimplementedStickerServiceServer() {}
func (UnimplementedStickerServiceServer) testEmbeddedByValue()                        {}

// UnsafeStickerServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to StickerServiceServer will
// result in compilation errors.
type UnsafeStickerServiceServer interface {
	mustEmbedUnimplementedStickerServiceServer()
}

func RegisterStickerServiceServer(s grpc.ServiceRegistrar, srv StickerServiceServer) {
	// If the following call pancis, it indicates UnimplementedStickerServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&StickerService_ServiceDesc, srv)
}

func _StickerService_ListStickerSets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListStickerSetsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StickerServiceServer).ListStickerSets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StickerService_ListStickerSets_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StickerServiceServer).ListStickerSets(ctx, req.(*ListStickerSetsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StickerService_GetStickerSet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStickerSetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StickerServiceServer).GetStickerSet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StickerService_GetStickerSet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StickerServiceServer).GetStickerSet(ctx, req.(*GetStickerSetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _StickerService_SendSticker_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SendStickerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(StickerServiceServer).SendSticker(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: StickerService_SendSticker_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(StickerServiceServer).SendSticker(ctx, req.(*SendStickerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// StickerService_ServiceDesc is the grpc.ServiceDesc for StickerService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var StickerService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tgd.v1.StickerService",
	HandlerType: (*StickerServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListStickerSets",
			Handler:    _StickerService_ListStickerSets_Handler,
		},
		{
			MethodName: "GetStickerSet",
			Handler:    _StickerService_GetStickerSet_Handler,
		},
		{
			MethodName: "SendSticker",
			Handler:    _StickerService_SendSticker_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tgd/v1/tgd.proto",
}
