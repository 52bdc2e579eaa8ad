// Package usersv1 contains the client-side wire types for the external
// users.v1.UserService, hand-maintained in sync with proto/users/v1/users.proto.
package usersv1

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/protoadapt"
)

// Role values carried in GetUserRoleResponse.UserType.
const (
	UserType_UNKNOWN_ROLE  int32 = 0
	UserType_ADMINISTRADOR int32 = 1
	UserType_MEDICO        int32 = 2
	UserType_RECEPCIONISTA int32 = 3
	UserType_PACIENTE      int32 = 4
)

type GetUserRoleRequest struct {
	Token  int64 `protobuf:"varint,1,opt,name=token,proto3" json:"token,omitempty"`
	UserId int64 `protobuf:"varint,2,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (m *GetUserRoleRequest) Reset()         { *m = GetUserRoleRequest{} }
func (m *GetUserRoleRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetUserRoleRequest) ProtoMessage()    {}

type GetUserRoleResponse struct {
	UserType int32 `protobuf:"varint,1,opt,name=user_type,json=userType,proto3" json:"user_type,omitempty"`
}

func (m *GetUserRoleResponse) Reset()         { *m = GetUserRoleResponse{} }
func (m *GetUserRoleResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetUserRoleResponse) ProtoMessage()    {}

var (
	_ protoadapt.MessageV1 = (*GetUserRoleRequest)(nil)
	_ protoadapt.MessageV1 = (*GetUserRoleResponse)(nil)
)

const UserService_GetUserRole_FullMethodName = "/users.v1.UserService/GetUserRole"

type UserServiceClient interface {
	GetUserRole(ctx context.Context, in *GetUserRoleRequest, opts ...grpc.CallOption) (*GetUserRoleResponse, error)
}

type userServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewUserServiceClient(cc grpc.ClientConnInterface) UserServiceClient {
	return &userServiceClient{cc: cc}
}

func (c *userServiceClient) GetUserRole(ctx context.Context, in *GetUserRoleRequest, opts ...grpc.CallOption) (*GetUserRoleResponse, error) {
	out := new(GetUserRoleResponse)
	if err := c.cc.Invoke(ctx, UserService_GetUserRole_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
