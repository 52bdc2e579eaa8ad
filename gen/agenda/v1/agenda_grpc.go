package agendav1

import (
	"context"

	"google.golang.org/grpc"
)

const (
	AgendaService_AgendarConsulta_FullMethodName       = "/agenda.v1.AgendaService/AgendarConsulta"
	AgendaService_ConsultarAgendamentos_FullMethodName = "/agenda.v1.AgendaService/ConsultarAgendamentos"
	AgendaService_CancelarAgendamento_FullMethodName   = "/agenda.v1.AgendaService/CancelarAgendamento"
	AgendaService_ConcluirAgendamento_FullMethodName   = "/agenda.v1.AgendaService/ConcluirAgendamento"
)

type AgendaServiceServer interface {
	AgendarConsulta(context.Context, *AgendarConsultaRequest) (*OperacaoResponse, error)
	ConsultarAgendamentos(context.Context, *ConsultarAgendamentosRequest) (*ConsultarAgendamentosResponse, error)
	CancelarAgendamento(context.Context, *CancelarAgendamentoRequest) (*OperacaoResponse, error)
	ConcluirAgendamento(context.Context, *ConcluirAgendamentoRequest) (*OperacaoResponse, error)
}

func RegisterAgendaServiceServer(s grpc.ServiceRegistrar, srv AgendaServiceServer) {
	s.RegisterService(&AgendaService_ServiceDesc, srv)
}

func _AgendaService_AgendarConsulta_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AgendarConsultaRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgendaServiceServer).AgendarConsulta(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgendaService_AgendarConsulta_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgendaServiceServer).AgendarConsulta(ctx, req.(*AgendarConsultaRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgendaService_ConsultarAgendamentos_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConsultarAgendamentosRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgendaServiceServer).ConsultarAgendamentos(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgendaService_ConsultarAgendamentos_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgendaServiceServer).ConsultarAgendamentos(ctx, req.(*ConsultarAgendamentosRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgendaService_CancelarAgendamento_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelarAgendamentoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgendaServiceServer).CancelarAgendamento(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgendaService_CancelarAgendamento_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgendaServiceServer).CancelarAgendamento(ctx, req.(*CancelarAgendamentoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AgendaService_ConcluirAgendamento_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConcluirAgendamentoRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AgendaServiceServer).ConcluirAgendamento(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AgendaService_ConcluirAgendamento_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AgendaServiceServer).ConcluirAgendamento(ctx, req.(*ConcluirAgendamentoRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var AgendaService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "agenda.v1.AgendaService",
	HandlerType: (*AgendaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AgendarConsulta",
			Handler:    _AgendaService_AgendarConsulta_Handler,
		},
		{
			MethodName: "ConsultarAgendamentos",
			Handler:    _AgendaService_ConsultarAgendamentos_Handler,
		},
		{
			MethodName: "CancelarAgendamento",
			Handler:    _AgendaService_CancelarAgendamento_Handler,
		},
		{
			MethodName: "ConcluirAgendamento",
			Handler:    _AgendaService_ConcluirAgendamento_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/agenda/v1/agenda.proto",
}

type AgendaServiceClient interface {
	AgendarConsulta(ctx context.Context, in *AgendarConsultaRequest, opts ...grpc.CallOption) (*OperacaoResponse, error)
	ConsultarAgendamentos(ctx context.Context, in *ConsultarAgendamentosRequest, opts ...grpc.CallOption) (*ConsultarAgendamentosResponse, error)
	CancelarAgendamento(ctx context.Context, in *CancelarAgendamentoRequest, opts ...grpc.CallOption) (*OperacaoResponse, error)
	ConcluirAgendamento(ctx context.Context, in *ConcluirAgendamentoRequest, opts ...grpc.CallOption) (*OperacaoResponse, error)
}

type agendaServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAgendaServiceClient(cc grpc.ClientConnInterface) AgendaServiceClient {
	return &agendaServiceClient{cc: cc}
}

func (c *agendaServiceClient) AgendarConsulta(ctx context.Context, in *AgendarConsultaRequest, opts ...grpc.CallOption) (*OperacaoResponse, error) {
	out := new(OperacaoResponse)
	if err := c.cc.Invoke(ctx, AgendaService_AgendarConsulta_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agendaServiceClient) ConsultarAgendamentos(ctx context.Context, in *ConsultarAgendamentosRequest, opts ...grpc.CallOption) (*ConsultarAgendamentosResponse, error) {
	out := new(ConsultarAgendamentosResponse)
	if err := c.cc.Invoke(ctx, AgendaService_ConsultarAgendamentos_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agendaServiceClient) CancelarAgendamento(ctx context.Context, in *CancelarAgendamentoRequest, opts ...grpc.CallOption) (*OperacaoResponse, error) {
	out := new(OperacaoResponse)
	if err := c.cc.Invoke(ctx, AgendaService_CancelarAgendamento_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *agendaServiceClient) ConcluirAgendamento(ctx context.Context, in *ConcluirAgendamentoRequest, opts ...grpc.CallOption) (*OperacaoResponse, error) {
	out := new(OperacaoResponse)
	if err := c.cc.Invoke(ctx, AgendaService_ConcluirAgendamento_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
