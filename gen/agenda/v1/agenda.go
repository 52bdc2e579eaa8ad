// Package agendav1 contains the wire types for agenda.v1.AgendaService,
// hand-maintained in sync with proto/agenda/v1/agenda.proto. The messages use
// struct-tag derived descriptors, which keeps the wire format identical to the
// protoc output for the same schema.
package agendav1

import (
	"fmt"

	"google.golang.org/protobuf/protoadapt"
)

type AgendarConsultaRequest struct {
	Token          int64  `protobuf:"varint,1,opt,name=token,proto3" json:"token,omitempty"`
	PacienteId     int64  `protobuf:"varint,2,opt,name=paciente_id,json=pacienteId,proto3" json:"paciente_id,omitempty"`
	MedicoId       int64  `protobuf:"varint,3,opt,name=medico_id,json=medicoId,proto3" json:"medico_id,omitempty"`
	Data           string `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
	Horario        int32  `protobuf:"varint,5,opt,name=horario,proto3" json:"horario,omitempty"`
	Especialidade  string `protobuf:"bytes,6,opt,name=especialidade,proto3" json:"especialidade,omitempty"`
	TipoPagamento  string `protobuf:"bytes,7,opt,name=tipo_pagamento,json=tipoPagamento,proto3" json:"tipo_pagamento,omitempty"`
	DadosPagamento string `protobuf:"bytes,8,opt,name=dados_pagamento,json=dadosPagamento,proto3" json:"dados_pagamento,omitempty"`
}

func (m *AgendarConsultaRequest) Reset()         { *m = AgendarConsultaRequest{} }
func (m *AgendarConsultaRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*AgendarConsultaRequest) ProtoMessage()    {}

type OperacaoResponse struct {
	Id       int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Status   string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Mensagem string `protobuf:"bytes,3,opt,name=mensagem,proto3" json:"mensagem,omitempty"`
}

func (m *OperacaoResponse) Reset()         { *m = OperacaoResponse{} }
func (m *OperacaoResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*OperacaoResponse) ProtoMessage()    {}

type ConsultarAgendamentosRequest struct {
	Token  int64  `protobuf:"varint,1,opt,name=token,proto3" json:"token,omitempty"`
	Status string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *ConsultarAgendamentosRequest) Reset()         { *m = ConsultarAgendamentosRequest{} }
func (m *ConsultarAgendamentosRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConsultarAgendamentosRequest) ProtoMessage()    {}

type Agendamento struct {
	Id            int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	PacienteId    int64  `protobuf:"varint,2,opt,name=paciente_id,json=pacienteId,proto3" json:"paciente_id,omitempty"`
	MedicoId      int64  `protobuf:"varint,3,opt,name=medico_id,json=medicoId,proto3" json:"medico_id,omitempty"`
	Data          string `protobuf:"bytes,4,opt,name=data,proto3" json:"data,omitempty"`
	Horario       int32  `protobuf:"varint,5,opt,name=horario,proto3" json:"horario,omitempty"`
	Especialidade string `protobuf:"bytes,6,opt,name=especialidade,proto3" json:"especialidade,omitempty"`
	TipoPagamento string `protobuf:"bytes,7,opt,name=tipo_pagamento,json=tipoPagamento,proto3" json:"tipo_pagamento,omitempty"`
	Status        string `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *Agendamento) Reset()         { *m = Agendamento{} }
func (m *Agendamento) String() string { return fmt.Sprintf("%+v", *m) }
func (*Agendamento) ProtoMessage()    {}

type ConsultarAgendamentosResponse struct {
	Agendamentos []*Agendamento `protobuf:"bytes,1,rep,name=agendamentos,proto3" json:"agendamentos,omitempty"`
}

func (m *ConsultarAgendamentosResponse) Reset()         { *m = ConsultarAgendamentosResponse{} }
func (m *ConsultarAgendamentosResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConsultarAgendamentosResponse) ProtoMessage()    {}

type CancelarAgendamentoRequest struct {
	Token         int64 `protobuf:"varint,1,opt,name=token,proto3" json:"token,omitempty"`
	AgendamentoId int64 `protobuf:"varint,2,opt,name=agendamento_id,json=agendamentoId,proto3" json:"agendamento_id,omitempty"`
}

func (m *CancelarAgendamentoRequest) Reset()         { *m = CancelarAgendamentoRequest{} }
func (m *CancelarAgendamentoRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*CancelarAgendamentoRequest) ProtoMessage()    {}

type ConcluirAgendamentoRequest struct {
	Token         int64 `protobuf:"varint,1,opt,name=token,proto3" json:"token,omitempty"`
	AgendamentoId int64 `protobuf:"varint,2,opt,name=agendamento_id,json=agendamentoId,proto3" json:"agendamento_id,omitempty"`
}

func (m *ConcluirAgendamentoRequest) Reset()         { *m = ConcluirAgendamentoRequest{} }
func (m *ConcluirAgendamentoRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConcluirAgendamentoRequest) ProtoMessage()    {}

var (
	_ protoadapt.MessageV1 = (*AgendarConsultaRequest)(nil)
	_ protoadapt.MessageV1 = (*OperacaoResponse)(nil)
	_ protoadapt.MessageV1 = (*ConsultarAgendamentosRequest)(nil)
	_ protoadapt.MessageV1 = (*Agendamento)(nil)
	_ protoadapt.MessageV1 = (*ConsultarAgendamentosResponse)(nil)
	_ protoadapt.MessageV1 = (*CancelarAgendamentoRequest)(nil)
	_ protoadapt.MessageV1 = (*ConcluirAgendamentoRequest)(nil)
)
