// Package handler is the gRPC boundary of the orchestrator. It translates wire
// requests into service calls and taxonomy errors into gRPC statuses; no raw
// lower-layer error crosses this boundary.
package handler

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agendav1 "agenda-service/gen/agenda/v1"
	"agenda-service/internal/apperr"
	"agenda-service/internal/service"
)

type Handler struct {
	agenda *service.Agenda
}

func New(agenda *service.Agenda) *Handler {
	return &Handler{agenda: agenda}
}

var _ agendav1.AgendaServiceServer = (*Handler)(nil)

// rpcError maps the error taxonomy onto gRPC codes. Category 1 kinds map to
// client codes, category 2 to Internal; internal errors already carry a stable
// generic message, so nothing sensitive leaks.
func rpcError(err error) error {
	e := apperr.From(err)
	switch e.Kind {
	case apperr.KindValidation:
		return status.Error(codes.InvalidArgument, e.Message)
	case apperr.KindAuthorization:
		return status.Error(codes.PermissionDenied, e.Message)
	case apperr.KindConflict:
		return status.Error(codes.AlreadyExists, e.Message)
	case apperr.KindNotFound:
		return status.Error(codes.NotFound, e.Message)
	case apperr.KindState:
		return status.Error(codes.FailedPrecondition, e.Message)
	default:
		return status.Error(codes.Internal, e.Message)
	}
}
