package get_available_professionals

import (
	"context"

	getAvailableProfessionals "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_professionals"
)

type GetAvailableProfessionalsUseCase interface {
	Execute(ctx context.Context, req *getAvailableProfessionals.Request) (*getAvailableProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
