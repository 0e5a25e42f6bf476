package get_professional_availability

import (
	"context"

	getProfessionalAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_professional_availability"
)

type GetProfessionalAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getProfessionalAvailability.Request) (*getProfessionalAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
