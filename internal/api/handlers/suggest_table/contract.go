package suggest_table

import (
	"context"

	suggestTable "github.com/m04kA/SMC-ReservationService/internal/usecase/suggest_table"
)

type SuggestTableUseCase interface {
	Execute(ctx context.Context, req *suggestTable.Request) (*suggestTable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
