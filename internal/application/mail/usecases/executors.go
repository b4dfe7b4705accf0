package usecases

import "context"

type SendMailExecutor interface {
	Execute(ctx context.Context, cmd SendMailCommand) error
}
