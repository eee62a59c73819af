package service

import "context"

type EmailService interface {
	SendActivation(ctx context.Context, to, name, activationURL string) error
}
