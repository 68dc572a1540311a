package port

import "context"

type EventPublisher interface {
	PublishExtraction(ctx context.Context, msg []byte) error
}
