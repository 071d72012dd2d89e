package queue

import "context"

// Consumer runs until ctx is cancelled or the broker connection fails.
type Consumer interface {
	Start(ctx context.Context) error
}

// Publisher sends a JSON payload to the configured exchange.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload []byte) error
}

// ImportRequest is the body of a message on the user import queue.
type ImportRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Age   *uint32 `json:"age"`
}

func (r ImportRequest) Complete() bool {
	return r.Name != nil && r.Email != nil && r.Age != nil
}
