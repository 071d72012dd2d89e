package users

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"userapi/internal/config"
	"userapi/internal/domain"
	"userapi/internal/metrics"
	"userapi/internal/model"
	"userapi/internal/queue"
	"userapi/internal/repository"
	"userapi/internal/sse"
)

const (
	defaultEventBufferSize     = 256
	defaultEventPublishTimeout = 5 * time.Second
)

// outboundEvent is a marshalled event waiting for the broker. The span
// context links the publish span back to the request that caused it.
type outboundEvent struct {
	eventType  string
	routingKey string
	payload    []byte
	span       trace.SpanContext
}

type Service struct {
	store          repository.UserRepository
	hub            *sse.Hub
	pub            queue.Publisher
	outbox         chan outboundEvent
	publishTimeout time.Duration
	metrics        *metrics.Metrics
	prefix         string
	log            *zap.Logger
	now            func() time.Time
}

func NewService(cfg *config.Config, store repository.UserRepository, hub *sse.Hub, publisher queue.Publisher, m *metrics.Metrics, logger *zap.Logger) *Service {
	prefix := cfg.RabbitPublishPrefix
	if prefix == "" {
		prefix = "user"
	}
	size := cfg.EventBufferSize
	if size <= 0 {
		size = defaultEventBufferSize
	}
	timeout := cfg.EventPublishTimeout
	if timeout <= 0 {
		timeout = defaultEventPublishTimeout
	}
	s := &Service{
		store:          store,
		hub:            hub,
		pub:            publisher,
		outbox:         make(chan outboundEvent, size),
		publishTimeout: timeout,
		metrics:        m,
		prefix:         prefix,
		log:            logger,
		now:            func() time.Time { return time.Now().UTC() },
	}
	s.refreshUserGauge(context.Background())
	return s
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]model.User, int, error) {
	users, total, err := s.store.ListUsers(ctx, limit, offset)
	if err != nil {
		s.log.Error("store list users failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		return nil, 0, err
	}
	return users, total, nil
}

func (s *Service) Get(ctx context.Context, id uint32) (model.User, error) {
	return s.store.GetUser(ctx, id)
}

func (s *Service) Create(ctx context.Context, user model.User) (model.User, error) {
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		s.log.Error("store create user failed", zap.String("name", user.Name), zap.Error(err))
		return model.User{}, err
	}
	s.emit(ctx, domain.UserEventCreated, created)
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uint32, user model.User) (model.User, error) {
	updated, err := s.store.UpdateUser(ctx, id, user)
	if err != nil {
		return model.User{}, err
	}
	s.emit(ctx, domain.UserEventUpdated, updated)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uint32) error {
	removed, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	s.emit(ctx, domain.UserEventDeleted, removed)
	return nil
}

// emit fans a change out to SSE subscribers and queues it for the broker.
// Neither step blocks; the store mutation has already happened.
func (s *Service) emit(ctx context.Context, eventType string, user model.User) {
	ctx, span := otel.Tracer("users").Start(ctx, "users.emit")
	span.SetAttributes(
		attribute.String("user.event", eventType),
		attribute.Int64("user.id", int64(user.ID)),
	)
	defer span.End()

	event := model.UserEvent{Type: eventType, User: user, OccurredAt: s.now()}
	if !s.hub.Broadcast(event) {
		s.log.Warn("event hub full, dropping event", zap.String("type", eventType), zap.Uint32("id", user.ID))
	}
	s.refreshUserGauge(ctx)

	payload, err := json.Marshal(event)
	if err != nil {
		s.log.Error("event marshal failed", zap.Error(err))
		s.metrics.Events.WithLabelValues(eventType, "error").Inc()
		return
	}

	out := outboundEvent{
		eventType:  eventType,
		routingKey: s.prefix + "." + eventType,
		payload:    payload,
		span:       span.SpanContext(),
	}
	select {
	case s.outbox <- out:
	default:
		s.log.Warn("event outbox full, dropping event",
			zap.String("routing_key", out.routingKey),
			zap.Uint32("id", user.ID),
		)
		s.metrics.Events.WithLabelValues(eventType, "dropped").Inc()
	}
}

// Run publishes queued events until ctx is cancelled. Events still queued at
// that point are discarded.
func (s *Service) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case out := <-s.outbox:
			s.publish(ctx, out)
		}
	}
}

func (s *Service) publish(ctx context.Context, out outboundEvent) {
	ctx = trace.ContextWithRemoteSpanContext(ctx, out.span)
	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.pub.Publish(ctx, out.routingKey, out.payload); err != nil {
		s.log.Warn("publish user event failed",
			zap.String("routing_key", out.routingKey),
			zap.Error(err),
		)
		s.metrics.Events.WithLabelValues(out.eventType, "error").Inc()
		return
	}
	s.metrics.Events.WithLabelValues(out.eventType, "published").Inc()
}

func (s *Service) refreshUserGauge(ctx context.Context) {
	_, total, err := s.store.ListUsers(ctx, 0, 0)
	if err != nil {
		s.log.Warn("user count refresh failed", zap.Error(err))
		return
	}
	s.metrics.Users.Set(float64(total))
}
