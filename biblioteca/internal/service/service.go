package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/repository"
	"github.com/duoc-capstone/biblioteca-service/pkg/circuitbreaker"
)

const (
	maxPrestamosActivos = 3
	tokenTTL            = 48 * time.Hour
)

// Enqueuer publishes a message to a topic; the kafka producer sits
// behind it.
type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// Sender delivers one notification to its destinatario.
type Sender interface {
	Send(ctx context.Context, msg model.NotificacionMsg) error
}

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	enqueuer Enqueuer
	sender   Sender
	cb       circuitbreaker.CircuitBreaker
}

func NewService(repo repository.Repository, enqueuer Enqueuer, sender Sender, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		enqueuer: enqueuer,
		sender:   sender,
		cb:       circuitbreaker.New(20, 30*time.Second, 0.5, 5),
	}
}

// LogSender stands in for a mail relay: it logs the delivery and
// reports success.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("sender")}
}

func (s *LogSender) Send(_ context.Context, msg model.NotificacionMsg) error {
	s.log.Info("notificacion",
		zap.String("destinatario", msg.Destinatario),
		zap.String("asunto", msg.Asunto),
		zap.Int("prestamoId", msg.PrestamoID),
	)
	return nil
}
