package service

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/errs"
	"github.com/duoc-capstone/biblioteca-service/biblioteca/internal/model"
	"github.com/duoc-capstone/biblioteca-service/pkg/kafka"
)

const tipoNotificacionVencimiento = "vencimiento"

// NotificarVencidos sweeps overdue prestamos and enqueues one message
// per unnotified vencido loan. Delivery and the notificaciones log
// entry happen on the consumer side.
func (s *Service) NotificarVencidos(ctx context.Context) (int, error) {
	if _, err := s.repo.SweepVencidos(ctx); err != nil {
		return 0, err
	}

	pendientes, err := s.repo.ListVencidosNoNotificados(ctx)
	if err != nil {
		return 0, err
	}

	enqueued := 0
	for _, p := range pendientes {
		msg := model.NotificacionMsg{
			PrestamoID:   p.ID,
			Tipo:         tipoNotificacionVencimiento,
			Destinatario: p.Email,
			Asunto:       fmt.Sprintf("Prestamo #%d vencido", p.ID),
		}
		if err := s.enqueuer.Enqueue(kafka.NotificationsTopic, msg); err != nil {
			return enqueued, errors.Wrap(err, "enqueue notificacion")
		}
		enqueued++
	}
	return enqueued, nil
}

// ProcesarNotificacion handles one consumed message: the delivery runs
// behind the circuit breaker, the attempt is appended to the log either
// way, and a successful delivery marks the prestamo notificado. A
// failed delivery is not an error for the consumer; the attempt is on
// record and the next sweep re-enqueues the loan.
func (s *Service) ProcesarNotificacion(ctx context.Context, msg model.NotificacionMsg) error {
	sendErr := s.cb.Call(func() error {
		return s.sender.Send(ctx, msg)
	})

	n := model.Notificacion{
		Tipo:         msg.Tipo,
		Destinatario: msg.Destinatario,
		Asunto:       msg.Asunto,
		PrestamoID:   &msg.PrestamoID,
		Exito:        sendErr == nil,
	}
	if sendErr != nil {
		errText := sendErr.Error()
		n.Error = &errText
	}
	if _, err := s.repo.AppendNotificacion(ctx, n); err != nil {
		return err
	}

	if sendErr == nil {
		if err := s.repo.MarkNotificado(ctx, msg.PrestamoID); err != nil {
			// The loan may have been returned between sweep and delivery.
			if errors.Is(err, errs.ErrPrestamoNoVencido) || errors.Is(err, errs.ErrNotFound) {
				s.log.Warn("prestamo no longer vencido", zap.Int("prestamoId", msg.PrestamoID))
				return nil
			}
			return err
		}
	}
	return nil
}

func (s *Service) ListNotificaciones(ctx context.Context, page, size int) (model.ListNotificaciones, error) {
	return s.repo.ListNotificaciones(ctx, page, size)
}
