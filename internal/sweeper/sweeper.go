package sweeper

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ExpiredMessage - фиксированное системное сообщение записи EXPIRED
const ExpiredMessage = "Auto-resolved by system timer"

// ObservationExpirer определяет контракт для пакетного закрытия просроченных наблюдений
type ObservationExpirer interface {
	ExpireDue(ctx context.Context, now time.Time) ([]uuid.UUID, error)
}

// AuditAppender определяет контракт для записи в журнал аудита
type AuditAppender interface {
	Append(ctx context.Context, entry *models.AuditLogEntry) error
}

// Sweeper периодически закрывает просроченные активные наблюдения.
// Работает внутри серверного процесса, независимо от клиентских сессий:
// закрытие всех UI-клиентов на него не влияет. Переводит в RESOLVED только
// наблюдения в NEW или PENDING - подтвержденный (ACKNOWLEDGED) инцидент
// считается находящимся в работе и тихо не закрывается.
type Sweeper struct {
	repo     ObservationExpirer
	audit    AuditAppender
	logger   *logrus.Logger
	interval time.Duration
}

func New(repo ObservationExpirer, audit AuditAppender, logger *logrus.Logger, interval time.Duration) *Sweeper {
	return &Sweeper{
		repo:     repo,
		audit:    audit,
		logger:   logger,
		interval: interval,
	}
}

// Start запускает горутину с периодическим запуском свипа
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Infof("Starting expiration sweeper with interval %v...", s.interval)
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping expiration sweeper.")
				return
			case <-ticker.C:
				if _, err := s.RunOnce(ctx); err != nil {
					// Сбой не фатален: следующий тик попробует снова
					s.logger.WithError(err).Error("Sweep run failed")
				}
			}
		}
	}()
}

// RunOnce выполняет один проход свипа и возвращает количество закрытых
// наблюдений. Смена статусов атомарна (один условный UPDATE), а записи
// аудита выполняются независимо и конкурентно: частичный сбой журналирования
// не блокирует и не откатывает смену статусов. Пустой результат - штатный
// no-op, не ошибка.
func (s *Sweeper) RunOnce(ctx context.Context) (int, error) {
	ids, err := s.repo.ExpireDue(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(observationID uuid.UUID) {
			defer wg.Done()
			entry := &models.AuditLogEntry{
				ObservationID: observationID,
				Action:        models.AuditExpired,
				Message:       ExpiredMessage,
				ActorEmail:    "system",
			}
			if err := s.audit.Append(ctx, entry); err != nil {
				// Журнал best-effort: корректность жизненного цикла важнее
				s.logger.WithError(err).WithField("observation_id", observationID).
					Warn("Failed to append EXPIRED audit entry")
			}
		}(id)
	}
	wg.Wait()

	s.logger.WithField("count", len(ids)).Info("Sweep complete. Resolved expired observations")
	return len(ids), nil
}
