package dispatch

import (
	"sync"

	"github.com/google/uuid"
)

// ProcessedLedger - процессный журнал идемпотентности: множество id
// наблюдений, для которых этот процесс уже запускал обогащение. Живет только
// до рестарта процесса и служит оптимизацией против повторного запуска из
// одной и той же ленты событий. Гарантию корректности дает серверный
// условный захват записи, а не этот журнал.
type ProcessedLedger struct {
	mu  sync.Mutex
	ids map[uuid.UUID]struct{}
}

// NewProcessedLedger создает пустой журнал
func NewProcessedLedger() *ProcessedLedger {
	return &ProcessedLedger{
		ids: make(map[uuid.UUID]struct{}),
	}
}

// MarkIfNew отмечает id как обработанный. Возвращает true, если id еще не
// встречался, и false, если он уже был отмечен ранее.
func (l *ProcessedLedger) MarkIfNew(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, seen := l.ids[id]; seen {
		return false
	}
	l.ids[id] = struct{}{}
	return true
}

// Forget убирает id из журнала, позволяя повторный запуск (например, после
// явного ручного перезапуска обогащения).
func (l *ProcessedLedger) Forget(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.ids, id)
}

// Len возвращает количество отмеченных id
func (l *ProcessedLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ids)
}
