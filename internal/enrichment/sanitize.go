package enrichment

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shenikar/crowd_safety_system/internal/models"
)

// StripCodeFences убирает обрамление markdown-блоками кода из сырого ответа
// модели. Модель может проигнорировать указание отвечать чистым JSON и
// завернуть его в ```json ... ```.
func StripCodeFences(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

// ParseInsight санитизирует и разбирает ответ сервиса анализа в фиксированную
// форму {risk, summary, actions[]}. Ошибка разбора приравнивается к сбою
// сервиса и не ретраится.
func ParseInsight(raw string) (*models.AIInsight, error) {
	clean := StripCodeFences(raw)
	if clean == "" {
		return nil, fmt.Errorf("empty response body")
	}

	insight := &models.AIInsight{}
	if err := json.Unmarshal([]byte(clean), insight); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	if insight.Risk == "" {
		return nil, fmt.Errorf("response is missing risk field")
	}
	if len(insight.Actions) == 0 {
		return nil, fmt.Errorf("response contains no recommended actions")
	}
	return insight, nil
}
