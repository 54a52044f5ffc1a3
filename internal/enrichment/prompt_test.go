package enrichment

import (
	"testing"

	"github.com/shenikar/crowd_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_IncludesReportContext(t *testing.T) {
	// Подготовка
	obs := &models.Observation{
		CrowdLevel: models.CrowdCritical,
		Message:    "fire near the food court",
	}
	corridors := []string{"Food Court → North Gate", "Food Court → West Exit"}

	// Действие
	prompt := BuildPrompt(obs, corridors)

	// Проверки
	assert.Contains(t, prompt, "Reported Density: CRITICAL")
	assert.Contains(t, prompt, `Field Note: "fire near the food court"`)
	assert.Contains(t, prompt, "Food Court → North Gate")
	assert.Contains(t, prompt, "Food Court → West Exit")
	assert.Contains(t, prompt, "RAW JSON")
}

func TestBuildPrompt_EmptyNoteUsesPlaceholder(t *testing.T) {
	// Подготовка
	obs := &models.Observation{CrowdLevel: models.CrowdLow}

	// Действие
	prompt := BuildPrompt(obs, []string{"A → B"})

	// Проверки
	assert.Contains(t, prompt, "No specific details provided")
}
