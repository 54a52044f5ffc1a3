package enrichment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	// Проверки: модель может завернуть JSON в markdown-блок вопреки промпту
	assert.Equal(t, `{"risk":"HIGH"}`, StripCodeFences("```json\n{\"risk\":\"HIGH\"}\n```"))
	assert.Equal(t, `{"risk":"HIGH"}`, StripCodeFences("```\n{\"risk\":\"HIGH\"}\n```"))
	assert.Equal(t, `{"risk":"HIGH"}`, StripCodeFences(`{"risk":"HIGH"}`))
	assert.Equal(t, "", StripCodeFences("```json\n```"))
}

func TestParseInsight_Success(t *testing.T) {
	// Подготовка
	raw := "```json\n{\"risk\":\"CRITICAL\",\"summary\":\"Crush forming at Main Stage.\",\"actions\":[\"Halt entry at Gate A\",\"Divert crowd via Main Stage → West Exit\"]}\n```"

	// Действие
	insight, err := ParseInsight(raw)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", insight.Risk)
	assert.Equal(t, "Crush forming at Main Stage.", insight.Summary)
	assert.Len(t, insight.Actions, 2)
}

func TestParseInsight_EmptyResponse(t *testing.T) {
	_, err := ParseInsight("   ")
	require.Error(t, err)
}

func TestParseInsight_InvalidJSON(t *testing.T) {
	_, err := ParseInsight("I cannot assist with that request.")
	require.Error(t, err)
}

func TestParseInsight_MissingRisk(t *testing.T) {
	_, err := ParseInsight(`{"summary":"ok","actions":["do something"]}`)
	require.Error(t, err)
}

func TestParseInsight_NoActions(t *testing.T) {
	_, err := ParseInsight(`{"risk":"LOW","summary":"ok","actions":[]}`)
	require.Error(t, err)
}
