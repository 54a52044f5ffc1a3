package enrichment

import (
	"fmt"
	"strings"

	"github.com/shenikar/crowd_safety_system/internal/models"
)

// BuildPrompt собирает структурированный запрос к сервису анализа:
// заявленная плотность, полевая заметка и список именованных коридоров
// эвакуации. Правила требуют эскалации риска по опасным ключевым словам в
// заметке и ссылки на конкретный коридор по имени хотя бы в одном действии.
func BuildPrompt(obs *models.Observation, corridors []string) string {
	note := obs.Message
	if note == "" {
		note = "No specific details provided"
	}

	routes := make([]string, 0, len(corridors))
	for _, c := range corridors {
		routes = append(routes, "  - "+c)
	}

	return fmt.Sprintf(`ROLE: Senior Incident Commander for a large public event.
OBJECTIVE: Analyze field reports and issue immediate tactical commands.

--- INPUT DATA ---
• Reported Density: %s
• Field Note: "%s"
• Verified Evacuation Routes:
%s

--- ANALYSIS RULES ---
1. RISK CALCULATION: Base risk on 'Reported Density'. HOWEVER, if 'Field Note' contains keywords like "panic", "fight", "medical", "fire", or "crush", ESCALATE risk immediately.
2. ROUTE UTILIZATION: You MUST reference specific "Verified Evacuation Routes" by name in your actions to guide traffic away from the hotspot.
3. TONE: Imperative, concise, and military-grade (e.g., "Close Gate A," "Deploy Medical Team").

--- REQUIRED OUTPUT ---
Return RAW JSON only (no markdown formatting, no code blocks).
{
  "risk": "LOW | MEDIUM | HIGH | CRITICAL",
  "summary": "A single, high-impact situation report sentence.",
  "actions": [
    "Immediate Containment (e.g., 'Halt entry at [Location]')",
    "Traffic Diversion (MUST cite a specific route from inputs)",
    "Escalation/Support (e.g., 'Notify Control Room', 'Request EMS')"
  ]
}`, obs.CrowdLevel, note, strings.Join(routes, "\n"))
}
