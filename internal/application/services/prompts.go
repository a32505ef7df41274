package services

import (
	"fmt"
	"strings"

	"github.com/GowthamPulluri/Healthcare-chatbot/internal/domain/entities"
	"github.com/GowthamPulluri/Healthcare-chatbot/pkg/language"
)

const systemPromptBase = `You are a multilingual health assistant for everyday medical questions. You are not a doctor and you never diagnose or prescribe.

Rules:
- Give practical, safe guidance for common conditions and always recommend seeing a doctor for anything serious, persistent, or unclear.
- If the message suggests a medical emergency, tell the user to call emergency services (108) immediately and set "emergency" to true.
- Never invent medicine names or doses.

Return ONLY a JSON object with exactly these keys:
{"response": string, "suggestions": [string], "emergency": boolean, "followUp": string, "confidence": number between 0 and 1}
No markdown, no code fences, no text outside the JSON object.`

var languageDirectives = map[string]string{
	"en": "Respond in English.",
	"hi": "Respond in Hindi (हिंदी में उत्तर दें).",
	"te": "Respond in Telugu (తెలుగులో సమాధానం ఇవ్వండి).",
	"ta": "Respond in Tamil (தமிழில் பதிலளிக்கவும்).",
	"kn": "Respond in Kannada (ಕನ್ನಡದಲ್ಲಿ ಉತ್ತರಿಸಿ).",
	"ml": "Respond in Malayalam (മലയാളത്തിൽ മറുപടി നൽകുക).",
}

// buildSystemPrompt assembles the fixed guidance, a note about the user's
// recorded conditions when any exist, and the reply-language directive.
func buildSystemPrompt(userConditions []string, lang string) string {
	var b strings.Builder
	b.WriteString(systemPromptBase)

	if len(userConditions) > 0 {
		fmt.Fprintf(&b, "\n\nThe user has these known conditions: %s. Always consider them in your answer.", strings.Join(userConditions, ", "))
	}

	directive, ok := languageDirectives[lang]
	if !ok {
		directive = languageDirectives[language.Default]
	}
	b.WriteString("\n\n")
	b.WriteString(directive)

	return b.String()
}

// buildUserPrompt embeds the message and what the extractor made of it.
func buildUserPrompt(message string, intent entities.Intent, entityList []string) string {
	terms := "none"
	if len(entityList) > 0 {
		terms = strings.Join(entityList, ", ")
	}
	return fmt.Sprintf("User message: %s\nDetected intent: %s\nExtracted medical terms: %s", message, intent, terms)
}
