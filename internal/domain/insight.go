package domain

import "strings"

// InsightSet é a sequência ordenada de frases geradas a partir de uma agregação
type InsightSet []string

// String junta as frases, uma por linha
func (s InsightSet) String() string {
	return strings.Join(s, "\n")
}

// ParseInsightSet reconstrói o conjunto a partir do texto persistido
func ParseInsightSet(text string) InsightSet {
	text = strings.TrimSpace(text)
	if text == "" {
		return InsightSet{}
	}
	return InsightSet(strings.Split(text, "\n"))
}
