package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const (
	// MonthLayout é o formato dos períodos mensais (ex: 2024-02)
	MonthLayout = "2006-01"
	// DisplayDateLayout é o formato de data exibido no relatório
	DisplayDateLayout = "02/01/2006"
)

// ParseFlexibleDate interpreta datas em formatos variados (ISO, dd/mm/yyyy, mm/dd/yyyy,
// nomes de meses, timestamps). Datas ambíguas são lidas como mês/dia; se o mês for inválido
// a leitura é refeita trocando dia e mês. O resultado é truncado para o dia, em UTC.
func ParseFlexibleDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	parsed, err := dateparse.ParseIn(value, time.UTC, dateparse.RetryAmbiguousDateWithSwap(true))
	if err != nil {
		return time.Time{}, err
	}

	return TruncateToDay(parsed), nil
}

// TruncateToDay remove o horário mantendo o dia do calendário
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthKey retorna o período mensal de uma data no formato yyyy-mm
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}
