package cash

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Styllo-POS/internal/domain"
)

const dayLayout = "2006-01-02"

// DayKey devuelve el día calendario (YYYY-MM-DD) de t en la zona loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(dayLayout)
}

// ParseDay valida la fecha recibida del cliente y la reduce a día calendario.
// Acepta YYYY-MM-DD o un timestamp RFC3339 (que se convierte a loc).
func ParseDay(s string, loc *time.Location) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: data é obrigatória", domain.ErrInvalidInput)
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t.Format(dayLayout), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayKey(t, loc), nil
	}
	return "", fmt.Errorf("%w: data inválida %q", domain.ErrInvalidInput, s)
}

// DayBounds devuelve [inicio, fin) del día en loc. Lo usan los repositorios
// para acotar la lectura; el filtro exacto lo hace el Calculator.
func DayBounds(day string, loc *time.Location) (time.Time, time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	start, err := time.ParseInLocation(dayLayout, day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: data inválida %q", domain.ErrInvalidInput, day)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// ParseBound interpreta un límite de filtro ("from"/"to"). Vacío devuelve nil.
// Con YYYY-MM-DD, from es el inicio del día y to el inicio del día siguiente
// (límite exclusivo); con RFC3339 el instante exacto (to se vuelve inclusivo).
func ParseBound(s string, loc *time.Location, upper bool) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dayLayout, s, loc); err == nil {
		if upper {
			t = t.AddDate(0, 0, 1)
		}
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		if upper {
			t = t.Add(time.Nanosecond)
		}
		return &t, nil
	}
	return nil, fmt.Errorf("%w: data inválida %q", domain.ErrInvalidInput, s)
}
