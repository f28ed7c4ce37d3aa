package cash

import (
	"sort"
	"strings"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// MergeInfusions une los suprimentos del log de transacciones con los del libro
// propio, sin repetir. Dos registros son el mismo si comparten id o, cuando
// falta el id, el mismo día, valor, usuario y descripción. Resultado: más
// reciente primero.
func (c Calculator) MergeInfusions(transactions []entity.CashTransaction, ledger []entity.Infusion) []entity.Infusion {
	seen := make(map[string]struct{}, len(transactions)+len(ledger))
	out := make([]entity.Infusion, 0, len(transactions)+len(ledger))

	add := func(inf entity.Infusion) {
		k := c.infusionKey(inf)
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		out = append(out, inf)
	}

	for _, t := range transactions {
		if t.Type != entity.TransactionInfusion {
			continue
		}
		add(entity.Infusion{
			ID:          t.ID,
			Amount:      t.Amount,
			User:        t.User,
			Date:        t.Date,
			Description: t.Description,
		})
	}
	for _, inf := range ledger {
		add(inf)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (c Calculator) infusionKey(inf entity.Infusion) string {
	if inf.ID != "" {
		return "id:" + inf.ID
	}
	return "k:" + strings.Join([]string{
		DayKey(inf.Date, c.location()),
		inf.Amount.Abs().StringFixed(2),
		strings.ToLower(strings.TrimSpace(inf.User)),
		strings.ToLower(strings.TrimSpace(inf.Description)),
	}, "|")
}
