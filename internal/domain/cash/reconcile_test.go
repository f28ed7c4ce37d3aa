package cash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

func TestReconcile_ShortCashWithExactCard(t *testing.T) {
	s, err := cash.Calculator{}.Summarize(testDay, baseLedger())
	require.NoError(t, err)

	diff, status := cash.Reconcile(s, entity.CountedAmounts{Cash: money("125"), Card: money("30")}, cash.DefaultTolerance)

	assertMoney(t, "-5", diff.Cash, "diferença dinheiro")
	assertMoney(t, "0", diff.Card, "diferença cartão")
	assertMoney(t, "-5", diff.Overall, "diferença geral")
	assert.Equal(t, entity.ClosingShort, status)
}

func TestReconcile_UsesAdjustedExpectedCash(t *testing.T) {
	s, err := cash.Calculator{}.Summarize(testDay, baseLedger())
	require.NoError(t, err)
	s = cash.ApplyChangeDelta(s, money("3"), money("0"))

	diff, status := cash.Reconcile(s, entity.CountedAmounts{Cash: money("133"), Card: money("30")}, cash.DefaultTolerance)
	assertMoney(t, "0", diff.Cash, "diferença dinheiro")
	assert.Equal(t, entity.ClosingMatched, status)
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name         string
		cashD, cardD string
		want         string
	}{
		{"zero", "0", "0", entity.ClosingMatched},
		{"límite exacto de la tolerancia", "0.01", "0", entity.ClosingMatched},
		{"límite negativo", "-0.01", "0", entity.ClosingMatched},
		{"faltante en dinero", "-0.02", "0", entity.ClosingShort},
		{"faltante en cartão", "0", "-1", entity.ClosingShort},
		{"faltante manda sobre sobrante", "-5", "10", entity.ClosingShort},
		{"sobrante en dinero", "0.02", "0", entity.ClosingOver},
		{"sobrante en cartão", "0", "3", entity.ClosingOver},
		{"total fuera de tolerancia hacia abajo", "-0.01", "-0.01", entity.ClosingShort},
		{"total fuera de tolerancia hacia arriba", "0.01", "0.01", entity.ClosingOver},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := entity.Differences{Cash: money(tc.cashD), Card: money(tc.cardD)}
			d.Overall = d.Cash.Add(d.Card)
			assert.Equal(t, tc.want, cash.Status(d, cash.DefaultTolerance))
		})
	}
}
