package cash_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/cash"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testDay = "2024-03-10"

func at(hour, min int) time.Time {
	return time.Date(2024, 3, 10, hour, min, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Equal(t, money(want).StringFixed(2), got.StringFixed(2), field)
}

func sale(id string, when time.Time, method entity.PaymentMethod, values ...string) entity.Sale {
	s := entity.Sale{ID: id, Date: when, Seller: "ana", PaymentMethod: method}
	for i, v := range values {
		s.Items = append(s.Items, entity.SaleItem{ID: id + "-" + string(rune('a'+i)), Name: "peça", UnitValue: money(v)})
	}
	return s
}

func tx(id, kind, amount string, when time.Time) entity.CashTransaction {
	return entity.CashTransaction{ID: id, Type: kind, Amount: money(amount), User: "gerente", Date: when}
}

// baseLedger: venta en efectivo 50, venta con tarjeta 30, sangria 20, suprimento 100.
func baseLedger() cash.Ledger {
	return cash.Ledger{
		Sales: []entity.Sale{
			sale("s1", at(10, 0), entity.PaymentCash, "20", "30"),
			sale("s2", at(11, 0), entity.PaymentCard, "30"),
		},
		Transactions: []entity.CashTransaction{
			tx("t1", entity.TransactionWithdrawal, "20", at(12, 0)),
			tx("t2", entity.TransactionInfusion, "100", at(8, 0)),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Summarize
// ──────────────────────────────────────────────────────────────────────────────

func TestSummarize_BasicDay(t *testing.T) {
	s, err := cash.Calculator{}.Summarize(testDay, baseLedger())
	require.NoError(t, err)

	assert.Equal(t, testDay, s.Date)
	assert.Nil(t, s.Corte, "sin fechamento previo no hay corte")
	assertMoney(t, "100", s.Suprimentos, "suprimentos")
	assertMoney(t, "50", s.VendasDinheiro, "vendasDinheiro")
	assertMoney(t, "30", s.VendasCartao, "vendasCartao")
	assertMoney(t, "20", s.Sangrias, "sangrias")
	assertMoney(t, "0", s.TrocoCartaoPix, "trocoCartaoPix")
	assertMoney(t, "130", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
	assertMoney(t, "160", s.EsperadoGeral, "esperadoGeral")
}

func TestSummarize_FullCashRefund(t *testing.T) {
	l := baseLedger()
	l.Refunds = []entity.Refund{{ID: "r1", SaleID: "s1", Date: at(13, 0), Amount: money("50")}}

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	assertMoney(t, "50", s.DevolucoesDinheiro, "devolucoesDinheiro")
	assertMoney(t, "0", s.DevolucoesCartao, "devolucoesCartao")
	assertMoney(t, "50", s.Devolucoes, "devolucoes")
	// 100 de suprimento menos 20 de sangria; la venta en efectivo queda neta en cero
	assertMoney(t, "80", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
	assertMoney(t, "110", s.EsperadoGeral, "esperadoGeral")
}

func TestSummarize_CardRefundIsNetOfCardSales(t *testing.T) {
	l := baseLedger()
	l.Refunds = []entity.Refund{{
		ID: "r1", SaleID: "s2", Date: at(13, 0),
		Items: []entity.RefundItem{{ProductID: "p1", Quantity: 1, Amount: money("30")}},
	}}

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	assertMoney(t, "30", s.DevolucoesCartao, "devolucoesCartao")
	assertMoney(t, "0", s.VendasCartao, "vendasCartao neto")
	assertMoney(t, "130", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
	assertMoney(t, "130", s.EsperadoGeral, "esperadoGeral")
}

func TestSummarize_UnknownSaleRefundCountsAsCash(t *testing.T) {
	l := baseLedger()
	l.Refunds = []entity.Refund{
		{ID: "r1", SaleID: "borrada", Date: at(13, 0), Amount: money("10")},
		{ID: "r2", Date: at(13, 5), Amount: money("5")},
		{ID: "r3", SaleID: "s2", Date: at(13, 10)}, // valor cero: se ignora
	}

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	assertMoney(t, "15", s.DevolucoesDinheiro, "devolucoesDinheiro")
	assertMoney(t, "0", s.DevolucoesCartao, "devolucoesCartao")
	assertMoney(t, "115", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
}

func TestSummarize_DigitalSaleUsesReceivedAmountAndChange(t *testing.T) {
	l := cash.Ledger{Sales: []entity.Sale{
		func() entity.Sale {
			s := sale("s1", at(10, 0), entity.PaymentPix, "45")
			s.ReceivedAmount = money("50")
			s.ChangeGiven = money("5")
			return s
		}(),
		func() entity.Sale {
			s := sale("s2", at(10, 30), entity.PaymentCard, "25")
			s.ChangeGiven = money("-3") // negativo no suma troco
			return s
		}(),
	}}

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	assertMoney(t, "75", s.VendasCartao, "vendasCartao")
	assertMoney(t, "5", s.TrocoCartaoPix, "trocoCartaoPix")
	assertMoney(t, "-5", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
	assertMoney(t, "70", s.EsperadoGeral, "esperadoGeral")
}

func TestSummarize_CorteExcludesClosedRecords(t *testing.T) {
	l := baseLedger()
	l.Closings = []entity.ClosingRecord{
		{ID: "c-old", Day: testDay, CreatedAt: at(9, 0)},
		{ID: "c-new", Day: testDay, CreatedAt: at(11, 0)},
		{ID: "c-other", Day: "2024-03-09", CreatedAt: at(23, 0)},
	}
	// registro exactamente en el corte: excluido
	l.Transactions = append(l.Transactions, tx("t3", entity.TransactionInfusion, "7", at(11, 0)))
	l.Transactions = append(l.Transactions, tx("t4", entity.TransactionInfusion, "15", at(11, 1)))

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	require.NotNil(t, s.Corte)
	assert.True(t, s.Corte.Equal(at(11, 0)))
	assertMoney(t, "0", s.VendasDinheiro, "venta de las 10h ya cerrada")
	assertMoney(t, "0", s.VendasCartao, "venta de las 11h exactamente en el corte")
	assertMoney(t, "15", s.Suprimentos, "suprimentos")
	assertMoney(t, "20", s.Sangrias, "sangrias")
	assertMoney(t, "-5", s.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
}

func TestSummarize_OtherDaysIgnored(t *testing.T) {
	l := baseLedger()
	l.Sales = append(l.Sales, sale("s9", at(10, 0).AddDate(0, 0, 1), entity.PaymentCash, "999"))

	s, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)
	assertMoney(t, "50", s.VendasDinheiro, "vendasDinheiro")
}

func TestSummarize_LocationDefinesDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	// 01:00 UTC del día 11 sigue siendo el día 10 en UTC-3
	l := cash.Ledger{Sales: []entity.Sale{
		sale("s1", time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC), entity.PaymentCash, "40"),
	}}

	s, err := cash.Calculator{Location: loc}.Summarize(testDay, l)
	require.NoError(t, err)
	assertMoney(t, "40", s.VendasDinheiro, "vendasDinheiro")

	s, err = cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)
	assertMoney(t, "0", s.VendasDinheiro, "en UTC cae en el día siguiente")
}

func TestSummarize_InvariantsHold(t *testing.T) {
	l := baseLedger()
	l.Refunds = []entity.Refund{{ID: "r1", SaleID: "s2", Date: at(13, 0), Amount: money("12.5")}}

	first, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)
	second, err := cash.Calculator{}.Summarize(testDay, l)
	require.NoError(t, err)

	assert.Equal(t, first, second, "mismas entradas producen el mismo resumen")
	assert.True(t, first.EsperadoGeral.Equal(first.EsperadoCaixaDinheiro.Add(first.VendasCartao)))
}

func TestSummarize_InvalidDay(t *testing.T) {
	for _, in := range []string{"", "   ", "10/03/2024", "2024-13-01"} {
		_, err := cash.Calculator{}.Summarize(in, baseLedger())
		require.Error(t, err, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MergeInfusions
// ──────────────────────────────────────────────────────────────────────────────

func TestMergeInfusions_DedupByID(t *testing.T) {
	txs := []entity.CashTransaction{tx("i1", entity.TransactionInfusion, "100", at(8, 0))}
	ledger := []entity.Infusion{{ID: "i1", Amount: money("100"), User: "gerente", Date: at(8, 0)}}

	merged := cash.Calculator{}.MergeInfusions(txs, ledger)
	require.Len(t, merged, 1)

	s, err := cash.Calculator{}.Summarize(testDay, cash.Ledger{Transactions: txs, Infusions: ledger})
	require.NoError(t, err)
	assertMoney(t, "100", s.Suprimentos, "suprimentos")
}

func TestMergeInfusions_DedupByCompositeKey(t *testing.T) {
	txs := []entity.CashTransaction{{
		Type: entity.TransactionInfusion, Amount: money("50.00"), User: "Gerente", Date: at(8, 0), Description: "Troco inicial",
	}}
	ledger := []entity.Infusion{
		{Amount: money("50"), User: "gerente", Date: at(9, 30), Description: "troco inicial"},
		{Amount: money("50"), User: "gerente", Date: at(9, 30), Description: "reforço"},
	}

	merged := cash.Calculator{}.MergeInfusions(txs, ledger)
	require.Len(t, merged, 2)
	assert.Equal(t, "reforço", merged[0].Description, "más reciente primero")
}

func TestMergeInfusions_IgnoresWithdrawals(t *testing.T) {
	txs := []entity.CashTransaction{tx("t1", entity.TransactionWithdrawal, "20", at(12, 0))}
	assert.Empty(t, cash.Calculator{}.MergeInfusions(txs, nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// ApplyChangeDelta / LatestCutover / ParseDay
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyChangeDelta(t *testing.T) {
	s, err := cash.Calculator{}.Summarize(testDay, baseLedger())
	require.NoError(t, err)

	adj := cash.ApplyChangeDelta(s, money("2.5"), money("7"))
	assertMoney(t, "132.5", adj.EsperadoCaixaDinheiro, "esperadoCaixaDinheiro")
	assertMoney(t, "162.5", adj.EsperadoGeral, "esperadoGeral")
	assertMoney(t, "2.5", adj.AjusteTroco, "ajusteTroco")
	assertMoney(t, "7", adj.TrocoEntregue, "trocoEntregue")
	assertMoney(t, "130", s.EsperadoCaixaDinheiro, "el original no se modifica")

	neg := cash.ApplyChangeDelta(s, money("-1"), decimal.Zero)
	assertMoney(t, "129", neg.EsperadoCaixaDinheiro, "delta negativo")
}

func TestLatestCutover_IgnoresFuture(t *testing.T) {
	now := at(15, 0)
	closings := []entity.ClosingRecord{
		{Day: "2024-03-09", CreatedAt: at(9, 0).AddDate(0, 0, -1)},
		{Day: testDay, CreatedAt: at(14, 0)},
		{Day: testDay, CreatedAt: at(16, 0)},
	}
	got := cash.LatestCutover(closings, now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(at(14, 0)))
	assert.Nil(t, cash.LatestCutover(nil, now))
}

func TestParseDay(t *testing.T) {
	day, err := cash.ParseDay("2024-03-10", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, testDay, day)

	day, err = cash.ParseDay("2024-03-11T01:00:00Z", time.FixedZone("BRT", -3*60*60))
	require.NoError(t, err)
	assert.Equal(t, testDay, day)

	_, err = cash.ParseDay("ontem", time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseBound(t *testing.T) {
	from, err := cash.ParseBound("2024-03-10", time.UTC, false)
	require.NoError(t, err)
	assert.True(t, from.Equal(at(0, 0)))

	to, err := cash.ParseBound("2024-03-10", time.UTC, true)
	require.NoError(t, err)
	assert.True(t, to.Equal(at(0, 0).AddDate(0, 0, 1)), "to de día es exclusivo al día siguiente")

	none, err := cash.ParseBound("  ", time.UTC, true)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = cash.ParseBound("amanhã", time.UTC, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
