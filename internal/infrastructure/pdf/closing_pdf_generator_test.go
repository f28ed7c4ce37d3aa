package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
)

func TestFormatBRL(t *testing.T) {
	cases := map[string]string{
		"0":       "R$ 0,00",
		"10.5":    "R$ 10,50",
		"1234.56": "R$ 1.234,56",
		"-10":     "-R$ 10,00",
		"1000000": "R$ 1.000.000,00",
		"999.999": "R$ 1.000,00",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatBRL(decimal.RequireFromString(in)), in)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Bateu", StatusLabel(entity.ClosingMatched))
	assert.Equal(t, "Faltou", StatusLabel(entity.ClosingShort))
	assert.Equal(t, "Sobrou", StatusLabel(entity.ClosingOver))
}

func TestGenerateClosingPDF(t *testing.T) {
	corte := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	rec := &entity.ClosingRecord{
		ID:        "3f0c2a8e-0000-4000-8000-000000000001",
		Day:       "2024-05-10",
		CreatedAt: corte.Add(6 * time.Hour),
		User:      "gerente",
		Expected: entity.ExpectedSnapshot{
			Date:                  "2024-05-10",
			Suprimentos:           decimal.NewFromInt(100),
			VendasDinheiro:        decimal.NewFromInt(30),
			VendasCartao:          decimal.NewFromInt(50),
			EsperadoCaixaDinheiro: decimal.NewFromInt(130),
			EsperadoGeral:         decimal.NewFromInt(180),
			Corte:                 &corte,
		},
		Counted:     entity.CountedAmounts{Cash: decimal.NewFromInt(120), Card: decimal.NewFromInt(50)},
		Differences: entity.Differences{Cash: decimal.NewFromInt(-10), Card: decimal.Zero, Overall: decimal.NewFromInt(-10)},
		Status:      entity.ClosingShort,
	}

	b, err := NewMarotoPDFGenerator("").GenerateClosingPDF(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, len(b) > 4)
	assert.Equal(t, "%PDF", string(b[:4]))
}
