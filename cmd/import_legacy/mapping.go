package main

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Styllo-POS/internal/application/auth"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/pkg/cpf"
)

// Cada toX normaliza los alias de campo de la colección legada. ok=false descarta el registro.

func toUser(r record, now time.Time) (*entity.User, bool) {
	username := r.str("username", "usuario", "user")
	hash := r.str("password", "passwordHash", "senha")
	role := entity.CanonicalRole(r.str("cargo", "role"))
	if username == "" || hash == "" || role == "" {
		return nil, false
	}
	u := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		FullName:     r.str("nomeCompleto", "nome", "fullName"),
		CPF:          cpf.Normalize(r.str("cpf")),
		Email:        strings.ToLower(r.str("email")),
		Phone:        auth.DigitsOnly(r.str("telefone", "phone", "telefoneCelular")),
	}
	if u.FullName == "" {
		u.FullName = username
	}
	u.CreatedAt = timeOr(r, now, "createdAt", "criadoEm")
	u.UpdatedAt = timeOr(r, u.CreatedAt, "updatedAt", "atualizadoEm")
	return u, true
}

func toProduct(r record, now time.Time) (*entity.Product, bool) {
	id := r.str("id", "codigo")
	name := r.str("nome", "name")
	if id == "" || name == "" {
		return nil, false
	}
	p := &entity.Product{
		ID:          id,
		Name:        name,
		Description: r.str("descricao", "description", "desc"),
		Price:       r.num("valor", "preco", "price").Abs(),
		Category:    r.str("categoriaNome", "categoria", "category"),
		Subcategory: r.str("subcategoriaNome", "subcategoria", "subcategory"),
	}
	p.CreatedAt = timeOr(r, now, "createdAt", "criadoEm")
	p.UpdatedAt = timeOr(r, p.CreatedAt, "updatedAt")
	return p, true
}

func toSale(r record) (*entity.Sale, bool) {
	date, ok := r.date("date", "data")
	seller := r.str("seller", "vendedor")
	if !ok || seller == "" {
		return nil, false
	}
	s := &entity.Sale{
		ID:     idOr(r),
		Date:   date,
		Seller: seller,
		PaymentMethod: entity.ClassifyLegacyPaymentMethod(r.str(
			"paymentMethod", "formaPagamento", "metodoPagamento", "payment", "pagamento", "metodo",
		)),
		ReceivedAmount: r.num("receivedAmount", "valorRecebido", "recebido").Abs(),
		ChangeGiven:    decimal.Max(decimal.Zero, r.num("changeGiven", "troco", "trocoEntregue")),
	}
	for _, it := range r.list("items") {
		s.Items = append(s.Items, entity.SaleItem{
			ID:        it.str("id", "codigo"),
			Name:      it.str("nome", "name"),
			UnitValue: it.num("valor", "unitValue", "price"),
		})
	}
	if len(s.Items) == 0 {
		return nil, false
	}
	return s, true
}

// toTransaction descarta tipos distintos de sangria y suprimento.
func toTransaction(r record) (*entity.CashTransaction, bool) {
	typ := strings.ToLower(r.str("type", "tipo"))
	if typ != entity.TransactionWithdrawal && typ != entity.TransactionInfusion {
		return nil, false
	}
	date, ok := r.date("date", "data")
	amount := r.num("amount", "valor").Abs()
	if !ok || !amount.IsPositive() {
		return nil, false
	}
	return &entity.CashTransaction{
		ID:          idOr(r),
		Type:        typ,
		Amount:      amount,
		User:        r.str("user", "usuario"),
		Date:        date,
		Description: r.str("description", "descricao", "reason", "motivo"),
	}, true
}

func toInfusion(r record) (*entity.Infusion, bool) {
	date, ok := r.date("date", "data")
	amount := r.num("amount", "valor", "total", "value").Abs()
	if !ok || !amount.IsPositive() {
		return nil, false
	}
	return &entity.Infusion{
		ID:          idOr(r),
		Amount:      amount,
		User:        r.str("user", "usuario", "vendedor"),
		Date:        date,
		Description: r.str("description", "descricao", "reason", "motivo"),
	}, true
}

func toRefund(r record) (*entity.Refund, bool) {
	date, ok := r.date("date", "data")
	if !ok {
		return nil, false
	}
	ref := &entity.Refund{
		ID:     idOr(r),
		SaleID: r.str("saleId", "vendaId"),
		Date:   date,
		User:   r.str("user", "usuario"),
		Reason: r.str("reason", "motivo"),
		Amount: r.num("amount", "valor").Abs(),
	}
	for _, it := range r.list("items") {
		qty := int(it.num("quantity", "quantidade").IntPart())
		if qty < 1 {
			qty = 1
		}
		ref.Items = append(ref.Items, entity.RefundItem{
			ProductID:   it.str("productId", "id", "codigo"),
			ProductName: it.str("productName", "nome", "name"),
			Quantity:    qty,
			Amount:      decimal.Max(decimal.Zero, it.num("amount", "valor")),
		})
	}
	if !ref.Value().IsPositive() {
		return nil, false
	}
	return ref, true
}

func toClosing(r record) (*entity.ClosingRecord, bool) {
	day := r.str("data", "date")
	if len(day) >= 10 {
		day = day[:10]
	}
	created, ok := r.date("criadoEm", "createdAt", "data")
	if !ok || len(day) != 10 {
		return nil, false
	}
	exp := r.object("esperado")
	cnt := r.object("contagem")
	dif := r.object("diferencas")
	c := &entity.ClosingRecord{
		ID:        idOr(r),
		Day:       day,
		CreatedAt: created,
		User:      r.str("usuario", "user"),
		Expected: entity.ExpectedSnapshot{
			Date:                  day,
			Suprimentos:           exp.num("suprimentos"),
			VendasDinheiro:        exp.num("vendasDinheiro"),
			VendasCartao:          exp.num("vendasCartao"),
			Sangrias:              exp.num("sangrias"),
			TrocoCartaoPix:        exp.num("trocoCartaoPix"),
			Devolucoes:            exp.num("devolucoes"),
			DevolucoesDinheiro:    exp.num("devolucoesDinheiro"),
			DevolucoesCartao:      exp.num("devolucoesCartao"),
			EsperadoCaixaDinheiro: exp.num("esperadoCaixaDinheiro"),
			EsperadoGeral:         exp.num("esperadoGeral"),
			AjusteTroco:           exp.num("ajusteTroco"),
			TrocoEntregue:         exp.num("trocoEntregue"),
		},
		Counted: entity.CountedAmounts{
			Cash: cnt.num("dinheiroContado", "dinheiro"),
			Card: cnt.num("cartaoContado", "cartao", "cartaoExtrato"),
		},
		Differences: entity.Differences{
			Cash:    dif.num("dinheiro"),
			Card:    dif.num("cartao"),
			Overall: dif.num("geral"),
		},
		Status: legacyStatus(r.str("status")),
	}
	if corte, ok := exp.date("corte", "cutoff"); ok {
		c.Expected.Corte = &corte
	}
	return c, true
}

// legacyStatus traduce Bateu/Faltou/Sobrando a las constantes de dominio.
func legacyStatus(s string) string {
	switch v := strings.ToLower(s); {
	case strings.HasPrefix(v, "falt"), v == strings.ToLower(entity.ClosingShort):
		return entity.ClosingShort
	case strings.HasPrefix(v, "sobr"), v == strings.ToLower(entity.ClosingOver):
		return entity.ClosingOver
	}
	return entity.ClosingMatched
}

// idOr conserva el id legado (Date.now()) o genera uno nuevo.
func idOr(r record) string {
	if id := r.str("id"); id != "" {
		return id
	}
	return uuid.New().String()
}

func timeOr(r record, def time.Time, keys ...string) time.Time {
	if t, ok := r.date(keys...); ok {
		return t
	}
	return def
}
