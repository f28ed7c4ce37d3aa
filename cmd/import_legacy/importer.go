package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jhoicas/Styllo-POS/internal/domain"
	"github.com/jhoicas/Styllo-POS/internal/domain/entity"
	"github.com/jhoicas/Styllo-POS/pkg/logger"
)

// creator lo cumplen todos los repositorios Postgres.
type creator[T any] interface {
	Create(ctx context.Context, v *T) error
}

// Targets destinos de la importación.
type Targets struct {
	Users        creator[entity.User]
	Products     creator[entity.Product]
	Sales        creator[entity.Sale]
	Transactions creator[entity.CashTransaction]
	Infusions    creator[entity.Infusion]
	Refunds      creator[entity.Refund]
	Closings     creator[entity.ClosingRecord]
}

// Stats resultado por colección.
type Stats struct {
	Read      int
	Imported  int
	Duplicate int
	Skipped   int
}

// Importer copia las colecciones JSON del sistema anterior a la base.
// Reejecutarlo es seguro: los registros ya importados chocan por clave y se cuentan como duplicados.
type Importer struct {
	dir string
	t   Targets
	log *logger.Logger
	now func() time.Time
}

// NewImporter construye el importador sobre el directorio de datos legado.
func NewImporter(dir string, t Targets, log *logger.Logger) *Importer {
	return &Importer{dir: dir, t: t, log: log, now: time.Now}
}

// Run importa todas las colecciones en orden de dependencia.
func (im *Importer) Run(ctx context.Context) (map[string]Stats, error) {
	now := im.now().UTC()
	out := make(map[string]Stats)
	steps := []struct {
		file string
		run  func([]record) (Stats, error)
	}{
		{"database.json", func(rs []record) (Stats, error) {
			return importAll(ctx, rs, im.t.Users, func(r record) (*entity.User, bool) { return toUser(r, now) })
		}},
		{"estoque.json", func(rs []record) (Stats, error) {
			return importAll(ctx, rs, im.t.Products, func(r record) (*entity.Product, bool) { return toProduct(r, now) })
		}},
		{"sales.json", func(rs []record) (Stats, error) { return importAll(ctx, rs, im.t.Sales, toSale) }},
		{"cash_transactions.json", func(rs []record) (Stats, error) {
			return importAll(ctx, rs, im.t.Transactions, toTransaction)
		}},
		{"suprimentos.json", func(rs []record) (Stats, error) { return importAll(ctx, rs, im.t.Infusions, toInfusion) }},
		{"devolucoes.json", func(rs []record) (Stats, error) { return importAll(ctx, rs, im.t.Refunds, toRefund) }},
		{"fechamentohistorico.json", func(rs []record) (Stats, error) { return importAll(ctx, rs, im.t.Closings, toClosing) }},
	}
	for _, step := range steps {
		records, err := readCollection(filepath.Join(im.dir, step.file))
		if err != nil {
			return out, fmt.Errorf("%s: %w", step.file, err)
		}
		st, err := step.run(records)
		out[step.file] = st
		if err != nil {
			return out, fmt.Errorf("%s: %w", step.file, err)
		}
		im.log.Info().
			Str("file", step.file).
			Int("read", st.Read).
			Int("imported", st.Imported).
			Int("duplicate", st.Duplicate).
			Int("skipped", st.Skipped).
			Msg("colección importada")
	}
	return out, nil
}

func importAll[T any](ctx context.Context, records []record, dst creator[T], conv func(record) (*T, bool)) (Stats, error) {
	st := Stats{Read: len(records)}
	if dst == nil {
		st.Skipped = len(records)
		return st, nil
	}
	for _, r := range records {
		v, ok := conv(r)
		if !ok {
			st.Skipped++
			continue
		}
		if err := dst.Create(ctx, v); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				st.Duplicate++
				continue
			}
			return st, err
		}
		st.Imported++
	}
	return st, nil
}
