package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/boraedu/bora-hub-api/infrastructure/database/postgres"
	"github.com/boraedu/bora-hub-api/internal/domain"
	"github.com/lib/pq"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const uniqueViolation = "23505"

// translateError converte erros do driver nos erros de domínio
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrConflict
	}

	return err
}

// checkAffected devolve ErrNotFound quando o comando não alterou nenhuma linha
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// applyPeriod restringe a coluna ao período informado, ignorando limites vazios
func applyPeriod(builder squirrel.SelectBuilder, column string, period domain.Period) squirrel.SelectBuilder {
	if !period.Start.IsZero() {
		builder = builder.Where(squirrel.GtOrEq{column: period.Start})
	}
	if !period.End.IsZero() {
		builder = builder.Where(squirrel.LtOrEq{column: period.EndOfDay()})
	}
	return builder
}

// execute roda um comando de escrita; com mustAffect, nenhuma linha alterada vira ErrNotFound
func execute(ctx context.Context, db postgres.Queryer, builder squirrel.Sqlizer, mustAffect bool) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}

	if mustAffect {
		return checkAffected(result)
	}
	return nil
}

// selectAll executa a consulta e converte cada linha com scan
func selectAll[T any](ctx context.Context, db postgres.Queryer, builder squirrel.SelectBuilder, scan func(rowScanner) (*T, error)) ([]*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// selectOne executa a consulta esperando uma única linha
func selectOne[T any](ctx context.Context, db postgres.Queryer, builder squirrel.SelectBuilder, scan func(rowScanner) (*T, error)) (*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return item, nil
}
