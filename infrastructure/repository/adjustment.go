package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pricing-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"github.com/vfg2006/pricing-manager-api/pkg/utils"
)

const (
	adjustmentsTable = "price_adjustments pa"
)

// AdjustmentRepository é o livro de ajustes de preço: somente inserção,
// registros imutáveis. O registro mais recente por produto controla o cooldown.
type AdjustmentRepository interface {
	Append(record *domain.AdjustmentRecord) (string, error)
	MarkStatus(recordID string, status domain.AdjustmentStatus) error
	GetLastByProductID(productID string) (*domain.AdjustmentRecord, error)
	ListByProductID(productID string, limit int) ([]*domain.AdjustmentRecord, error)
}

type adjustmentRepository struct {
	conn *postgres.Connection
}

func NewAdjustmentRepository(conn *postgres.Connection) AdjustmentRepository {
	return &adjustmentRepository{
		conn: conn,
	}
}

func (r *adjustmentRepository) Append(record *domain.AdjustmentRecord) (string, error) {
	recordID, err := utils.GenerateID()
	if err != nil {
		return "", fmt.Errorf("erro ao gerar ID do registro: %w", err)
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("price_adjustments").
		Columns("id", "product_id", "previous_price", "new_price", "reason", "source", "status", "applied_at").
		Values(
			recordID,
			record.ProductID,
			record.PreviousPrice,
			record.NewPrice,
			record.Reason,
			record.Source,
			record.Status,
			record.AppliedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return "", fmt.Errorf("erro ao executar a query: %w", err)
	}

	return recordID, nil
}

// MarkStatus registra a transição pending -> applied/rejected de um ajuste.
// Os demais campos do registro nunca são alterados.
func (r *adjustmentRepository) MarkStatus(recordID string, status domain.AdjustmentStatus) error {
	query, args, err := squirrel.StatementBuilder.
		Update("price_adjustments").
		Set("status", status).
		Where(squirrel.Eq{"id": recordID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adjustmentRepository) GetLastByProductID(productID string) (*domain.AdjustmentRecord, error) {
	query, args, err := r.selectBuilder().
		Where(squirrel.Eq{"pa.product_id": productID}).
		OrderBy("pa.applied_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	record, err := r.scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de ajuste: %w", err)
	}

	return record, nil
}

func (r *adjustmentRepository) ListByProductID(productID string, limit int) ([]*domain.AdjustmentRecord, error) {
	builder := r.selectBuilder().
		Where(squirrel.Eq{"pa.product_id": productID}).
		OrderBy("pa.applied_at DESC")

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.AdjustmentRecord, 0)
	for rows.Next() {
		record := &domain.AdjustmentRecord{}
		if err := rows.Scan(
			&record.ID,
			&record.ProductID,
			&record.PreviousPrice,
			&record.NewPrice,
			&record.Reason,
			&record.Source,
			&record.Status,
			&record.AppliedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de ajuste: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *adjustmentRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("pa.id, pa.product_id, pa.previous_price, pa.new_price, pa.reason, pa.source, pa.status, pa.applied_at").
		From(adjustmentsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *adjustmentRepository) scanRecord(row *sql.Row) (*domain.AdjustmentRecord, error) {
	record := &domain.AdjustmentRecord{}

	if err := row.Scan(
		&record.ID,
		&record.ProductID,
		&record.PreviousPrice,
		&record.NewPrice,
		&record.Reason,
		&record.Source,
		&record.Status,
		&record.AppliedAt,
	); err != nil {
		return nil, err
	}

	return record, nil
}
