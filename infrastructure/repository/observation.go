package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pricing-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

const (
	observationsTable = "competitor_observations co"
)

// CompetitorObservationRepository guarda os registros de preço depositados
// pelos coletores externos. Somente inserção e leitura; nunca atualização.
type CompetitorObservationRepository interface {
	ListSince(productID string, since time.Time) ([]*domain.CompetitorObservation, error)
	Save(observation *domain.CompetitorObservation) error
	DeleteOlderThan(days int) (int64, error)
}

type competitorObservationRepository struct {
	conn *postgres.Connection
}

func NewCompetitorObservationRepository(conn *postgres.Connection) CompetitorObservationRepository {
	return &competitorObservationRepository{
		conn: conn,
	}
}

func (r *competitorObservationRepository) ListSince(productID string, since time.Time) ([]*domain.CompetitorObservation, error) {
	query, args, err := squirrel.
		Select("co.id, co.product_id, co.source, co.price, co.seller, co.available, co.collected_at, co.created_at").
		From(observationsTable).
		Where(squirrel.Eq{"co.product_id": productID}).
		Where(squirrel.GtOrEq{"co.collected_at": since}).
		OrderBy("co.collected_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
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

	observations := make([]*domain.CompetitorObservation, 0)
	for rows.Next() {
		observation := &domain.CompetitorObservation{}
		if err := rows.Scan(
			&observation.ID,
			&observation.ProductID,
			&observation.Source,
			&observation.Price,
			&observation.Seller,
			&observation.Available,
			&observation.CollectedAt,
			&observation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear observação: %w", err)
		}
		observations = append(observations, observation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return observations, nil
}

func (r *competitorObservationRepository) Save(observation *domain.CompetitorObservation) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("competitor_observations").
		Columns("product_id", "source", "price", "seller", "available", "collected_at").
		Values(
			observation.ProductID,
			observation.Source,
			observation.Price,
			observation.Seller,
			observation.Available,
			observation.CollectedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// DeleteOlderThan remove observações fora de qualquer janela de frescor útil
func (r *competitorObservationRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("competitor_observations").
		Where(squirrel.Lt{"collected_at": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
