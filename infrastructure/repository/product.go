package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/pricing-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

const (
	productsTable = "products p"
)

type ProductRepository interface {
	GetByID(productID string) (*domain.Product, error)
	GetByExternalID(externalID string) (*domain.Product, error)
	ListActive() ([]*domain.Product, error)
	SaveOrUpdate(products []*domain.Product) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetByID(productID string) (*domain.Product, error) {
	return r.getProduct(squirrel.Eq{"p.id": productID})
}

func (r *productRepository) GetByExternalID(externalID string) (*domain.Product, error) {
	return r.getProduct(squirrel.Eq{"p.external_id": externalID})
}

func (r *productRepository) getProduct(whereClause map[string]interface{}) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.external_id, p.name, p.brand, p.category, p.current_price, p.cost, p.status, p.created_at, p.updated_at").
		From(productsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	product, err := r.deserializeProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) deserializeProduct(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	if err := row.Scan(
		&product.ID,
		&product.ExternalID,
		&product.Name,
		&product.Brand,
		&product.Category,
		&product.CurrentPrice,
		&product.Cost,
		&product.Status,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) ListActive() ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.external_id, p.name, p.brand, p.category, p.current_price, p.cost, p.status, p.created_at, p.updated_at").
		From(productsTable).
		Where(squirrel.Eq{"p.status": domain.ProductStatusActive}).
		OrderBy("p.name ASC").
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

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(
			&product.ID,
			&product.ExternalID,
			&product.Name,
			&product.Brand,
			&product.Category,
			&product.CurrentPrice,
			&product.Cost,
			&product.Status,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

// SaveOrUpdate grava o lote de produtos normalizados vindos do ERP.
// O preço e o custo locais são sempre sobrescritos: o ERP é a fonte da verdade.
func (r *productRepository) SaveOrUpdate(products []*domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("products").
		Columns("id", "external_id", "name", "brand", "category", "current_price", "cost", "status").
		PlaceholderFormat(squirrel.Dollar)

	for _, product := range products {
		query = query.Values(
			product.ID,
			product.ExternalID,
			product.Name,
			product.Brand,
			product.Category,
			product.CurrentPrice,
			product.Cost,
			product.Status,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (external_id) DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			current_price = EXCLUDED.current_price,
			cost = EXCLUDED.cost,
			status = EXCLUDED.status,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}
