// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// Product é o registro normalizado de um produto do catálogo.
// Preço e custo são gravados pela sincronização com o ERP; o núcleo de
// precificação apenas lê esses valores.
type Product struct {
	ID           string        `json:"id"`
	ExternalID   string        `json:"external_id"`
	Name         string        `json:"name"`
	Brand        string        `json:"brand"`
	Category     string        `json:"category"`
	CurrentPrice float64       `json:"current_price"`
	Cost         float64       `json:"cost"`
	Status       ProductStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// SyncCatalogResponse resume o resultado de uma sincronização do catálogo
type SyncCatalogResponse struct {
	TotalFetched int    `json:"total_fetched"`
	TotalSynced  int    `json:"total_synced"`
	TotalSkipped int    `json:"total_skipped"`
	Duration     string `json:"duration"`
}
