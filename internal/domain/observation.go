package domain

import "time"

// CompetitorObservation é um registro de preço de concorrente depositado por
// um coletor externo. Somente leitura aqui; consumido dentro da janela de
// frescor configurada.
type CompetitorObservation struct {
	ID          int       `json:"id"`
	ProductID   string    `json:"product_id"`
	Source      string    `json:"source"`
	Price       float64   `json:"price"`
	Seller      string    `json:"seller"`
	Available   bool      `json:"available"`
	CollectedAt time.Time `json:"collected_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewObservationRequest struct {
	ProductID   string     `json:"product_id"`
	Source      string     `json:"source"`
	Price       float64    `json:"price"`
	Seller      string     `json:"seller"`
	Available   bool       `json:"available"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
}
