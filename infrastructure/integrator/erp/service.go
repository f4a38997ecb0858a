package erp

import (
	"github.com/pkg/errors"
	erpdomain "github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/domain"
	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/erpclient"
	"github.com/vfg2006/pricing-manager-api/internal/config"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
)

// ERPIntegrator é a fronteira com o sistema de estoque/ERP. ListProducts
// normaliza os registros brutos em domain.Product; ApplyRemotePrice é o
// atualizador injetado no pipeline de aplicação de preços.
type ERPIntegrator interface {
	ListProducts() ([]*domain.Product, error)
	ApplyRemotePrice(productID string, price float64) error
}

type ERPService struct {
	cfg    *config.Config
	Client erpclient.Client
}

func New(cfg *config.Config, client erpclient.Client) ERPIntegrator {
	return &ERPService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *ERPService) ListProducts() ([]*domain.Product, error) {
	items, err := s.Client.GetProducts()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar catálogo no ERP")
	}

	products := make([]*domain.Product, 0, len(items))
	for _, item := range items {
		if item.Code == "" {
			continue
		}
		products = append(products, normalizeItem(item))
	}

	return products, nil
}

func (s *ERPService) ApplyRemotePrice(productID string, price float64) error {
	if err := s.Client.UpdatePrice(productID, price); err != nil {
		return errors.Wrapf(err, "erro ao atualizar preço do produto %s no ERP", productID)
	}

	return nil
}

// normalizeItem converte o registro bruto do ERP no Product tipado.
// Toda a inconsistência de chaves do ERP é resolvida aqui; o núcleo de
// precificação nunca enxerga o formato externo.
func normalizeItem(item erpdomain.Item) *domain.Product {
	status := domain.ProductStatusInactive
	if item.Active {
		status = domain.ProductStatusActive
	}

	return &domain.Product{
		ID:           item.Code,
		ExternalID:   item.Code,
		Name:         item.Description,
		Brand:        item.Brand,
		Category:     item.Category,
		CurrentPrice: item.SalePrice(),
		Cost:         item.CostPrice(),
		Status:       status,
	}
}
