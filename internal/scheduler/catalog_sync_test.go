package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	erpmocks "github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/mocks"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/pricing-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestCatalogSyncService_syncCatalog(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(erpService *erpmocks.MockERPIntegrator, productRepo *mocks.MockProductRepository)
		validate func(t *testing.T, service *CatalogSyncService)
	}{
		{
			name: "Produtos válidos são persistidos e inválidos pulados",
			setup: func(erpService *erpmocks.MockERPIntegrator, productRepo *mocks.MockProductRepository) {
				erpService.EXPECT().ListProducts().Return([]*domain.Product{
					{ID: "SKU001", Name: "Produto A", CurrentPrice: 100.0, Cost: 60.0},
					{ID: "SKU002", Name: "Produto sem preço", CurrentPrice: 0},
					{ID: "SKU003", Name: "Produto B", CurrentPrice: 50.0, Cost: 30.0},
				}, nil)

				productRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(products []*domain.Product) error {
						assert.Len(t, products, 2)
						assert.Equal(t, "SKU001", products[0].ID)
						assert.Equal(t, "SKU003", products[1].ID)
						return nil
					})
			},
			validate: func(t *testing.T, service *CatalogSyncService) {
				assert.NotNil(t, service.lastSyncResult)
				assert.Equal(t, 3, service.lastSyncResult.TotalFetched)
				assert.Equal(t, 2, service.lastSyncResult.TotalSynced)
				assert.Equal(t, 1, service.lastSyncResult.TotalSkipped)
				assert.False(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Erro no ERP não persiste nada",
			setup: func(erpService *erpmocks.MockERPIntegrator, productRepo *mocks.MockProductRepository) {
				erpService.EXPECT().ListProducts().Return(nil, errors.New("ERP indisponível"))
			},
			validate: func(t *testing.T, service *CatalogSyncService) {
				assert.Nil(t, service.lastSyncResult)
				assert.True(t, service.lastSyncCompletedAt.IsZero())
			},
		},
		{
			name: "Catálogo vazio não persiste nada",
			setup: func(erpService *erpmocks.MockERPIntegrator, productRepo *mocks.MockProductRepository) {
				erpService.EXPECT().ListProducts().Return([]*domain.Product{}, nil)
			},
			validate: func(t *testing.T, service *CatalogSyncService) {
				assert.Nil(t, service.lastSyncResult)
			},
		},
		{
			name: "Erro ao persistir não registra resultado",
			setup: func(erpService *erpmocks.MockERPIntegrator, productRepo *mocks.MockProductRepository) {
				erpService.EXPECT().ListProducts().Return([]*domain.Product{
					{ID: "SKU001", CurrentPrice: 100.0},
				}, nil)
				productRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(errors.New("banco indisponível"))
			},
			validate: func(t *testing.T, service *CatalogSyncService) {
				assert.Nil(t, service.lastSyncResult)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			erpService := erpmocks.NewMockERPIntegrator(ctrl)
			productRepo := mocks.NewMockProductRepository(ctrl)

			tt.setup(erpService, productRepo)

			service := &CatalogSyncService{
				erpService:  erpService,
				productRepo: productRepo,
			}

			service.syncCatalog()

			tt.validate(t, service)
		})
	}
}

func TestCatalogSyncService_syncCatalog_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	erpService := erpmocks.NewMockERPIntegrator(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	service := &CatalogSyncService{
		erpService:  erpService,
		productRepo: productRepo,
		syncRunning: true,
	}

	// Nenhuma chamada ao ERP é esperada enquanto outra execução está ativa
	service.syncCatalog()
}
