package erpclient

import (
	"net/http"
	"time"

	erpdomain "github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp/domain"
	"github.com/vfg2006/pricing-manager-api/internal/config"
)

type Client interface {
	GetProducts() ([]erpdomain.Item, error)
	UpdatePrice(productCode string, price float64) error
}

type ERPClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &ERPClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
