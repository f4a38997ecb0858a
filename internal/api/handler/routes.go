package handler

import (
	"net/http"

	"github.com/vfg2006/pricing-manager-api/infrastructure/integrator/erp"
	"github.com/vfg2006/pricing-manager-api/infrastructure/repository"
	"github.com/vfg2006/pricing-manager-api/internal/api/handler/router"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/pricing-manager-api/internal/usecases/pricing"
	"github.com/vfg2006/pricing-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Pricing(
	engine pricing.PricingEngine,
	erpService erp.ERPIntegrator,
	productRepo repository.ProductRepository,
	adjustmentRepo repository.AdjustmentRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products/:id/price/suggestion",
			Method:      http.MethodGet,
			Handler:     GetPriceSuggestion(engine, productRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pricing/recommendations",
			Method:      http.MethodGet,
			Handler:     GetRecommendations(engine),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/products/:id/price/apply",
			Method:      http.MethodPost,
			Handler:     ApplyPrice(engine, erpService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/products/:id/price/history",
			Method:      http.MethodGet,
			Handler:     GetPriceHistory(adjustmentRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Market(
	observationRepo repository.CompetitorObservationRepository,
	ruleRepo repository.PricingRuleRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/market/observations",
			Method:      http.MethodGet,
			Handler:     ListObservations(observationRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/market/observations",
			Method:      http.MethodPost,
			Handler:     CreateObservation(observationRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/pricing/rules",
			Method:      http.MethodPut,
			Handler:     UpsertPricingRule(ruleRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
