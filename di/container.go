package di

import (
	"context"
	"errors"
	"time"

	"allaboutxrp/config"
	"allaboutxrp/driver/digest_cache"
	"allaboutxrp/driver/digest_db"
	"allaboutxrp/driver/stripe_client"
	"allaboutxrp/gateway/billing_portal_gateway"
	"allaboutxrp/gateway/catalog_gateway"
	"allaboutxrp/gateway/digest_gateway"
	"allaboutxrp/gateway/subscription_gateway"
	"allaboutxrp/usecase/access_usecase"
	"allaboutxrp/usecase/billing_usecase"
	"allaboutxrp/usecase/catalog_usecase"
	"allaboutxrp/usecase/digest_usecase"
	"allaboutxrp/usecase/share_usecase"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/rate_limiter"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type ApplicationComponents struct {
	Config *config.Config

	LoadDigestUsecase     *digest_usecase.LoadDigestUsecase
	ListDigestsUsecase    *digest_usecase.ListDigestsUsecase
	AccessUsecase         *access_usecase.AccessUsecase
	ShareUsecase          *share_usecase.ShareUsecase
	BillingPortalUsecase  *billing_usecase.BillingPortalUsecase
	StructuredDataUsecase *catalog_usecase.StructuredDataUsecase
	FAQUsecase            *catalog_usecase.FAQUsecase
	RobotsUsecase         *catalog_usecase.RobotsUsecase

	// Catalog is exposed so the server can reload it on SIGHUP.
	Catalog *catalog_gateway.CatalogGateway

	BillingLimiter *rate_limiter.KeyedLimiter
	HealthChecks   []HealthCheck

	closers []func() error
}

// NewApplicationComponents wires every layer on top of an open pool.
// The Redis index cache and the Stripe client are optional.
func NewApplicationComponents(cfg *config.Config, pool digest_db.PgxIface) (*ApplicationComponents, error) {
	repo := digest_db.NewDigestRepository(pool)
	components := &ApplicationComponents{Config: cfg}
	components.HealthChecks = append(components.HealthChecks, HealthCheck{Name: "database", Check: repo.Ping})

	var indexCache digest_gateway.IndexCache
	if cfg.Redis.Enabled {
		cache, err := digest_cache.NewIndexCacheWithURL(cfg.Redis.URL, cfg.Digest.IndexCacheTTL)
		if err != nil {
			return nil, err
		}
		indexCache = cache
		components.closers = append(components.closers, cache.Close)
		components.HealthChecks = append(components.HealthChecks, HealthCheck{Name: "redis", Check: cache.Ping})
	}

	catalog, err := catalog_gateway.NewCatalogGateway(cfg.Catalog.Path, cfg.Digest.SiteURL)
	if err != nil {
		return nil, err
	}

	components.Catalog = catalog

	digestGateway := digest_gateway.NewDigestGateway(repo, indexCache)
	if slugCache := digest_cache.NewSlugCache(cfg.Digest.SlugCacheSize, cfg.Digest.SlugCacheTTL); slugCache != nil {
		digestGateway.WithSlugCache(slugCache)
	}
	subscriptionGateway := subscription_gateway.NewSubscriptionGateway(repo, cfg.Subscription.AdminEmails, cfg.Subscription.LookupTimeout)

	var portalClient billing_portal_gateway.PortalSessionCreator
	if cfg.Billing.Configured() {
		portalClient = stripe_client.NewClient(cfg.Billing.StripeAPIURL, cfg.Billing.StripeSecretKey, cfg.Billing.RequestTimeout)
	} else {
		logger.FromContext(context.Background()).Warn("STRIPE_SECRET_KEY not set, billing portal disabled")
	}
	billingGateway := billing_portal_gateway.NewBillingPortalGateway(portalClient)

	components.LoadDigestUsecase = digest_usecase.NewLoadDigestUsecase(digestGateway, digestGateway, cfg.Digest.FetchTimeout)
	components.ListDigestsUsecase = digest_usecase.NewListDigestsUsecase(digestGateway, cfg.Digest.ListLimit)
	components.AccessUsecase = access_usecase.NewAccessUsecase(subscriptionGateway)
	components.ShareUsecase = share_usecase.NewShareUsecase()
	components.BillingPortalUsecase = billing_usecase.NewBillingPortalUsecase(billingGateway, repo, cfg.Billing.Configured(), cfg.Billing.DefaultReturnURL)
	components.StructuredDataUsecase = catalog_usecase.NewStructuredDataUsecase(catalog, catalog.SiteURL())
	components.FAQUsecase = catalog_usecase.NewFAQUsecase(catalog)
	components.RobotsUsecase = catalog_usecase.NewRobotsUsecase(catalog)

	components.BillingLimiter = rate_limiter.NewKeyedLimiter(
		rate_limiter.PerMinute(cfg.Billing.RateLimitPerMinute),
		cfg.Billing.RateLimitBurst,
		5*time.Minute,
	)

	return components, nil
}

// Close releases the optional resources opened by NewApplicationComponents.
func (c *ApplicationComponents) Close() error {
	var errs []error
	for _, closeFn := range c.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}
