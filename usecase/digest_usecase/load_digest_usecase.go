package digest_usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"allaboutxrp/domain"
	"allaboutxrp/port/digest_port"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/metrics"

	"golang.org/x/sync/errgroup"
)

// LoadDigestUsecase fetches a digest and the index around it.
type LoadDigestUsecase struct {
	bySlug       digest_port.DigestBySlugPort
	index        digest_port.DigestIndexPort
	fetchTimeout time.Duration
}

func NewLoadDigestUsecase(bySlug digest_port.DigestBySlugPort, index digest_port.DigestIndexPort, fetchTimeout time.Duration) *LoadDigestUsecase {
	return &LoadDigestUsecase{bySlug: bySlug, index: index, fetchTimeout: fetchTimeout}
}

// Execute runs both retrievals concurrently. A digest failure cancels the
// index fetch. An index failure only removes navigation from the page.
func (u *LoadDigestUsecase) Execute(ctx context.Context, slug string) (*domain.DigestPage, error) {
	start := time.Now()
	ctx = logger.WithOperation(ctx, "load_digest")
	log := logger.FromContext(ctx)

	if !domain.IsValidSlug(slug) {
		metrics.RecordDigestLoad(string(domain.LoadOutcomeInvalid), time.Since(start).Seconds())
		return nil, domain.ErrInvalidSlug
	}

	if u.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.fetchTimeout)
		defer cancel()
	}

	var (
		digest    *domain.Digest
		summaries []domain.DigestSummary
		indexErr  error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := u.bySlug.FetchDigestBySlug(gctx, slug)
		if err != nil {
			return err
		}
		digest = d
		return nil
	})
	g.Go(func() error {
		summaries, indexErr = u.index.FetchDigestIndex(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		outcome, wrapped := classifyLoadError(err)
		metrics.RecordDigestLoad(string(outcome), time.Since(start).Seconds())
		if outcome == domain.LoadOutcomeNotFound {
			log.Info("digest not found", "slug", slug)
		} else {
			log.Error("digest load failed", "slug", slug, "outcome", outcome, "error", err)
		}
		return nil, wrapped
	}
	if digest == nil {
		metrics.RecordDigestLoad(string(domain.LoadOutcomeNotFound), time.Since(start).Seconds())
		return nil, domain.ErrDigestNotFound
	}

	page := &domain.DigestPage{Digest: digest, Index: []domain.DigestIndexEntry{}}
	if indexErr != nil {
		metrics.RecordNavigationDegraded()
		log.Warn("digest index unavailable, navigation disabled", "slug", slug, "error", indexErr)
	} else {
		page.Index = NormalizeIndex(summaries)
		page.Adjacent = ComputeAdjacent(page.Index, slug)
		page.NavigationAvailable = true
	}

	metrics.RecordDigestLoad(string(domain.LoadOutcomeLoaded), time.Since(start).Seconds())
	return page, nil
}

func classifyLoadError(err error) (domain.LoadOutcome, error) {
	switch {
	case errors.Is(err, domain.ErrDigestNotFound):
		return domain.LoadOutcomeNotFound, domain.ErrDigestNotFound
	case errors.Is(err, domain.ErrInvalidSlug), errors.Is(err, domain.ErrInvalidDigestPeriod):
		// A stored digest that breaks its invariants cannot be served.
		return domain.LoadOutcomeInvalid, fmt.Errorf("%w: %v", domain.ErrDigestUnavailable, err)
	case errors.Is(err, domain.ErrDigestUnavailable):
		return domain.LoadOutcomeUnavailable, err
	default:
		return domain.LoadOutcomeUnavailable, errors.Join(domain.ErrDigestUnavailable, err)
	}
}
