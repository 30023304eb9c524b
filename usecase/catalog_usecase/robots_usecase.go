package catalog_usecase

import (
	"context"
	"fmt"

	"allaboutxrp/port/catalog_port"
	"allaboutxrp/utils/robots"
)

// RobotsUsecase renders robots.txt from the catalog policy.
type RobotsUsecase struct {
	catalog catalog_port.CatalogPort
}

func NewRobotsUsecase(catalog catalog_port.CatalogPort) *RobotsUsecase {
	return &RobotsUsecase{catalog: catalog}
}

// Execute renders the policy and checks that the result parses back.
func (u *RobotsUsecase) Execute(ctx context.Context) (string, error) {
	policy, err := u.catalog.RobotsPolicy(ctx)
	if err != nil {
		return "", err
	}
	if _, err := robots.NewChecker(policy); err != nil {
		return "", fmt.Errorf("robots policy does not parse: %w", err)
	}
	return robots.Render(policy), nil
}
