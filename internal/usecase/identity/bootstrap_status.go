package identity

import (
	"context"

	domain "github.com/BruksfildServices01/pest-control-api/internal/domain/identity"
)

// BootstrapStatus tells the login screen whether the first account still
// has to be created. It does not gate registration.
type BootstrapStatus struct {
	repo domain.Repository
}

func NewBootstrapStatus(repo domain.Repository) *BootstrapStatus {
	return &BootstrapStatus{repo: repo}
}

func (uc *BootstrapStatus) Execute(ctx context.Context) (bool, error) {
	n, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
