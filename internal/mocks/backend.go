package mocks

import (
	"context"

	"github.com/ooni/checkinv2/internal/model"
)

// CheckInBackend allows mocking a check-in v1 backend.
type CheckInBackend struct {
	MockCheckInV1 func(ctx context.Context, config *model.OOAPICheckInConfigV1) (*model.OOAPICheckInResultV1, error)

	MockGeolocate func(ctx context.Context) (string, string, error)
}

// CheckInV1 calls MockCheckInV1.
func (b *CheckInBackend) CheckInV1(
	ctx context.Context, config *model.OOAPICheckInConfigV1) (*model.OOAPICheckInResultV1, error) {
	return b.MockCheckInV1(ctx, config)
}

// Geolocate calls MockGeolocate.
func (b *CheckInBackend) Geolocate(ctx context.Context) (string, string, error) {
	return b.MockGeolocate(ctx)
}
