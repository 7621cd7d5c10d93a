package jobs

import (
	"context"
	"time"

	"carcast/internal/repositories/interfaces"
	"carcast/internal/services"
	"carcast/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Refresher runs the full-horizon nightly regeneration across the fleet.
// Vehicles are independent, so the refresh fans out across workers; each
// vehicle's own regeneration stays serialized inside the mileage service.
type Refresher struct {
	vehicleRepo interfaces.VehicleRepository
	mileage     services.MileageService
	workers     int
	log         *logger.Logger
}

func NewRefresher(vehicleRepo interfaces.VehicleRepository, mileage services.MileageService, workers int, log *logger.Logger) *Refresher {
	if workers <= 0 {
		workers = 1
	}
	return &Refresher{
		vehicleRepo: vehicleRepo,
		mileage:     mileage,
		workers:     workers,
		log:         log,
	}
}

// RefreshAll regenerates predictions for every vehicle. Individual failures
// are logged and counted but do not stop the sweep.
func (r *Refresher) RefreshAll(ctx context.Context) error {
	start := time.Now()

	ids, err := r.vehicleRepo.GetAllIDs(ctx)
	if err != nil {
		return err
	}

	var group errgroup.Group
	group.SetLimit(r.workers)

	failures := make(chan string, len(ids))
	for _, id := range ids {
		id := id
		group.Go(func() error {
			if _, err := r.mileage.Regenerate(ctx, id); err != nil {
				r.log.WithError(err).WithVehicleID(id).Error("Fleet refresh failed for vehicle")
				failures <- id.Hex()
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}
	close(failures)

	failed := len(failures)
	r.log.WithFields(map[string]interface{}{
		"vehicles":    len(ids),
		"failed":      failed,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Fleet prediction refresh completed")

	return nil
}
