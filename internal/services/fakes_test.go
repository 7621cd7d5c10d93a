package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"carcast/internal/models"
	"carcast/pkg/logger"
	"carcast/pkg/maps"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: logger.FatalLevel, Format: "text", Output: "stderr"})
	if err != nil {
		panic(err)
	}
	return log
}

// fakeVehicleRepo is an in-memory VehicleRepository.
type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[primitive.ObjectID]*models.Vehicle
}

func newFakeVehicleRepo(vehicles ...*models.Vehicle) *fakeVehicleRepo {
	repo := &fakeVehicleRepo{vehicles: make(map[primitive.ObjectID]*models.Vehicle)}
	for _, v := range vehicles {
		repo.vehicles[v.ID] = v
	}
	return repo
}

func (r *fakeVehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if vehicle.ID.IsZero() {
		vehicle.ID = primitive.NewObjectID()
	}
	r.vehicles[vehicle.ID] = vehicle
	return nil
}

func (r *fakeVehicleRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return nil, models.ErrVehicleNotFound
	}
	copied := *vehicle
	return &copied, nil
}

func (r *fakeVehicleRepo) GetByOwnerID(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Vehicle
	for _, vehicle := range r.vehicles {
		if vehicle.OwnerID == ownerID {
			copied := *vehicle
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, nil
}

func (r *fakeVehicleRepo) GetAllIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []primitive.ObjectID
	for id := range r.vehicles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Hex() < ids[j].Hex() })
	return ids, nil
}

func (r *fakeVehicleRepo) UpdateMileage(ctx context.Context, id primitive.ObjectID, mileage int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return models.ErrVehicleNotFound
	}
	vehicle.CurrentMileage = mileage
	vehicle.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVehicleRepo) UpdateZipCode(ctx context.Context, id primitive.ObjectID, zipCode string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return models.ErrVehicleNotFound
	}
	vehicle.ZipCode = zipCode
	vehicle.UpdatedAt = time.Now()
	return nil
}

func (r *fakeVehicleRepo) UpdateAverageMonthlyMiles(ctx context.Context, id primitive.ObjectID, miles *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	vehicle, ok := r.vehicles[id]
	if !ok {
		return models.ErrVehicleNotFound
	}
	vehicle.AverageMonthlyMiles = miles
	return nil
}

// fakePredictionRepo is an in-memory PredictionRepository with the same
// replace-future/keep-past semantics as the mongo implementation.
// conflictsLeft injects write conflicts for retry tests.
type fakePredictionRepo struct {
	mu            sync.Mutex
	predictions   []*models.MaintenancePrediction
	activeBatch   map[primitive.ObjectID]string
	conflictsLeft int
}

func newFakePredictionRepo() *fakePredictionRepo {
	return &fakePredictionRepo{activeBatch: make(map[primitive.ObjectID]string)}
}

func (r *fakePredictionRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (r *fakePredictionRepo) ReplaceFuture(ctx context.Context, vehicleID primitive.ObjectID, predictions []*models.MaintenancePrediction, batchID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return models.ErrStoreWriteConflict
	}

	for _, p := range r.predictions {
		if p.VehicleID == vehicleID && p.IsActive() && !p.PredictedDate.Before(now) {
			p.SupersededBy = batchID
		}
	}

	for _, p := range predictions {
		p.ID = primitive.NewObjectID()
		p.VehicleID = vehicleID
		p.BatchID = batchID
		p.CreatedAt = now
		copied := *p
		r.predictions = append(r.predictions, &copied)
	}

	r.activeBatch[vehicleID] = batchID
	return nil
}

func (r *fakePredictionRepo) GetActiveByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to time.Time) ([]*models.MaintenancePrediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.MaintenancePrediction
	for _, p := range r.predictions {
		if p.VehicleID != vehicleID || !p.IsActive() {
			continue
		}
		if p.PredictedDate.Before(from) || p.PredictedDate.After(to) {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PredictedDate.Equal(out[j].PredictedDate) {
			return out[i].PredictedDate.Before(out[j].PredictedDate)
		}
		return out[i].ServiceType < out[j].ServiceType
	})
	return out, nil
}

func (r *fakePredictionRepo) GetHistoryByVehicle(ctx context.Context, vehicleID primitive.ObjectID, from, to, asOf time.Time) ([]*models.MaintenancePrediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.MaintenancePrediction
	for _, p := range r.predictions {
		if p.VehicleID != vehicleID {
			continue
		}
		if p.PredictedDate.Before(from) || p.PredictedDate.After(to) {
			continue
		}
		if p.IsActive() && !p.PredictedDate.Before(asOf) {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PredictedDate.Equal(out[j].PredictedDate) {
			return out[i].PredictedDate.Before(out[j].PredictedDate)
		}
		return out[i].ServiceType < out[j].ServiceType
	})
	return out, nil
}

func (r *fakePredictionRepo) ActiveBatchID(ctx context.Context, vehicleID primitive.ObjectID) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeBatch[vehicleID], nil
}

func (r *fakePredictionRepo) all(vehicleID primitive.ObjectID) []*models.MaintenancePrediction {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.MaintenancePrediction
	for _, p := range r.predictions {
		if p.VehicleID == vehicleID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out
}

var errCacheMiss = errors.New("cache miss")

// fakeCache is an in-memory CacheService with the same JSON round-trip the
// redis cache performs.
type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.items[key]
	if !ok {
		return errCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = data
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.items, key)
	}
	return nil
}

func (c *fakeCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	return nil
}

// failingGeocoder always errors, simulating an unreachable geocoding service.
type failingGeocoder struct{}

func (failingGeocoder) GeocodeZip(ctx context.Context, zipCode string) (*maps.Location, error) {
	return nil, models.ErrGeocodingUnavailable
}
