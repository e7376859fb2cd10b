package postgres

import (
	"context"

	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/repository"
	"stampcard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geoTriggerRepository implements the repository.GeoTriggerRepository interface.
type geoTriggerRepository struct {
	db *gorm.DB
}

// NewGeoTriggerRepository is the constructor for geoTriggerRepository.
func NewGeoTriggerRepository(db *gorm.DB) repository.GeoTriggerRepository {
	return &geoTriggerRepository{
		db: db,
	}
}

// CreateTriggerLog appends one audit entry for a completed dispatch.
func (repo *geoTriggerRepository) CreateTriggerLog(ctx context.Context, log *entity.GeoTriggerLog) error {
	logM := fromGeoTriggerLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required trigger log information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create geo trigger log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.TriggeredAt = logM.TriggeredAt

	return nil
}

// FindTriggerLogsByClient retrieves the dispatch history of one client,
// newest first, with pagination.
func (repo *geoTriggerRepository) FindTriggerLogsByClient(ctx context.Context, clientID uuid.UUID, limit, offset int) ([]*entity.GeoTriggerLog, error) {
	var logModels []*model.GeoTriggerLogModel

	query := repo.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("triggered_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find trigger logs by client")
	}

	logs := make([]*entity.GeoTriggerLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toGeoTriggerLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toGeoTriggerLogDomain converts a GORM GeoTriggerLogModel to a domain GeoTriggerLog entity.
func toGeoTriggerLogDomain(data *model.GeoTriggerLogModel) *entity.GeoTriggerLog {
	if data == nil {
		return nil
	}

	return &entity.GeoTriggerLog{
		ID: data.ID,
		Coordinate: entity.Coordinate{
			Latitude:  data.Latitude,
			Longitude: data.Longitude,
		},
		UserID:            data.UserID,
		ClientID:          data.ClientID,
		RestaurantIDs:     data.RestaurantIDs,
		NotificationsSent: data.NotificationsSent,
		TriggeredAt:       data.TriggeredAt,
	}
}

// fromGeoTriggerLogDomain converts a domain GeoTriggerLog entity to a GORM GeoTriggerLogModel.
func fromGeoTriggerLogDomain(data *entity.GeoTriggerLog) *model.GeoTriggerLogModel {
	if data == nil {
		return nil
	}

	return &model.GeoTriggerLogModel{
		ID:                data.ID,
		UserID:            data.UserID,
		ClientID:          data.ClientID,
		Latitude:          data.Coordinate.Latitude,
		Longitude:         data.Coordinate.Longitude,
		RestaurantIDs:     data.RestaurantIDs,
		NotificationsSent: data.NotificationsSent,
		TriggeredAt:       data.TriggeredAt,
	}
}
