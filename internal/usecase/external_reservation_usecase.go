package usecase

import (
	"context"
	"time"

	"go-hostel-pms/internal/converter"
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ExternalReservationUsecase is the read side of the OTA feed. The sync
// collaborator writes the rows; here they are only listed so the front desk
// can see why a bed shows as unavailable.
type ExternalReservationUsecase interface {
	ListForBed(ctx context.Context, bedID uuid.UUID, rangeStart, rangeEnd string) (*dto.ExternalReservationListResponse, error)
}

type externalReservationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	bedRepo      repository.BedRepository
	externalRepo repository.ExternalReservationRepository
}

func NewExternalReservationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	externalRepo repository.ExternalReservationRepository,
) ExternalReservationUsecase {
	return &externalReservationUsecase{
		db:           db,
		log:          log,
		bedRepo:      bedRepo,
		externalRepo: externalRepo,
	}
}

func (u *externalReservationUsecase) ListForBed(ctx context.Context, bedID uuid.UUID, rangeStart, rangeEnd string) (*dto.ExternalReservationListResponse, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	end := start.AddDate(0, 3, 0)

	var err error
	if rangeStart != "" {
		if start, err = parseDate(rangeStart); err != nil {
			return nil, err
		}
	}
	if rangeEnd != "" {
		if end, err = parseDate(rangeEnd); err != nil {
			return nil, err
		}
	}
	if !end.After(start) {
		return nil, apperr.Validation("range end must be after range start")
	}

	db := u.db.WithContext(ctx)

	bed, err := u.bedRepo.FindByID(db, bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}

	reservations, err := u.externalRepo.ListForBed(db, bed.ID, start, end)
	if err != nil {
		u.log.Warnf("Failed to list external reservations for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	return &dto.ExternalReservationListResponse{
		Reservations: converter.ExternalReservationsToResponses(reservations),
		Total:        len(reservations),
	}, nil
}
