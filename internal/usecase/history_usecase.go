package usecase

import (
	"context"

	"go-hostel-pms/internal/converter"
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/internal/service"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HistoryUsecase interface {
	ListForBed(ctx context.Context, bedID uuid.UUID, limit, offset int) (*dto.HistoryListResponse, error)
}

type historyUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	bedRepo repository.BedRepository
	history service.HistoryService
}

func NewHistoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	history service.HistoryService,
) HistoryUsecase {
	return &historyUsecase{
		db:      db,
		log:     log,
		bedRepo: bedRepo,
		history: history,
	}
}

func (u *historyUsecase) ListForBed(ctx context.Context, bedID uuid.UUID, limit, offset int) (*dto.HistoryListResponse, error) {
	db := u.db.WithContext(ctx)

	bed, err := u.bedRepo.FindByID(db, bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, total, err := u.history.ListForBed(db, bed.ID, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list history for bed %s: %+v", bed.ID, err)
		return nil, err
	}

	return &dto.HistoryListResponse{
		Entries: converter.HistoryEntriesToResponses(entries),
		Total:   total,
	}, nil
}
