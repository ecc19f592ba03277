package usecase

import (
	"context"

	"go-hostel-pms/internal/converter"
	"go-hostel-pms/internal/delivery/dto"
	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/internal/domain/repository"
	"go-hostel-pms/internal/service"
	"go-hostel-pms/pkg/apperr"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// BedUsecase covers the bed inventory and every status transition that does
// not involve a booking: housekeeping, maintenance, blocking and reservation
// holds. Each transition locks the bed row, applies the entity rule, writes
// the matching history entry and commits as one unit.
type BedUsecase interface {
	CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error)
	UpdateBed(ctx context.Context, bedID uuid.UUID, req *dto.UpdateBedRequest) (*dto.BedResponse, error)
	GetBed(ctx context.Context, bedID uuid.UUID) (*dto.BedResponse, error)
	ListBeds(ctx context.Context, status entity.BedStatus) (*dto.BedListResponse, error)
	MarkClean(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)
	MarkDirty(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)
	StartMaintenance(ctx context.Context, bedID uuid.UUID, req *dto.MaintenanceRequest) (*dto.BedResponse, error)
	Block(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)
	Unblock(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)
	CancelReservation(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error)
	BulkMarkClean(ctx context.Context, req *dto.BulkCleanRequest) (*dto.BulkCleanResponse, error)
	HousekeepingBoard(ctx context.Context) (*dto.HousekeepingBoardResponse, error)
	StatusBoard(ctx context.Context) (*dto.StatusBoardResponse, error)
}

type bedUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bedRepo     repository.BedRepository
	history     service.HistoryService
	statusBoard *service.StatusBoardService
}

func NewBedUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bedRepo repository.BedRepository,
	history service.HistoryService,
	statusBoard *service.StatusBoardService,
) BedUsecase {
	return &bedUsecase{
		db:          db,
		log:         log,
		bedRepo:     bedRepo,
		history:     history,
		statusBoard: statusBoard,
	}
}

func (u *bedUsecase) CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	bed := &entity.Bed{
		Name:         req.Name,
		Room:         req.Room,
		NightlyPrice: req.NightlyPrice,
		Notes:        req.Notes,
		Status:       entity.BedStatusClean,
	}
	if err := u.bedRepo.Create(u.db.WithContext(ctx), bed); err != nil {
		u.log.Warnf("Failed to create bed: %+v", err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.log.Infof("Bed created: bed=%s name=%s room=%s", bed.ID, bed.Name, bed.Room)
	return converter.BedToResponse(bed), nil
}

// UpdateBed changes descriptive fields only. Status is never writable here,
// it moves exclusively through the transition operations.
func (u *bedUsecase) UpdateBed(ctx context.Context, bedID uuid.UUID, req *dto.UpdateBedRequest) (*dto.BedResponse, error) {
	db := u.db.WithContext(ctx)

	bed, err := u.bedRepo.FindByID(db, bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}

	if req.Name != "" {
		bed.Name = req.Name
	}
	if req.Room != "" {
		bed.Room = req.Room
	}
	if req.NightlyPrice != nil {
		bed.NightlyPrice = *req.NightlyPrice
	}
	if req.Notes != nil {
		bed.Notes = *req.Notes
	}

	if err := u.bedRepo.Update(db, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}
	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) GetBed(ctx context.Context, bedID uuid.UUID) (*dto.BedResponse, error) {
	bed, err := u.bedRepo.FindByID(u.db.WithContext(ctx), bedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}
	return converter.BedToResponse(bed), nil
}

func (u *bedUsecase) ListBeds(ctx context.Context, status entity.BedStatus) (*dto.BedListResponse, error) {
	if status != "" && !entity.ValidBedStatus(status) {
		return nil, apperr.Validation("unknown bed status %q", status)
	}
	beds, err := u.bedRepo.FindAll(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to list beds: %+v", err)
		return nil, err
	}
	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

func (u *bedUsecase) MarkClean(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error) {
	performer := performedBy(ctx)
	return u.transition(ctx, bedID, entity.HistoryActionCleaned, req.Notes, func(bed *entity.Bed) error {
		return bed.MarkClean(performer)
	})
}

func (u *bedUsecase) MarkDirty(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error) {
	return u.transition(ctx, bedID, entity.HistoryActionMarkedDirty, req.Notes, func(bed *entity.Bed) error {
		return bed.MarkDirty()
	})
}

func (u *bedUsecase) StartMaintenance(ctx context.Context, bedID uuid.UUID, req *dto.MaintenanceRequest) (*dto.BedResponse, error) {
	return u.transition(ctx, bedID, entity.HistoryActionMaintenanceStart, req.Reason, func(bed *entity.Bed) error {
		return bed.StartMaintenance(req.Reason)
	})
}

func (u *bedUsecase) Block(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error) {
	return u.transition(ctx, bedID, entity.HistoryActionBlocked, req.Notes, func(bed *entity.Bed) error {
		return bed.Block(req.Notes)
	})
}

func (u *bedUsecase) Unblock(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error) {
	return u.transition(ctx, bedID, entity.HistoryActionUnblocked, req.Notes, func(bed *entity.Bed) error {
		return bed.Unblock()
	})
}

func (u *bedUsecase) CancelReservation(ctx context.Context, bedID uuid.UUID, req *dto.BedActionRequest) (*dto.BedResponse, error) {
	return u.transition(ctx, bedID, entity.HistoryActionReservationCancelled, req.Notes, func(bed *entity.Bed) error {
		return bed.CancelReservation()
	})
}

// transition is the shared lock-mutate-record-commit path for single-bed
// status changes.
func (u *bedUsecase) transition(ctx context.Context, bedID uuid.UUID, action, notes string, apply func(*entity.Bed) error) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.bedRepo.FindByIDForUpdate(tx, bedID)
	if err != nil {
		u.log.Warnf("Failed to lock bed %s: %+v", bedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, apperr.NotFound("bed %s not found", bedID)
	}

	previous := bed.Status
	if err := apply(bed); err != nil {
		return nil, err
	}
	if err := u.bedRepo.Update(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %s: %+v", bed.ID, err)
		return nil, err
	}
	if err := u.history.Record(tx, bed.ID, bed.GuestID, action, previous, bed.Status, notes, performedBy(ctx)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit %s for bed %s: %+v", action, bed.ID, err)
		return nil, err
	}

	u.statusBoard.Publish(bed.ID, bed.Status)
	u.log.Infof("Bed %s: bed=%s status=%s", action, bed.ID, bed.Status)
	return converter.BedToResponse(bed), nil
}

// BulkMarkClean processes each bed in its own transaction. One bed in the
// wrong state fails on its own line of the result, the rest still go
// through.
func (u *bedUsecase) BulkMarkClean(ctx context.Context, req *dto.BulkCleanRequest) (*dto.BulkCleanResponse, error) {
	resp := &dto.BulkCleanResponse{
		Results: make([]dto.BulkCleanItemResult, 0, len(req.BedIDs)),
	}

	for _, bedID := range req.BedIDs {
		result := dto.BulkCleanItemResult{BedID: bedID, Succeeded: true}
		if _, err := u.MarkClean(ctx, bedID, &dto.BedActionRequest{}); err != nil {
			result.Succeeded = false
			result.Error = err.Error()
			resp.Failed++
		} else {
			resp.Succeeded++
		}
		resp.Results = append(resp.Results, result)
	}

	u.log.Infof("Bulk clean: requested=%d succeeded=%d failed=%d", len(req.BedIDs), resp.Succeeded, resp.Failed)
	return resp, nil
}

// HousekeepingBoard lists dirty beds with how long each has been waiting
// since the guest checked out.
func (u *bedUsecase) HousekeepingBoard(ctx context.Context) (*dto.HousekeepingBoardResponse, error) {
	db := u.db.WithContext(ctx)

	beds, err := u.bedRepo.FindByStatus(db, []entity.BedStatus{entity.BedStatusDirty})
	if err != nil {
		u.log.Warnf("Failed to list dirty beds: %+v", err)
		return nil, err
	}

	items := make([]dto.HousekeepingItem, 0, len(beds))
	for i := range beds {
		bed := &beds[i]
		item := dto.HousekeepingItem{Bed: *converter.BedToResponse(bed)}

		since, err := u.history.TimeSince(db, bed.ID, entity.HistoryActionCheckOut)
		if err != nil {
			u.log.Warnf("Failed to find last checkout for bed %s: %+v", bed.ID, err)
			return nil, err
		}
		if since != nil {
			seconds := int64(since.Seconds())
			item.DirtySeconds = &seconds
		}
		if !bed.LastStatusChange.IsZero() {
			t := bed.LastStatusChange
			item.LastCheckout = &t
		}

		items = append(items, item)
	}

	return &dto.HousekeepingBoardResponse{Items: items, Total: len(items)}, nil
}

// StatusBoard serves the cached bed status snapshot, falling back to the
// database and rebuilding the cache when it is empty.
func (u *bedUsecase) StatusBoard(ctx context.Context) (*dto.StatusBoardResponse, error) {
	statuses, err := u.statusBoard.Snapshot(ctx)
	if err != nil {
		u.log.Warnf("Failed to read status board cache: %+v", err)
		statuses = nil
	}
	if len(statuses) == 0 {
		beds, err := u.bedRepo.FindAll(u.db.WithContext(ctx), "")
		if err != nil {
			u.log.Warnf("Failed to list beds: %+v", err)
			return nil, err
		}
		statuses = make(map[string]string, len(beds))
		for i := range beds {
			statuses[beds[i].ID.String()] = string(beds[i].Status)
		}
		if err := u.statusBoard.Rebuild(ctx, beds); err != nil {
			u.log.Warnf("Failed to rebuild status board cache: %+v", err)
		}
	}
	return &dto.StatusBoardResponse{Statuses: statuses}, nil
}
