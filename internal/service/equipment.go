package service

import (
	"context"
	"errors"

	"github.com/chebotarevdmitr/school-inventory/internal/auditlog"
	"github.com/chebotarevdmitr/school-inventory/internal/store"
)

// Repository is the subset of *store.Store the façade depends on.
type Repository interface {
	InsertAsset(ctx context.Context, a store.Asset) (int64, error)
	SearchAssets(ctx context.Context, term string) ([]store.Asset, error)
	UpdateAsset(ctx context.Context, tag string, quantity int, location, custodian string) error
	RemoveAsset(ctx context.Context, tag string) error
	ListRooms(ctx context.Context) ([]store.Room, error)
	ListRoomIdentifiers(ctx context.Context) ([]string, error)
}

// Recorder receives audit entries. *auditlog.Logger satisfies it.
type Recorder interface {
	Record(level auditlog.Level, msg string, args ...any)
}

// Option configures an EquipmentService.
type Option func(*EquipmentService)

// WithIDGenerator overrides the operation ID generator (for testing).
func WithIDGenerator(g IDGenerator) Option {
	return func(s *EquipmentService) {
		if g != nil {
			s.ids = g
		}
	}
}

// EquipmentService is the domain façade. It holds non-owning references to
// the repository and the audit log; the caller keeps both alive for at least
// as long as the service.
type EquipmentService struct {
	repo Repository
	log  Recorder
	ids  IDGenerator
}

// NewEquipmentService creates the façade.
func NewEquipmentService(repo Repository, log Recorder, opts ...Option) *EquipmentService {
	s := &EquipmentService{
		repo: repo,
		log:  log,
		ids:  UUIDv7Generator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log.Record(auditlog.LevelInfo, "equipment service created")
	return s
}

// Add inserts a new asset and returns its id.
func (s *EquipmentService) Add(ctx context.Context, a store.Asset) (int64, error) {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "attempting to add asset", "op", op, "name", a.Name, "tag", a.InventoryTag)

	id, err := s.repo.InsertAsset(ctx, a)
	if err != nil {
		s.failed(op, "adding asset failed", err, "name", a.Name, "tag", a.InventoryTag)
		return 0, err
	}

	s.log.Record(auditlog.LevelInfo, "asset added", "op", op, "name", a.Name, "id", id)
	return id, nil
}

// Search returns assets whose name or location contains term.
func (s *EquipmentService) Search(ctx context.Context, term string) ([]store.Asset, error) {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "searching assets", "op", op, "term", term)

	assets, err := s.repo.SearchAssets(ctx, term)
	if err != nil {
		s.failed(op, "search failed", err, "term", term)
		return nil, err
	}

	s.log.Record(auditlog.LevelInfo, "search complete", "op", op, "count", len(assets))
	return assets, nil
}

// Update replaces the mutable fields of the asset with the given tag.
func (s *EquipmentService) Update(ctx context.Context, tag string, quantity int, location, custodian string) error {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "attempting to update asset", "op", op, "tag", tag)

	if err := s.repo.UpdateAsset(ctx, tag, quantity, location, custodian); err != nil {
		s.failed(op, "updating asset failed", err, "tag", tag)
		return err
	}

	s.log.Record(auditlog.LevelInfo, "asset updated", "op", op, "tag", tag)
	return nil
}

// Remove deletes the asset with the given tag.
func (s *EquipmentService) Remove(ctx context.Context, tag string) error {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "attempting to remove asset", "op", op, "tag", tag)

	if err := s.repo.RemoveAsset(ctx, tag); err != nil {
		s.failed(op, "removing asset failed", err, "tag", tag)
		return err
	}

	s.log.Record(auditlog.LevelInfo, "asset removed", "op", op, "tag", tag)
	return nil
}

// Rooms returns the reference room list.
func (s *EquipmentService) Rooms(ctx context.Context) ([]store.Room, error) {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "listing rooms", "op", op)

	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		s.failed(op, "listing rooms failed", err)
		return nil, err
	}

	s.log.Record(auditlog.LevelInfo, "rooms listed", "op", op, "count", len(rooms))
	return rooms, nil
}

// RoomNumbers returns only the room identifiers.
func (s *EquipmentService) RoomNumbers(ctx context.Context) ([]string, error) {
	op := s.ids.Generate()
	s.log.Record(auditlog.LevelInfo, "listing room numbers", "op", op)

	numbers, err := s.repo.ListRoomIdentifiers(ctx)
	if err != nil {
		s.failed(op, "listing room numbers failed", err)
		return nil, err
	}

	s.log.Record(auditlog.LevelInfo, "room numbers listed", "op", op, "count", len(numbers))
	return numbers, nil
}

// failed records the closing entry of a failed pair. A missing tag is an
// expected outcome and is recorded at WARNING; everything else at ERROR.
func (s *EquipmentService) failed(op, msg string, err error, args ...any) {
	level := auditlog.LevelError
	if errors.Is(err, store.ErrNotFound) {
		level = auditlog.LevelWarning
	}
	args = append([]any{"op", op}, args...)
	args = append(args, "error", err.Error())
	s.log.Record(level, msg, args...)
}
