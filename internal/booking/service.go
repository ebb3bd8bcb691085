package booking

import (
	"context"
	"math/rand/v2"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/station"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// SubmitRequest carries the booking form as submitted. Days and Slot are
// raw text; unparsable values fall back to defaults instead of failing.
type SubmitRequest struct {
	Name        string
	Mobile      string
	City        string
	StationType string
	Station     string
	Day         string
	Date        string
	Days        string
	Slot        string
}

// PINGenerator returns a locker PIN in [1000, 9999].
type PINGenerator func() int

// RandomPIN draws a PIN uniformly from [1000, 9999].
func RandomPIN() int {
	return 1000 + rand.IntN(9000)
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Booking, error)
	AvailableSlots(ctx context.Context, stationName string) ([]int, error)
	// List returns all bookings, most recently appended first.
	List(ctx context.Context) ([]*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
}

type service struct {
	repo      Repository
	inventory station.Inventory
	newPIN    PINGenerator
	logger    *zap.Logger
}

func NewService(repo Repository, inventory station.Inventory, logger *zap.Logger) Service {
	return NewServiceWithPINGenerator(repo, inventory, logger, RandomPIN)
}

func NewServiceWithPINGenerator(repo Repository, inventory station.Inventory, logger *zap.Logger, gen PINGenerator) Service {
	return &service{
		repo:      repo,
		inventory: inventory,
		newPIN:    gen,
		logger:    logger,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Booking, error) {
	// 1. Validate
	if !mobilePattern.MatchString(req.Mobile) {
		return nil, ErrInvalidMobile
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	days := parseDays(req.Days)

	b := &Booking{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Mobile:      req.Mobile,
		City:        req.City,
		StationType: req.StationType,
		Station:     req.Station,
		Day:         req.Day,
		Date:        req.Date,
		Days:        days,
		Price:       PricePerDay * days,
	}

	// 2. Assign slot. An explicit slot is taken as-is, even if it is
	// outside the inventory or already booked.
	if n, err := strconv.Atoi(strings.TrimSpace(req.Slot)); err == nil {
		b.Slot = SlotNumber(n)
	} else {
		bookings, err := s.repo.Load(ctx)
		if err != nil {
			return nil, err
		}
		s.noteUnknownStation(req.Station)
		if free := Available(s.inventory, req.Station, bookings); len(free) > 0 {
			b.Slot = SlotNumber(free[0])
		}
	}

	// 3. PIN only for a real locker
	if b.Slot.Assigned {
		b.PIN = PINCode(s.newPIN())
	}

	if err := s.repo.Append(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("id", b.ID),
		zap.String("station", b.Station),
		zap.Stringer("slot", b.Slot),
		zap.Int("days", b.Days),
	)
	return b, nil
}

// parseDays reads the rental length, defaulting to one day.
func parseDays(raw string) int {
	days, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || days < 1 {
		return 1
	}
	return days
}

func (s *service) AvailableSlots(ctx context.Context, stationName string) ([]int, error) {
	bookings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.noteUnknownStation(stationName)
	return Available(s.inventory, stationName, bookings), nil
}

func (s *service) noteUnknownStation(name string) {
	if !s.inventory.Known(name) {
		s.logger.Debug("station not in inventory, using default slots",
			zap.String("station", name),
			zap.Int("slots", station.DefaultSlotCount),
		)
	}
}

func (s *service) List(ctx context.Context) ([]*Booking, error) {
	bookings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	slices.Reverse(bookings)
	return bookings, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	bookings, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}
