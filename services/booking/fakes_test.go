package booking

import (
	"context"
	"sync"

	bookingRepo "fundihub/database/repository/booking"
	workerRepo "fundihub/database/repository/worker"
	"fundihub/models"
)

// fakeWorkerRepo is an in-memory WorkerRepository.
type fakeWorkerRepo struct {
	mu      sync.Mutex
	workers map[string]*models.Worker
}

func newFakeWorkerRepo(workers ...*models.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{workers: make(map[string]*models.Worker)}
	for _, w := range workers {
		r.workers[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) Create(ctx context.Context, w *models.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[w.ID] = w
	return nil
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workers[id]
	if !ok {
		return nil, workerRepo.ErrNotFound
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWorkerRepo) ListByAgent(ctx context.Context, agentID string) ([]models.Worker, error) {
	return nil, nil
}

func (r *fakeWorkerRepo) ListAll(ctx context.Context) ([]models.Worker, error) { return nil, nil }

func (r *fakeWorkerRepo) UpdateTimetable(ctx context.Context, id string, tt []models.DaySchedule, slotMinutes int) error {
	return nil
}

func (r *fakeWorkerRepo) AddNonAvailability(ctx context.Context, id string, e models.NonAvailability) error {
	return nil
}

func (r *fakeWorkerRepo) RemoveNonAvailability(ctx context.Context, id, date string) error {
	return nil
}

func (r *fakeWorkerRepo) SetStatus(ctx context.Context, id, status string) error { return nil }

func (r *fakeWorkerRepo) SetVerificationStatus(ctx context.Context, id, vs string) error { return nil }

func (r *fakeWorkerRepo) UpdateServices(ctx context.Context, id string, svcs []models.WorkerService) error {
	return nil
}

func (r *fakeWorkerRepo) EnsureIndexes() error { return nil }

// fakeBookingRepo is an in-memory BookingRepository that enforces the same
// active-slot uniqueness constraint the Mongo partial index does.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.Active && existing.WorkerID == b.WorkerID &&
			existing.Date == b.Date && existing.Time == b.Time {
			return bookingRepo.ErrSlotConflict
		}
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool {
		return b.WorkerID == workerID && (date == "" || b.Date == date)
	}), nil
}

func (r *fakeBookingRepo) GetActiveByWorkerAndDate(ctx context.Context, workerID, date string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool {
		return b.WorkerID == workerID && b.Date == date && b.Active
	}), nil
}

func (r *fakeBookingRepo) GetByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.filter(func(b *models.Booking) bool { return b.CustomerID == customerID }), nil
}

func (r *fakeBookingRepo) FindActiveBySlot(ctx context.Context, workerID, date, timeStr string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Active && b.WorkerID == workerID && b.Date == date && b.Time == timeStr {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) UpdateLifecycle(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return bookingRepo.ErrNotFound
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) UpdatePayment(ctx context.Context, id string, payment models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Payment = payment
	return nil
}

func (r *fakeBookingRepo) EnsureIndexes() error { return nil }

func (r *fakeBookingRepo) filter(keep func(*models.Booking) bool) []models.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if keep(b) {
			out = append(out, *b)
		}
	}
	return out
}

// 2030-01-07 is a Monday; the test worker is open 09:00-12:00 that day.
const testMonday = "2030-01-07"

func testWorker() *models.Worker {
	return &models.Worker{
		ID:                 "worker-1",
		AgentID:            "agent-1",
		Status:             models.WorkerStatusActive,
		VerificationStatus: models.VerificationVerified,
		Timetable: []models.DaySchedule{
			{Day: 1, Ranges: []models.TimeRange{{Start: 540, End: 720}}},
		},
		SlotMinutes: 60,
		Services: []models.WorkerService{
			{ID: "svc-1", Name: "Deep cleaning", Rate: 500, Currency: "KES"},
		},
	}
}

func newTestService(workers ...*models.Worker) (*DefaultBookingService, *fakeBookingRepo) {
	if len(workers) == 0 {
		workers = []*models.Worker{testWorker()}
	}
	bookings := newFakeBookingRepo()
	svc := &DefaultBookingService{
		WorkerRepo:  newFakeWorkerRepo(workers...),
		BookingRepo: bookings,
		Guard:       &AvailabilityGuard{Bookings: bookings},
	}
	return svc, bookings
}

func createRequest() CreateBookingRequest {
	return CreateBookingRequest{
		CustomerID:      "customer-1",
		WorkerID:        "worker-1",
		WorkerServiceID: "svc-1",
		Date:            testMonday,
		Time:            "09:00",
		CustomerDetails: models.CustomerDetails{Name: "Amina", Phone: "0700000000"},
	}
}
