package booking

import (
	"context"
	"fmt"

	bookingRepo "fundihub/database/repository/booking"
	"fundihub/models"
)

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, notFoundError("booking", bookingID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return booking, nil
}

func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByCustomer(ctx, customerID)
}

func (s *DefaultBookingService) ListWorkerBookings(ctx context.Context, workerID, date string) ([]models.Booking, error) {
	return s.BookingRepo.GetByWorkerAndDate(ctx, workerID, date)
}
