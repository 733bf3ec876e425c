package service

import (
	"context"

	"forklift-rental-backend/internal/domain"
	"forklift-rental-backend/internal/repository"
)

type notificationService struct {
	noteRepo repository.NotificationRepository
}

func NewNotificationService(noteRepo repository.NotificationRepository) NotificationService {
	return &notificationService{noteRepo: noteRepo}
}

func (s *notificationService) List(ctx context.Context, userID string, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.noteRepo.List(ctx, userID, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, userID string) error {
	return s.noteRepo.MarkAsRead(ctx, id, userID)
}
