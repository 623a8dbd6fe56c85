package service

import (
	"context"
	"time"

	"github.com/mhollis/gardenshare/internal/domain"
)

// WateringService owns the per-date entry lifecycle:
//
//	unassigned -> planned -> completed
//	             planned -> unassigned (cancel)
//	unassigned -> completed (logging a watering directly)
//
// None of the write operations enforce preconditions. Any caller may
// complete an unassigned day or cancel a day that was never planned; the
// gating of which actions are sensible for whom is a presentation concern
// and lives in the handler layer. Keeping the data layer permissive is
// part of the contract, not an omission.
//
// Every operation is a full read-modify-write of the persisted snapshot.
type WateringService struct {
	store domain.DataStore
	now   func() time.Time
}

// NewWateringService creates a new WateringService.
func NewWateringService(store domain.DataStore) *WateringService {
	return &WateringService{store: store, now: time.Now}
}

// GetOrCreateEntry returns the entry for the given date, creating and
// persisting an unassigned one when none exists. Creation is idempotent:
// repeated calls for the same date return the same entry id.
func (s *WateringService) GetOrCreateEntry(ctx context.Context, date string) domain.WateringEntry {
	data := s.store.Load(ctx)

	if entry := data.FindEntry(date); entry != nil {
		return *entry
	}

	entry := domain.WateringEntry{
		ID:     domain.NewID(),
		Date:   date,
		Status: domain.StatusUnassigned,
	}
	data.WateringEntries = append(data.WateringEntries, entry)
	s.store.Save(ctx, data)

	return entry
}

// Plan marks the date as planned by the given user, creating the entry if
// it does not exist, and records a planned activity.
func (s *WateringService) Plan(ctx context.Context, date, userID string) domain.WateringEntry {
	data := s.store.Load(ctx)
	now := s.now().UTC().Format(time.RFC3339)

	entry := data.FindEntry(date)
	if entry == nil {
		data.WateringEntries = append(data.WateringEntries, domain.WateringEntry{
			ID:   domain.NewID(),
			Date: date,
		})
		entry = &data.WateringEntries[len(data.WateringEntries)-1]
	}
	entry.Status = domain.StatusPlanned
	entry.AssignedUserID = userID
	entry.PlannedAt = now

	s.appendActivity(data, userID, domain.ActionPlanned, date)
	s.store.Save(ctx, data)

	return *entry
}

// Complete marks the date as completed by the given user, creating the
// entry if it does not exist, and records a completed activity. A prior
// assignment (assignedUserId, plannedAt) is left in place on purpose.
func (s *WateringService) Complete(ctx context.Context, date, userID string) domain.WateringEntry {
	data := s.store.Load(ctx)
	now := s.now().UTC().Format(time.RFC3339)

	entry := data.FindEntry(date)
	if entry == nil {
		data.WateringEntries = append(data.WateringEntries, domain.WateringEntry{
			ID:   domain.NewID(),
			Date: date,
		})
		entry = &data.WateringEntries[len(data.WateringEntries)-1]
	}
	entry.Status = domain.StatusCompleted
	entry.CompletedUserID = userID
	entry.CompletedAt = now

	s.appendActivity(data, userID, domain.ActionCompleted, date)
	s.store.Save(ctx, data)

	return *entry
}

// Cancel reverts a planned date to unassigned, clearing the assignment
// fields. A missing entry is not created, but the cancellation activity
// is recorded regardless.
func (s *WateringService) Cancel(ctx context.Context, date, userID string) *domain.WateringEntry {
	data := s.store.Load(ctx)

	var result *domain.WateringEntry
	if entry := data.FindEntry(date); entry != nil {
		entry.Status = domain.StatusUnassigned
		entry.AssignedUserID = ""
		entry.PlannedAt = ""
		copied := *entry
		result = &copied
	}

	s.appendActivity(data, userID, domain.ActionCancelled, date)
	s.store.Save(ctx, data)

	return result
}

// WeekEntries returns the entries for the 7 consecutive days starting at
// today+7*weekOffset, creating any that do not exist yet.
func (s *WateringService) WeekEntries(ctx context.Context, today time.Time, weekOffset int) []domain.WateringEntry {
	dates := domain.DateRange(today, 7, weekOffset*7)
	entries := make([]domain.WateringEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, s.GetOrCreateEntry(ctx, date))
	}
	return entries
}

// Activities returns the activity log, newest first.
func (s *WateringService) Activities(ctx context.Context) []domain.UserActivity {
	return s.store.Load(ctx).Activities
}

// Snapshot returns the full current state for read-only aggregation.
func (s *WateringService) Snapshot(ctx context.Context) *domain.AppData {
	return s.store.Load(ctx)
}

// appendActivity prepends a record so the log stays newest-first.
func (s *WateringService) appendActivity(data *domain.AppData, userID, action, date string) {
	activity := domain.UserActivity{
		ID:        domain.NewID(),
		UserID:    userID,
		Action:    action,
		Date:      date,
		Timestamp: s.now().UTC().Format(time.RFC3339),
	}
	data.Activities = append([]domain.UserActivity{activity}, data.Activities...)
}
