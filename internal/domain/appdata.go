package domain

import "context"

// User is a gardener known to the household. Users are created on first
// login and never deleted; at most one user exists per email.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	JoinDate string `json:"joinDate"`
	Avatar   string `json:"avatar,omitempty"`
}

// Watering entry statuses.
const (
	StatusUnassigned = "unassigned"
	StatusPlanned    = "planned"
	StatusCompleted  = "completed"
)

// WateringEntry is the watering record for one calendar day. Date is the
// effective primary key; at most one entry exists per date. Entries are
// created lazily, mutated in place, and never deleted.
type WateringEntry struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	AssignedUserID  string `json:"assignedUserId,omitempty"`
	CompletedUserID string `json:"completedUserId,omitempty"`
	CompletedAt     string `json:"completedAt,omitempty"`
	PlannedAt       string `json:"plannedAt,omitempty"`
}

// Activity actions.
const (
	ActionPlanned   = "planned"
	ActionCompleted = "completed"
	ActionCancelled = "cancelled"
)

// UserActivity is one immutable record in the append-only activity log.
// The log is kept newest-first and is never compacted.
type UserActivity struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Action    string `json:"action"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
}

// AppData is the entire persisted unit. Every operation loads it whole,
// mutates the in-memory copy, and writes it back whole; two writers would
// resolve as last-write-wins at blob granularity.
type AppData struct {
	Users           []User          `json:"users"`
	CurrentUserID   *string         `json:"currentUserId"`
	WateringEntries []WateringEntry `json:"wateringEntries"`
	Activities      []UserActivity  `json:"activities"`
}

// DefaultAppData returns the empty structure the store falls back to when
// nothing has been persisted yet or the stored blob cannot be parsed.
func DefaultAppData() *AppData {
	return &AppData{
		Users:           []User{},
		WateringEntries: []WateringEntry{},
		Activities:      []UserActivity{},
	}
}

// FindUserByID returns the user with the given id, or nil.
func (d *AppData) FindUserByID(id string) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindUserByEmail returns the user with the given email, or nil.
func (d *AppData) FindUserByEmail(email string) *User {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i]
		}
	}
	return nil
}

// FindEntry returns the watering entry for the given date, or nil.
func (d *AppData) FindEntry(date string) *WateringEntry {
	for i := range d.WateringEntries {
		if d.WateringEntries[i].Date == date {
			return &d.WateringEntries[i]
		}
	}
	return nil
}

// DataStore is the persistence adapter boundary. Both operations absorb
// storage failures: Load degrades to DefaultAppData and Save silently
// no-ops, so callers never observe an error value. Implementations may
// expose a diagnostic hook for observability instead.
type DataStore interface {
	Load(ctx context.Context) *AppData
	Save(ctx context.Context, data *AppData)
}
