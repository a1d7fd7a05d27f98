package pwrlib

import (
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/spf13/afero"
)

// Options are the global feature switches consulted by the runtime engine.
// They persist in the userdata file alongside the configured items.
type Options struct {
	// EnableSchedule turns the action schedule processor on or off.
	EnableSchedule bool `json:"enable_schedule"`
	// NotifySchedule enables the 30-second pre-trigger notification.
	NotifySchedule bool `json:"notify_schedule"`
	// EnableReminders turns the power reminder processor on or off.
	EnableReminders bool `json:"enable_reminders"`
	// ConfirmAction asks for confirmation before executing a manual action.
	ConfirmAction bool `json:"confirm_action"`
}

// DefaultOptions returns the out-of-the-box option set.
func DefaultOptions() Options {
	return Options{
		EnableSchedule:  true,
		NotifySchedule:  true,
		EnableReminders: true,
		ConfirmAction:   false,
	}
}

// defaultScheduleItem returns the factory state of the reserved default
// schedule entry: present but disabled, shutdown at midnight, every day.
func defaultScheduleItem() ScheduleItem {
	return ScheduleItem{
		ItemID:         DefaultScheduleID,
		Enabled:        false,
		Repeat:         false,
		ActiveDays:     AllDays,
		Action:         ActionShutdown,
		Time:           MakeClock(0, 0),
		SnoozeInterval: DefaultSnoozeInterval,
	}
}

// userData is the gob-serialized on-disk form of the store.
type userData struct {
	Options   Options
	Default   ScheduleItem
	Extras    []ScheduleItem
	Reminders []ReminderItem
}

// Store owns the configured schedule and reminder items and persists them
// to a single userdata file. All accessors return copies; the engine never
// holds live references into the store.
type Store struct {
	fs   afero.Fs
	path string
	mu   sync.RWMutex
	data userData
}

// OpenStore loads the userdata file at path, creating a fresh store with
// defaults when the file is missing. A corrupt file is logged and replaced
// with defaults rather than surfaced as a hard error.
func OpenStore(fs afero.Fs, path string) (*Store, error) {
	s := &Store{
		fs:   fs,
		path: path,
		data: userData{
			Options: DefaultOptions(),
			Default: defaultScheduleItem(),
		},
	}
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("open userdata: %w", err)
	}
	defer f.Close()
	var data userData
	if decErr := gob.NewDecoder(f).Decode(&data); decErr != nil {
		if decErr != io.EOF {
			log.Printf("pwrlib: warning: failed to decode userdata, starting fresh: %v", decErr)
		}
		return s, nil
	}
	if data.Default.ItemID != DefaultScheduleID {
		data.Default = defaultScheduleItem()
	}
	s.data = data
	return s, nil
}

// Options returns the current global options.
func (s *Store) Options() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Options
}

// SetOptions replaces the global options.
func (s *Store) SetOptions(o Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Options = o
}

// Schedules returns the default item followed by the extra items in list
// order. The slice and its elements are copies.
func (s *Store) Schedules() []ScheduleItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ScheduleItem, 0, len(s.data.Extras)+1)
	out = append(out, s.data.Default)
	out = append(out, s.data.Extras...)
	return out
}

// Reminders returns all reminder items in list order, as copies.
func (s *Store) Reminders() []ReminderItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ReminderItem, len(s.data.Reminders))
	copy(out, s.data.Reminders)
	return out
}

// ScheduleByID looks up a schedule item (default included) by ID.
func (s *Store) ScheduleByID(id int) (ScheduleItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id == DefaultScheduleID {
		return s.data.Default, true
	}
	for _, it := range s.data.Extras {
		if it.ItemID == id {
			return it, true
		}
	}
	return ScheduleItem{}, false
}

// ReminderByID looks up a reminder item by ID.
func (s *Store) ReminderByID(id int) (ReminderItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.data.Reminders {
		if it.ItemID == id {
			return it, true
		}
	}
	return ReminderItem{}, false
}

// AddSchedule validates, normalizes and stores a new extra schedule item,
// assigning the next free ID from the extra-schedule pool. The assigned ID
// is returned.
func (s *Store) AddSchedule(it ScheduleItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.nextScheduleID()
	if err != nil {
		return 0, err
	}
	it.ItemID = id
	NormalizeSchedule(&it)
	if err := ValidateSchedule(it); err != nil {
		return 0, err
	}
	s.data.Extras = append(s.data.Extras, it)
	return id, nil
}

func (s *Store) nextScheduleID() (int, error) {
	used := make(map[int]bool, len(s.data.Extras))
	for _, it := range s.data.Extras {
		used[it.ItemID] = true
	}
	for id := MinExtraScheduleID; id <= MaxExtraScheduleID; id++ {
		if !used[id] {
			return id, nil
		}
	}
	return 0, ErrIDPoolExhausted
}

// UpdateSchedule overwrites the schedule item with the same ID. Updating
// the default ID overwrites the default entry.
func (s *Store) UpdateSchedule(it ScheduleItem) error {
	NormalizeSchedule(&it)
	if err := ValidateSchedule(it); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ItemID == DefaultScheduleID {
		s.data.Default = it
		return nil
	}
	for i := range s.data.Extras {
		if s.data.Extras[i].ItemID == it.ItemID {
			s.data.Extras[i] = it
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveSchedule deletes an extra schedule item. The default item cannot
// be removed; use ResetDefaultSchedule instead.
func (s *Store) RemoveSchedule(id int) error {
	if id == DefaultScheduleID {
		return ErrDefaultUndeletable
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Extras {
		if s.data.Extras[i].ItemID == id {
			s.data.Extras = append(s.data.Extras[:i], s.data.Extras[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// ResetDefaultSchedule restores the default schedule entry to its factory
// state.
func (s *Store) ResetDefaultSchedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Default = defaultScheduleItem()
}

// RemoveAllSchedules deletes every extra item and resets the default entry.
func (s *Store) RemoveAllSchedules() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Extras = nil
	s.data.Default = defaultScheduleItem()
}

// AddReminder validates, normalizes and stores a new reminder item,
// assigning the next free ID from the reminder pool.
func (s *Store) AddReminder(it ReminderItem) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	used := make(map[int]bool, len(s.data.Reminders))
	for _, r := range s.data.Reminders {
		used[r.ItemID] = true
	}
	id := 0
	for cand := MinReminderID; cand <= MaxReminderID; cand++ {
		if !used[cand] {
			id = cand
			break
		}
	}
	if id == 0 {
		return 0, ErrIDPoolExhausted
	}
	it.ItemID = id
	NormalizeReminder(&it)
	if err := ValidateReminder(it); err != nil {
		return 0, err
	}
	s.data.Reminders = append(s.data.Reminders, it)
	return id, nil
}

// UpdateReminder overwrites the reminder item with the same ID.
func (s *Store) UpdateReminder(it ReminderItem) error {
	NormalizeReminder(&it)
	if err := ValidateReminder(it); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Reminders {
		if s.data.Reminders[i].ItemID == it.ItemID {
			s.data.Reminders[i] = it
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveReminder deletes a reminder item by ID.
func (s *Store) RemoveReminder(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Reminders {
		if s.data.Reminders[i].ItemID == id {
			s.data.Reminders = append(s.data.Reminders[:i], s.data.Reminders[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveAllReminders deletes every reminder item.
func (s *Store) RemoveAllReminders() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Reminders = nil
}

// SetItemEnabled flips the enabled flag of a configured item in place.
// It reports whether the item was found. Used by the engine for one-shot
// deactivation.
func (s *Store) SetItemEnabled(cat Category, id int, enabled bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch cat {
	case CategorySchedule:
		if id == DefaultScheduleID {
			s.data.Default.Enabled = enabled
			return true
		}
		for i := range s.data.Extras {
			if s.data.Extras[i].ItemID == id {
				s.data.Extras[i].Enabled = enabled
				return true
			}
		}
	case CategoryReminder:
		for i := range s.data.Reminders {
			if s.data.Reminders[i].ItemID == id {
				s.data.Reminders[i].Enabled = enabled
				return true
			}
		}
	}
	return false
}

// Save writes the whole store to the userdata file. The category argument
// identifies which collection turned dirty; the file is small enough that
// a full rewrite is always performed.
func (s *Store) Save(cat Category) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("save %s data: %w", cat, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(&s.data); err != nil {
		return fmt.Errorf("save %s data: %w", cat, err)
	}
	return nil
}
