package pwrlib

import "errors"

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrItemIDOutOfRange   = errors.New("item id out of range")
	ErrIDPoolExhausted    = errors.New("no free item id left in the pool")
	ErrDefaultUndeletable = errors.New("default schedule item cannot be removed")
	ErrDuplicateItemID    = errors.New("item id already in use")

	ErrEmptyMessage   = errors.New("reminder message is empty")
	ErrUnknownAction  = errors.New("unknown action")
	ErrUnknownEvent   = errors.New("unknown event")
	ErrUnknownStyle   = errors.New("unknown style")
	ErrSnoozeInterval = errors.New("snooze interval out of range")
)
