package models

// TagStatus is the lifecycle/audit marker carried by every business record.
// "deleted" is the only value that gates default visibility; "new" and
// "edited" are informational.
type TagStatus string

const (
	TagNew     TagStatus = "new"
	TagEdited  TagStatus = "edited"
	TagDeleted TagStatus = "deleted"
)

// TagEvent is a lifecycle transition applied to a record.
type TagEvent string

const (
	EventCreate TagEvent = "create"
	EventUpdate TagEvent = "update"
	EventDelete TagEvent = "delete"
)

// NextTag returns the tag a record carries after the given event.
// Deleting an already-deleted record is a no-op, so delete is idempotent.
func NextTag(current TagStatus, event TagEvent) TagStatus {
	switch event {
	case EventCreate:
		return TagNew
	case EventUpdate:
		return TagEdited
	case EventDelete:
		return TagDeleted
	}
	return current
}

// IsDeleted reports whether the record is soft-deleted.
func (t TagStatus) IsDeleted() bool {
	return t == TagDeleted
}

// ParseTag normalizes a raw cell/column value into a TagStatus.
// Unknown or blank values are treated as "new" so legacy rows stay visible.
func ParseTag(raw string) TagStatus {
	switch TagStatus(raw) {
	case TagNew, TagEdited, TagDeleted:
		return TagStatus(raw)
	}
	return TagNew
}
