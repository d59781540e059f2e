package models

import "testing"

func TestNextTagTransitions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		from  TagStatus
		event TagEvent
		want  TagStatus
	}{
		{"", EventCreate, TagNew},
		{TagNew, EventUpdate, TagEdited},
		{TagEdited, EventUpdate, TagEdited},
		{TagDeleted, EventUpdate, TagEdited},
		{TagNew, EventDelete, TagDeleted},
		{TagEdited, EventDelete, TagDeleted},
	}
	for _, c := range cases {
		if got := NextTag(c.from, c.event); got != c.want {
			t.Fatalf("NextTag(%q, %q) = %q, want %q", c.from, c.event, got, c.want)
		}
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()
	tag := NextTag(TagEdited, EventDelete)
	if tag != TagDeleted {
		t.Fatalf("expected deleted, got %q", tag)
	}
	if again := NextTag(tag, EventDelete); again != TagDeleted {
		t.Fatalf("second delete changed tag: %q", again)
	}
}

func TestParseTagDefaultsToNew(t *testing.T) {
	t.Parallel()
	if got := ParseTag(""); got != TagNew {
		t.Fatalf("blank tag: got %q, want %q", got, TagNew)
	}
	if got := ParseTag("garbage"); got != TagNew {
		t.Fatalf("unknown tag: got %q, want %q", got, TagNew)
	}
	if got := ParseTag("deleted"); got != TagDeleted {
		t.Fatalf("deleted tag: got %q, want %q", got, TagDeleted)
	}
}
