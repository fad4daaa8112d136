package snapshot

import (
	"reflect"
	"testing"
)

func TestRebuildIndex(t *testing.T) {
	idx := RebuildIndex([]string{
		"snapshot-1-7-2000",
		"snapshot-1-5-1000",
		"snapshot-2-1-500",
		"notes.txt",
		"checkpoint-9-9-9",
	})

	if got := idx.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}

	got := idx.MostRecentMatching(1, nil)
	want := []Metadata{
		{ProcessorID: 1, SequenceNr: 7, Timestamp: 2000},
		{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MostRecentMatching(1) = %+v, want %+v", got, want)
	}
}

func TestRebuildIndexIdempotent(t *testing.T) {
	first := RebuildIndex([]string{
		"snapshot-1-5-1000",
		"snapshot-1-7-2000",
		"snapshot-2-1-500",
	})

	names := make([]string, 0, first.Len())
	for _, m := range first.All() {
		names = append(names, m.Filename())
	}

	second := RebuildIndex(names)
	if !reflect.DeepEqual(first.All(), second.All()) {
		t.Errorf("rebuilt index differs:\nfirst:  %+v\nsecond: %+v", first.All(), second.All())
	}
}

func TestRecordIdempotent(t *testing.T) {
	idx := NewIndex()
	m := Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000}

	idx.Record(m)
	idx.Record(m)

	if got := idx.Len(); got != 1 {
		t.Errorf("Len() after duplicate Record = %d, want 1", got)
	}
}

func TestRecordEqualSequenceKeepsBoth(t *testing.T) {
	idx := NewIndex()
	older := Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000}
	newer := Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 2000}

	idx.Record(older)
	idx.Record(newer)

	if got := idx.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	// The most recently recorded entry must come first in the walk.
	got := idx.MostRecentMatching(1, nil)
	if got[0] != newer {
		t.Errorf("walk head = %+v, want %+v", got[0], newer)
	}
}

func TestMostRecentMatchingOrder(t *testing.T) {
	idx := NewIndex()
	for _, seq := range []uint64{3, 9, 1, 7} {
		idx.Record(Metadata{ProcessorID: 1, SequenceNr: seq, Timestamp: int64(seq * 100)})
	}

	got := idx.MostRecentMatching(1, nil)
	wantSeqs := []uint64{9, 7, 3, 1}
	if len(got) != len(wantSeqs) {
		t.Fatalf("len = %d, want %d", len(got), len(wantSeqs))
	}
	for i, m := range got {
		if m.SequenceNr != wantSeqs[i] {
			t.Errorf("entry %d sequence = %d, want %d", i, m.SequenceNr, wantSeqs[i])
		}
	}
}

func TestMostRecentMatchingFilter(t *testing.T) {
	idx := NewIndex()
	idx.Record(Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000})
	idx.Record(Metadata{ProcessorID: 1, SequenceNr: 7, Timestamp: 2000})

	got := idx.MostRecentMatching(1, func(m Metadata) bool {
		return m.SequenceNr <= 5
	})
	if len(got) != 1 || got[0].SequenceNr != 5 {
		t.Errorf("filtered walk = %+v, want only sequence 5", got)
	}

	none := idx.MostRecentMatching(1, func(Metadata) bool { return false })
	if len(none) != 0 {
		t.Errorf("reject-all filter returned %+v", none)
	}
}

func TestMostRecentMatchingUnknownProcessor(t *testing.T) {
	idx := NewIndex()
	idx.Record(Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000})

	if got := idx.MostRecentMatching(99, nil); len(got) != 0 {
		t.Errorf("unknown processor returned %+v", got)
	}
}

func TestAllOrdered(t *testing.T) {
	idx := NewIndex()
	idx.Record(Metadata{ProcessorID: 2, SequenceNr: 1, Timestamp: 500})
	idx.Record(Metadata{ProcessorID: 1, SequenceNr: 7, Timestamp: 2000})
	idx.Record(Metadata{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000})

	got := idx.All()
	want := []Metadata{
		{ProcessorID: 1, SequenceNr: 5, Timestamp: 1000},
		{ProcessorID: 1, SequenceNr: 7, Timestamp: 2000},
		{ProcessorID: 2, SequenceNr: 1, Timestamp: 500},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %+v, want %+v", got, want)
	}
}
