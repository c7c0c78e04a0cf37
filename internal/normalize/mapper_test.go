package normalize

import (
	"encoding/json"
	"strings"
	"testing"
)

type sample struct {
	ID       string  `json:"id"`
	PersonID *string `json:"personId,omitempty"`
	Tag      *string `json:"personTag,omitempty"`
	Count    *int    `json:"count,omitempty"`
}

var sampleTable = FieldTable{
	{Wire: "id", Canonical: "id"},
	{Wire: "person_id", Canonical: "personId"},
	{Wire: "personId", Canonical: "personId"},
	{Wire: "person_tag", Canonical: "personTag"},
	{Wire: "count", Canonical: "count"},
}

func TestFieldTable_Apply(t *testing.T) {
	got, err := sampleTable.Apply(json.RawMessage(`{"id":"a","person_id":"P1","unknown":1,"person_tag":null}`))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Apply() produced %d fields, want 2: %v", len(got), got)
	}
	if string(got["personId"]) != `"P1"` {
		t.Errorf("personId = %s, want \"P1\"", got["personId"])
	}
	if _, ok := got["personTag"]; ok {
		t.Error("null wire field should leave canonical field absent")
	}
	if _, ok := got["unknown"]; ok {
		t.Error("unmapped wire field should be dropped")
	}
}

func TestFieldTable_FirstAliasWins(t *testing.T) {
	got, err := sampleTable.Apply(json.RawMessage(`{"personId":"camel","person_id":"snake"}`))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if string(got["personId"]) != `"snake"` {
		t.Errorf("personId = %s, want the first declared alias", got["personId"])
	}
}

func TestMapRecord_AbsenceMirrorsSource(t *testing.T) {
	rec, err := MapRecord[sample](sampleTable, json.RawMessage(`{"id":"a","person_tag":"VIP","count":3}`))
	if err != nil {
		t.Fatalf("MapRecord() error: %v", err)
	}
	if rec.Tag == nil || *rec.Tag != "VIP" {
		t.Errorf("Tag = %v, want VIP", rec.Tag)
	}
	if rec.Count == nil || *rec.Count != 3 {
		t.Errorf("Count = %v, want 3", rec.Count)
	}
	if rec.PersonID != nil {
		t.Errorf("PersonID = %q, want absent", *rec.PersonID)
	}

	out, _ := json.Marshal(rec)
	if strings.Contains(string(out), "personId") {
		t.Errorf("canonical JSON %s should not mention absent personId", out)
	}
}

func TestMapAll_TotalAndOrdered(t *testing.T) {
	var wire []json.RawMessage
	for _, id := range []string{"a", "b", "c", "d"} {
		wire = append(wire, json.RawMessage(`{"id":"`+id+`"}`))
	}

	records, rejected := MapAll[sample](sampleTable, wire)
	if len(rejected) != 0 {
		t.Fatalf("rejected = %v, want none", rejected)
	}
	if len(records) != len(wire) {
		t.Fatalf("got %d records, want %d", len(records), len(wire))
	}
	for i, want := range []string{"a", "b", "c", "d"} {
		if records[i].ID != want {
			t.Errorf("records[%d].ID = %q, want %q", i, records[i].ID, want)
		}
	}
}

func TestMapAll_MalformedRecordDoesNotAbortBatch(t *testing.T) {
	wire := []json.RawMessage{
		json.RawMessage(`{"id":"a"}`),
		json.RawMessage(`"not a record"`),
		json.RawMessage(`{"id":"c","count":"three"}`),
		json.RawMessage(`{"id":"d"}`),
	}

	records, rejected := MapAll[sample](sampleTable, wire)
	if len(records) != 2 || records[0].ID != "a" || records[1].ID != "d" {
		t.Errorf("records = %+v, want a and d", records)
	}
	if len(rejected) != 2 || rejected[0].Index != 1 || rejected[1].Index != 2 {
		t.Errorf("rejected = %+v, want indexes 1 and 2", rejected)
	}
}

func TestDecodeAll(t *testing.T) {
	wire := []json.RawMessage{
		json.RawMessage(`{"id":"x","personId":"P9"}`),
		json.RawMessage(`42`),
	}
	records, rejected := DecodeAll[sample](wire)
	if len(records) != 1 || records[0].PersonID == nil || *records[0].PersonID != "P9" {
		t.Errorf("records = %+v", records)
	}
	if len(rejected) != 1 || rejected[0].Index != 1 {
		t.Errorf("rejected = %+v", rejected)
	}
}
