package events

import (
	"testing"
)

func TestEventJSONRoundTrip(t *testing.T) {
	in := NewOrderCreated("o1", 50, []TicketLine{{Name: "Chai", Quantity: 2}})

	raw, err := in.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Kind != KindOrderCreated || out.ID != "o1" || out.Total != 50 {
		t.Fatalf("unexpected event: %+v", out)
	}
	if len(out.Lines) != 1 || out.Lines[0].Name != "Chai" || out.Lines[0].Quantity != 2 {
		t.Fatalf("unexpected lines: %+v", out.Lines)
	}
}

func TestFromJSONMalformed(t *testing.T) {
	if _, err := FromJSON([]byte("{broken")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

func TestEventConstructors(t *testing.T) {
	if e := NewOrderDeleted("o2"); e.Kind != KindOrderDeleted || e.ID != "o2" {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e := NewExpenseRecorded("e1", 120); e.Kind != KindExpenseRecorded || e.Total != 120 {
		t.Fatalf("unexpected event: %+v", e)
	}
	if NewOrderCreated("o3", 10, nil).Timestamp.IsZero() {
		t.Fatalf("constructor should stamp the event")
	}
}
