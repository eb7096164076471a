package trace

import "testing"

func TestPowerTrace_RecordAppendsInOrder(t *testing.T) {
	pt := NewPowerTrace(24)
	pt.Record(Transition{Time: 1, From: StateOperational, To: StateRepair})
	pt.Record(Transition{Time: 2, From: StateRepair, To: StateOperational})

	if len(pt.Transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(pt.Transitions))
	}
	if pt.Transitions[0].Time != 1 || pt.Transitions[1].Time != 2 {
		t.Errorf("transitions out of order: %+v", pt.Transitions)
	}
	if pt.Horizon != 24 {
		t.Errorf("expected horizon 24, got %v", pt.Horizon)
	}
}

func TestPowerTrace_NilReceiverIsNoop(t *testing.T) {
	var pt *PowerTrace
	// must not panic
	pt.Record(Transition{Time: 1, From: StateOperational, To: StateRepair})
}
