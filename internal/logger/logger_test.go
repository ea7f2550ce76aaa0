package logger

import "testing"

func TestDeferLogCollectsMessagesInSourceOrder(t *testing.T) {
	log := NewDeferLog()

	log.AddMsg(Msg{Severity: Panic, Loc: Loc{Origin: 0, Offset: 40}, Text: "second"})
	log.AddMsg(Msg{Severity: Note, Loc: Loc{Origin: 0, Offset: 10}, Text: "first"})

	msgs := log.Done()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "first" || msgs[1].Text != "second" {
		t.Fatalf("messages not sorted by source position: %+v", msgs)
	}
	if !log.HasErrors() {
		t.Fatal("expected HasErrors to be true after a Panic-severity message")
	}
}

func TestNullLocIsNull(t *testing.T) {
	if !NullLoc.IsNull() {
		t.Fatal("NullLoc.IsNull() should be true")
	}
	if (Loc{Origin: 0, Offset: 0}).IsNull() {
		t.Fatal("a real zero-offset location should not be null")
	}
}
