package bot

import (
	"strings"
	"testing"

	"codeberg.org/snonux/vocabot/internal/billing"
)

func TestCommandResponse_Start(t *testing.T) {
	ledger := billing.NewLedger(20000.2)

	reply, ok := commandResponse("start", ledger)
	if !ok {
		t.Fatal("Expected /start to be handled")
	}
	if reply != greetingMessage {
		t.Errorf("Reply = %q, want greeting", reply)
	}
	if ledger.Len() != 0 {
		t.Error("/start must not touch the ledger")
	}
}

func TestCommandResponse_BalanceEmpty(t *testing.T) {
	ledger := billing.NewLedger(20000.2)

	reply, ok := commandResponse("balance", ledger)
	if !ok {
		t.Fatal("Expected /balance to be handled")
	}
	if reply != billing.EmptyBalanceMessage {
		t.Errorf("Reply = %q, want %q", reply, billing.EmptyBalanceMessage)
	}
}

func TestCommandResponse_BalanceWithEntries(t *testing.T) {
	ledger := billing.NewLedger(20000.2)
	ledger.Record("whisper-1", 0.003, 0, "voice duration: 30 seconds")
	ledger.Record("gpt-4.1-mini", 0.002, 1500, "per voice analysis")

	reply, ok := commandResponse("balance", ledger)
	if !ok {
		t.Fatal("Expected /balance to be handled")
	}

	if !strings.Contains(reply, "Total raw: 0.0050$") {
		t.Errorf("Missing raw total in:\n%s", reply)
	}
	if !strings.Contains(reply, "Total in UZS: 100.00 UZS") {
		t.Errorf("Missing UZS total in:\n%s", reply)
	}

	// Reading the balance never mutates the ledger.
	if ledger.Len() != 2 {
		t.Errorf("Ledger length changed to %d", ledger.Len())
	}
}

func TestCommandResponse_UnknownCommand(t *testing.T) {
	ledger := billing.NewLedger(20000.2)

	if _, ok := commandResponse("help", ledger); ok {
		t.Error("Unknown commands should not be handled")
	}
}
