package watchlist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
)

func newTestService() *Service {
	return NewService(common.NewSilentLogger())
}

func TestAdd(t *testing.T) {
	svc := newTestService()

	list, err := svc.Add(nil, "aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0] != "AAPL" {
		t.Errorf("expected [AAPL], got %v", list)
	}
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	svc := newTestService()

	list := []string{"AAPL", "MSFT"}
	updated, err := svc.Add(list, "aapl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated) != 2 {
		t.Errorf("duplicate add must not grow list: %v", updated)
	}
}

func TestAdd_EmptySymbol(t *testing.T) {
	svc := newTestService()

	if _, err := svc.Add(nil, "  "); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdd_CapIsSilentNoOp(t *testing.T) {
	svc := newTestService()

	var list []string
	var err error
	for i := 0; i < MaxSymbols; i++ {
		list, err = svc.Add(list, fmt.Sprintf("SYM%d", i))
		if err != nil {
			t.Fatalf("add %d: unexpected error: %v", i, err)
		}
	}
	if len(list) != MaxSymbols {
		t.Fatalf("expected %d symbols, got %d", MaxSymbols, len(list))
	}

	// The 21st distinct symbol is dropped silently, leaving the list unchanged
	updated, err := svc.Add(list, "OVERFLOW")
	if err != nil {
		t.Fatalf("add at cap must not error: %v", err)
	}
	if len(updated) != MaxSymbols {
		t.Errorf("add at cap must not grow list: %d", len(updated))
	}
	for _, sym := range updated {
		if sym == "OVERFLOW" {
			t.Errorf("overflow symbol must not be added: %v", updated)
		}
	}

	// Re-adding an existing symbol at cap is likewise a no-op
	updated, err = svc.Add(list, "SYM0")
	if err != nil {
		t.Errorf("duplicate at cap must not error: %v", err)
	}
	if len(updated) != MaxSymbols {
		t.Errorf("duplicate at cap must not grow list: %d", len(updated))
	}
}

func TestRemove(t *testing.T) {
	svc := newTestService()

	list := []string{"AAPL", "MSFT", "TSLA"}
	updated := svc.Remove(list, "msft")

	if len(updated) != 2 {
		t.Fatalf("expected 2 symbols, got %v", updated)
	}
	if updated[0] != "AAPL" || updated[1] != "TSLA" {
		t.Errorf("order not preserved: %v", updated)
	}
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	svc := newTestService()

	list := []string{"AAPL"}
	updated := svc.Remove(list, "MSFT")
	if len(updated) != 1 || updated[0] != "AAPL" {
		t.Errorf("absent remove must be a no-op: %v", updated)
	}
}
