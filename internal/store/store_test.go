package store

import (
	"path/filepath"
	"testing"

	"runway/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "runway.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testInputs(cash float64) model.Inputs {
	return model.Inputs{
		CashBalance:     cash,
		MonthlyRevenue:  10000,
		MonthlyExpenses: 20000,
		B2B:             model.Segment{Label: "B2B", Total: 20, New: 5, CAC: 500, ChurnRate: 2},
		B2C:             model.Segment{Label: "B2C", Total: 80, New: 15, CAC: 50, ChurnRate: 5},
	}
}

func TestLatestSnapshotEmpty(t *testing.T) {
	s := openTestStore(t)
	snap, err := s.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot() error = %v", err)
	}
	if snap != nil {
		t.Errorf("LatestSnapshot() = %+v, want nil on empty store", snap)
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveSnapshot(testInputs(100000)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	if err := s.SaveSnapshot(testInputs(90000)); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	snap, err := s.LatestSnapshot()
	if err != nil {
		t.Fatalf("LatestSnapshot() error = %v", err)
	}
	if snap == nil {
		t.Fatal("LatestSnapshot() = nil, want snapshot")
	}
	if snap.Inputs.CashBalance != 90000 {
		t.Errorf("CashBalance = %v, want latest save 90000", snap.Inputs.CashBalance)
	}
	if snap.Inputs.B2B.Label != "B2B" || snap.Inputs.B2C.Label != "B2C" {
		t.Errorf("labels = %q/%q, want B2B/B2C", snap.Inputs.B2B.Label, snap.Inputs.B2C.Label)
	}
	if snap.Inputs.B2C.ChurnRate != 5 {
		t.Errorf("B2C.ChurnRate = %v, want 5", snap.Inputs.B2C.ChurnRate)
	}
	if snap.SavedAt.IsZero() {
		t.Error("SavedAt should be set")
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	for _, cash := range []float64{100000, 90000, 80000} {
		if err := s.SaveSnapshot(testInputs(cash)); err != nil {
			t.Fatalf("SaveSnapshot() error = %v", err)
		}
	}

	snaps, err := s.ListSnapshots(2)
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(snaps))
	}
	if snaps[0].Inputs.CashBalance != 80000 || snaps[1].Inputs.CashBalance != 90000 {
		t.Errorf("order = %v, %v; want 80000, 90000", snaps[0].Inputs.CashBalance, snaps[1].Inputs.CashBalance)
	}
}

func TestReplaceInvestors(t *testing.T) {
	s := openTestStore(t)

	first := []model.Investor{
		{FirmName: "Acme Ventures", Type: "VC", Location: "Berlin"},
		{FirmName: "Blue Harbor Capital", Type: "PE", Location: "London"},
	}
	if err := s.ReplaceInvestors(first); err != nil {
		t.Fatalf("ReplaceInvestors() error = %v", err)
	}

	// A re-import fully replaces the previous directory.
	second := []model.Investor{
		{FirmName: "Cobalt Partners", Type: "VC", Location: "Paris"},
	}
	if err := s.ReplaceInvestors(second); err != nil {
		t.Fatalf("ReplaceInvestors() error = %v", err)
	}

	n, err := s.InvestorCount()
	if err != nil {
		t.Fatalf("InvestorCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("InvestorCount() = %d, want 1", n)
	}

	got, err := s.ListInvestors("")
	if err != nil {
		t.Fatalf("ListInvestors() error = %v", err)
	}
	if len(got) != 1 || got[0].FirmName != "Cobalt Partners" {
		t.Errorf("ListInvestors() = %+v, want only Cobalt Partners", got)
	}
}

func TestListInvestorsTypeFilter(t *testing.T) {
	s := openTestStore(t)
	err := s.ReplaceInvestors([]model.Investor{
		{FirmName: "Acme Ventures", Type: "VC"},
		{FirmName: "Blue Harbor Capital", Type: "PE"},
		{FirmName: "Cobalt Partners", Type: "VC"},
	})
	if err != nil {
		t.Fatalf("ReplaceInvestors() error = %v", err)
	}

	got, err := s.ListInvestors("VC")
	if err != nil {
		t.Fatalf("ListInvestors() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d investors, want 2", len(got))
	}
	if got[0].FirmName != "Acme Ventures" || got[1].FirmName != "Cobalt Partners" {
		t.Errorf("order = %q, %q; want alphabetical", got[0].FirmName, got[1].FirmName)
	}
}
