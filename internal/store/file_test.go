package store

import (
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "workshop.json"))

	on := true
	want := Data{
		Currency: "EUR",
		Printers: []Printer{{
			ID:                  "printer-1",
			Name:                "Workhorse",
			KwPerHour:           0.2,
			CostPerKwh:          0.35,
			IncludeDepreciation: &on,
			MaintenanceTasks:    []MaintenanceTask{{Name: "Nozzle", Cost: 20, IntervalHours: 500}},
		}},
		Filaments: []Filament{{ID: "filament-1", Name: "PLA", PricePerKg: 18.5}},
		LaborTasks: LaborLists{
			Pre:  []LaborTask{{Name: "Slicing", Minutes: 10, Rate: 20}},
			Post: []LaborTask{},
		},
	}

	if err := fs.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !fs.Exists() {
		t.Fatal("file should exist after save")
	}

	got, err := fs.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Currency != "EUR" || len(got.Printers) != 1 || len(got.Filaments) != 1 {
		t.Fatalf("unexpected data: %+v", got)
	}
	if got.Printers[0].MaintenanceTasks[0].IntervalHours != 500 {
		t.Fatalf("maintenance lost in round trip: %+v", got.Printers[0])
	}
	if got.LaborTasks.Pre[0].Name != "Slicing" {
		t.Fatalf("labor lost in round trip: %+v", got.LaborTasks)
	}
}

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	if fs.Exists() {
		t.Fatal("file should not exist")
	}
	_, err := fs.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestFileStoreMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workshop.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewFileStore(path).Load()
	if err == nil {
		t.Fatal("expected a decode error")
	}
}

func TestAutoSaverCoalescesBursts(t *testing.T) {
	var saves atomic.Int32
	a := NewAutoSaver(50*time.Millisecond, func() error {
		saves.Add(1)
		return nil
	}, nil)
	defer a.Close()

	for i := 0; i < 10; i++ {
		a.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	deadline := time.Now().Add(2 * time.Second)
	for saves.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	// Long enough for a stray second timer to have fired.
	time.Sleep(100 * time.Millisecond)

	if got := saves.Load(); got != 1 {
		t.Fatalf("expected 1 coalesced save, got %d", got)
	}
}

func TestAutoSaverFlushSavesImmediately(t *testing.T) {
	var saves atomic.Int32
	a := NewAutoSaver(time.Hour, func() error {
		saves.Add(1)
		return nil
	}, nil)
	defer a.Close()

	a.Trigger()
	if err := a.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := saves.Load(); got != 1 {
		t.Fatalf("expected 1 save after flush, got %d", got)
	}
}

func TestAutoSaverReportsErrors(t *testing.T) {
	errCh := make(chan error, 1)
	a := NewAutoSaver(time.Millisecond, func() error {
		return errors.New("disk full")
	}, func(err error) {
		errCh <- err
	})
	defer a.Close()

	a.Trigger()
	select {
	case err := <-errCh:
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("onError was never called")
	}
}

func TestAutoSaverClosedIgnoresTriggers(t *testing.T) {
	var saves atomic.Int32
	a := NewAutoSaver(time.Millisecond, func() error {
		saves.Add(1)
		return nil
	}, nil)

	a.Close()
	a.Trigger()
	time.Sleep(50 * time.Millisecond)

	if got := saves.Load(); got != 0 {
		t.Fatalf("closed saver still saved %d times", got)
	}
}
