package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ivan-Ayub97/Metagify/internal/model"
)

func TestDispatcher_RejectsSecondJobWhileBusy(t *testing.T) {
	d := NewDispatcher()

	release := make(chan struct{})
	finished := make(chan model.Report, 1)

	err := d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		<-release
		return model.Report{Processed: 1, Total: 1}, nil
	}, func(r model.Report, err error) {
		finished <- r
	})
	if err != nil {
		t.Fatalf("first Submit() error = %v", err)
	}
	if !d.Busy() {
		t.Error("Busy() = false while a job is running")
	}

	err = d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		t.Error("second job must not run")
		return model.Report{}, nil
	}, nil)
	if !errors.Is(err, ErrBusy) {
		t.Errorf("second Submit() error = %v, want ErrBusy", err)
	}

	close(release)

	select {
	case report := <-finished:
		if report.Processed != 1 {
			t.Errorf("Processed = %d, want 1", report.Processed)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("done callback never fired")
	}
}

func TestDispatcher_IdleAfterCompletion(t *testing.T) {
	d := NewDispatcher()

	done := make(chan struct{}, 1)
	if err := d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		return model.Report{}, nil
	}, func(model.Report, error) {
		done <- struct{}{}
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("job never finished")
	}

	// A fresh job must be accepted once the previous one completed.
	if err := d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		return model.Report{}, nil
	}, func(model.Report, error) {
		done <- struct{}{}
	}); err != nil {
		t.Errorf("Submit() after completion error = %v", err)
	}
	<-done
}

func TestDispatcher_DeliversJobFailure(t *testing.T) {
	d := NewDispatcher()

	jobErr := &TrackCountMismatchError{Selected: 3, Expected: 2}
	failed := make(chan error, 1)

	if err := d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		return model.Report{}, jobErr
	}, func(r model.Report, err error) {
		failed <- err
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	select {
	case err := <-failed:
		var mismatch *TrackCountMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("done error = %v, want *TrackCountMismatchError", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("done callback never fired")
	}
}

func TestDispatcher_StopCancelsRunningJob(t *testing.T) {
	d := NewDispatcher()

	started := make(chan struct{})
	finished := make(chan model.Report, 1)

	if err := d.Submit(context.Background(), func(ctx context.Context) (model.Report, error) {
		close(started)
		<-ctx.Done()
		return model.Report{Processed: 2, Total: 5}, nil
	}, func(r model.Report, err error) {
		finished <- r
	}); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	<-started
	d.Stop()

	select {
	case report := <-finished:
		if report.Processed != 2 || report.Total != 5 {
			t.Errorf("report = %+v, want the partial report from the stopped job", report)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stop() did not end the job")
	}

	if d.Busy() {
		t.Error("Busy() = true after the stopped job returned")
	}
}

func TestDispatcher_StopWhileIdleIsHarmless(t *testing.T) {
	d := NewDispatcher()
	d.Stop()

	if d.Busy() {
		t.Error("Busy() = true on an idle dispatcher")
	}
}
