package session

import (
	"context"
	"errors"
	"testing"
)

type fakeFetcher struct {
	questions []Question
	err       error
	calls     int
}

func (f *fakeFetcher) FetchQuestions(_ context.Context, _, _ string) ([]Question, error) {
	f.calls++
	return f.questions, f.err
}

type fakeSubmitter struct {
	errs     []error // dikonsumsi berurutan; habis = sukses
	received []Submission
}

func (f *fakeSubmitter) SubmitResult(_ context.Context, sub Submission) error {
	f.received = append(f.received, sub)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		return err
	}
	return nil
}

func twoQuestions() []Question {
	return []Question{
		{ID: "q1", Category: "Science", Difficulty: "Basic", Text: "1+1?", Options: []string{"1", "2", "3", "4"}, CorrectAnswer: 1},
		{ID: "q2", Category: "Science", Difficulty: "Basic", Text: "2+2?", Options: []string{"2", "3", "4", "5"}, CorrectAnswer: 2},
	}
}

func TestHappyPathScoring(t *testing.T) {
	m := New("Science", "Basic")
	fetcher := &fakeFetcher{questions: twoQuestions()}
	submitter := &fakeSubmitter{}

	if err := m.Start(context.Background(), fetcher); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if m.Phase() != PhaseInProgress {
		t.Fatalf("phase = %s, want in_progress", m.Phase())
	}

	// soal 1: benar
	if err := m.Select(1); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := m.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if m.CurrentIndex() != 1 {
		t.Fatalf("index = %d, want 1", m.CurrentIndex())
	}

	// soal 2: salah
	if err := m.Select(0); err != nil {
		t.Fatalf("Select: %v", err)
	}
	if err := m.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if m.Phase() != PhaseSubmitting {
		t.Fatalf("phase = %s, want submitting", m.Phase())
	}

	if err := m.Submit(context.Background(), submitter); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if m.Phase() != PhaseComplete {
		t.Fatalf("phase = %s, want complete", m.Phase())
	}

	if len(submitter.received) != 1 {
		t.Fatalf("submit calls = %d, want 1", len(submitter.received))
	}
	sub := submitter.received[0]
	if sub.Score != 1 || sub.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 1/2", sub.Score, sub.TotalQuestions)
	}
	if len(sub.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(sub.Answers))
	}
	if !sub.Answers[0].IsCorrect || sub.Answers[1].IsCorrect {
		t.Errorf("is_correct flags salah: %+v", sub.Answers)
	}

	sum, ok := m.Summary()
	if !ok {
		t.Fatal("Summary tidak tersedia setelah complete")
	}
	if sum.Score != 1 || sum.Category != "Science" || sum.Difficulty != "Basic" {
		t.Errorf("summary = %+v", sum)
	}
}

func TestStartWithoutSelectionStaysIdle(t *testing.T) {
	m := New("", "")
	fetcher := &fakeFetcher{questions: twoQuestions()}

	if err := m.Start(context.Background(), fetcher); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if m.Phase() != PhaseIdle {
		t.Fatalf("phase = %s, want idle", m.Phase())
	}
	if fetcher.calls != 0 {
		t.Errorf("fetcher dipanggil %d kali, seharusnya tidak sama sekali", fetcher.calls)
	}
}

func TestStartZeroQuestions(t *testing.T) {
	m := New("Sejarah", "Hard")
	fetcher := &fakeFetcher{questions: nil}

	err := m.Start(context.Background(), fetcher)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
	if m.Phase() != PhaseError {
		t.Fatalf("phase = %s, want error", m.Phase())
	}
}

func TestStartFetchFailure(t *testing.T) {
	m := New("Science", "Basic")
	boom := errors.New("connection refused")
	fetcher := &fakeFetcher{err: boom}

	if err := m.Start(context.Background(), fetcher); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if m.Phase() != PhaseError || !errors.Is(m.Err(), boom) {
		t.Fatalf("phase = %s, lastErr = %v", m.Phase(), m.Err())
	}
}

func TestNextWithoutSelectionRejected(t *testing.T) {
	m := New("Science", "Basic")
	if err := m.Start(context.Background(), &fakeFetcher{questions: twoQuestions()}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := m.Next(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if m.CurrentIndex() != 0 || len(m.Answers()) != 0 {
		t.Errorf("state berubah padahal Next ditolak")
	}
}

func TestSelectOutOfRange(t *testing.T) {
	m := New("Science", "Basic")
	if err := m.Start(context.Background(), &fakeFetcher{questions: twoQuestions()}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := m.Select(4); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
	if err := m.Select(-1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("err = %v, want ErrInvalidOption", err)
	}
	if m.SelectedAnswer() != nil {
		t.Error("pilihan tersimpan padahal ditolak")
	}
}

// Submit gagal → payload tetap ada dan retry mengirim payload identik.
func TestSubmitFailureRetainsPayloadForRetry(t *testing.T) {
	m := New("Science", "Basic")
	if err := m.Start(context.Background(), &fakeFetcher{questions: twoQuestions()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for range twoQuestions() {
		if err := m.Select(1); err != nil {
			t.Fatalf("Select: %v", err)
		}
		if err := m.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	boom := errors.New("timeout")
	submitter := &fakeSubmitter{errs: []error{boom}}

	if err := m.Submit(context.Background(), submitter); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
	if m.Phase() != PhaseError {
		t.Fatalf("phase = %s, want error", m.Phase())
	}

	// summary masih bisa ditampilkan walau submit gagal
	if _, ok := m.Summary(); !ok {
		t.Fatal("Summary hilang setelah submit gagal")
	}

	// retry: sukses, payload identik
	if err := m.Submit(context.Background(), submitter); err != nil {
		t.Fatalf("retry Submit: %v", err)
	}
	if m.Phase() != PhaseComplete {
		t.Fatalf("phase = %s, want complete", m.Phase())
	}
	if len(submitter.received) != 2 {
		t.Fatalf("submit calls = %d, want 2", len(submitter.received))
	}
	first, second := submitter.received[0], submitter.received[1]
	if first.Score != second.Score || len(first.Answers) != len(second.Answers) {
		t.Errorf("payload retry berbeda: %+v vs %+v", first, second)
	}
}

func TestOperationsOutsidePhaseRejected(t *testing.T) {
	m := New("Science", "Basic")

	if err := m.Select(0); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Select di idle: err = %v, want ErrWrongPhase", err)
	}
	if err := m.Next(); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Next di idle: err = %v, want ErrWrongPhase", err)
	}
	if err := m.Submit(context.Background(), &fakeSubmitter{}); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Submit di idle: err = %v, want ErrWrongPhase", err)
	}
	if _, ok := m.CurrentQuestion(); ok {
		t.Error("CurrentQuestion valid di idle")
	}

	// Start kedua kali ditolak
	if err := m.Start(context.Background(), &fakeFetcher{questions: twoQuestions()}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := m.Start(context.Background(), &fakeFetcher{questions: twoQuestions()}); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Start kedua: err = %v, want ErrWrongPhase", err)
	}
}
