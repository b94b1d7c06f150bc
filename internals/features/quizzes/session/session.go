// Package session memodelkan alur pengerjaan quiz sebagai state machine
// eksplisit: Idle → Loading → InProgress → Submitting → Complete, dengan
// Error tercapai dari Loading dan Submitting. Satu attempt = satu Machine;
// quiz baru berarti Machine baru, tidak ada state yang dibawa.
//
// Fetch dan submit ada di balik interface supaya mesinnya murni dan bisa
// dites tanpa server.
package session

import (
	"context"
	"errors"
)

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseLoading    Phase = "loading"
	PhaseInProgress Phase = "in_progress"
	PhaseSubmitting Phase = "submitting"
	PhaseComplete   Phase = "complete"
	PhaseError      Phase = "error"
)

var (
	ErrNoQuestions   = errors.New("No questions available for this quiz")
	ErrNoSelection   = errors.New("Please select an answer")
	ErrInvalidOption = errors.New("Selected option is out of range")
	ErrWrongPhase    = errors.New("Operation not allowed in current phase")
)

// Question adalah bentuk soal yang dilihat mesin sesi (correct answer ikut
// terbawa — penilaian dihitung di sisi client, sama seperti aslinya).
type Question struct {
	ID            string
	Category      string
	Difficulty    string
	Text          string
	Options       []string
	CorrectAnswer int
}

// RecordedAnswer adalah satu jawaban yang sudah dikunci lewat Next.
type RecordedAnswer struct {
	QuestionID     string `json:"question_id"`
	SelectedAnswer int    `json:"selected_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// Submission adalah payload final yang dikirim ke Result Repository.
type Submission struct {
	Category       string           `json:"category"`
	Difficulty     string           `json:"difficulty"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"total_questions"`
	Answers        []RecordedAnswer `json:"answers"`
}

// Summary dibawa ke layar hasil setelah Complete.
type Summary struct {
	Score          int
	TotalQuestions int
	Category       string
	Difficulty     string
}

type QuestionFetcher interface {
	FetchQuestions(ctx context.Context, category, difficulty string) ([]Question, error)
}

type ResultSubmitter interface {
	SubmitResult(ctx context.Context, sub Submission) error
}

// Machine menyimpan seluruh state satu attempt. Tidak thread-safe:
// transisi digerakkan satu per satu oleh event user (select, next, submit).
type Machine struct {
	phase      Phase
	category   string
	difficulty string

	questions []Question
	current   int
	selected  *int
	answers   []RecordedAnswer

	// payload yang sudah dihitung; tetap ada saat submit gagal supaya
	// retry mengirim ulang payload identik (tanpa dedup key — duplikat
	// setelah timeout memang mungkin, perilaku bawaan aslinya)
	pending *Submission

	lastErr error
}

func New(category, difficulty string) *Machine {
	return &Machine{
		phase:      PhaseIdle,
		category:   category,
		difficulty: difficulty,
	}
}

func (m *Machine) Phase() Phase { return m.phase }
func (m *Machine) Err() error   { return m.lastErr }

// Start memuat soal untuk (category, difficulty).
// Tanpa keduanya: tetap Idle (self-transition, bukan error) — pemanggil
// diarahkan balik ke pemilihan.
func (m *Machine) Start(ctx context.Context, fetcher QuestionFetcher) error {
	if m.phase != PhaseIdle {
		return ErrWrongPhase
	}
	if m.category == "" || m.difficulty == "" {
		return nil
	}

	m.phase = PhaseLoading
	questions, err := fetcher.FetchQuestions(ctx, m.category, m.difficulty)
	if err != nil {
		m.phase = PhaseError
		m.lastErr = err
		return err
	}
	if len(questions) == 0 {
		m.phase = PhaseError
		m.lastErr = ErrNoQuestions
		return ErrNoQuestions
	}

	m.questions = questions
	m.current = 0
	m.phase = PhaseInProgress
	return nil
}

// CurrentQuestion mengembalikan soal aktif (hanya valid di InProgress).
func (m *Machine) CurrentQuestion() (Question, bool) {
	if m.phase != PhaseInProgress {
		return Question{}, false
	}
	return m.questions[m.current], true
}

func (m *Machine) CurrentIndex() int    { return m.current }
func (m *Machine) TotalQuestions() int  { return len(m.questions) }
func (m *Machine) SelectedAnswer() *int { return m.selected }

// Select hanya mengubah pilihan; jawaban baru dikunci saat Next.
func (m *Machine) Select(option int) error {
	if m.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if option < 0 || option >= len(m.questions[m.current].Options) {
		return ErrInvalidOption
	}
	v := option
	m.selected = &v
	return nil
}

// Next mengunci jawaban aktif lalu maju; tanpa pilihan → ditolak tanpa
// perubahan state. Di soal terakhir, Next menghitung payload final dan
// pindah ke Submitting.
func (m *Machine) Next() error {
	if m.phase != PhaseInProgress {
		return ErrWrongPhase
	}
	if m.selected == nil {
		return ErrNoSelection
	}

	q := m.questions[m.current]
	m.answers = append(m.answers, RecordedAnswer{
		QuestionID:     q.ID,
		SelectedAnswer: *m.selected,
		IsCorrect:      *m.selected == q.CorrectAnswer,
	})
	m.selected = nil

	if m.current < len(m.questions)-1 {
		m.current++
		return nil
	}

	// soal terakhir terjawab → hitung skor & siapkan submission
	score := 0
	for _, a := range m.answers {
		if a.IsCorrect {
			score++
		}
	}
	m.pending = &Submission{
		Category:       m.category,
		Difficulty:     m.difficulty,
		Score:          score,
		TotalQuestions: len(m.questions),
		Answers:        m.answers,
	}
	m.phase = PhaseSubmitting
	return nil
}

// Submit mengirim payload final. Gagal → PhaseError, tapi payload tidak
// hilang: Submit boleh dipanggil lagi (user-initiated retry).
func (m *Machine) Submit(ctx context.Context, submitter ResultSubmitter) error {
	if m.pending == nil || (m.phase != PhaseSubmitting && m.phase != PhaseError) {
		return ErrWrongPhase
	}

	m.phase = PhaseSubmitting
	if err := submitter.SubmitResult(ctx, *m.pending); err != nil {
		m.phase = PhaseError
		m.lastErr = err
		return err
	}

	m.phase = PhaseComplete
	m.lastErr = nil
	return nil
}

// Summary valid begitu payload final terhitung (Submitting/Error/Complete).
func (m *Machine) Summary() (Summary, bool) {
	if m.pending == nil {
		return Summary{}, false
	}
	return Summary{
		Score:          m.pending.Score,
		TotalQuestions: m.pending.TotalQuestions,
		Category:       m.pending.Category,
		Difficulty:     m.pending.Difficulty,
	}, true
}

// Answers mengembalikan salinan jawaban yang sudah terkunci.
func (m *Machine) Answers() []RecordedAnswer {
	out := make([]RecordedAnswer, len(m.answers))
	copy(out, m.answers)
	return out
}
