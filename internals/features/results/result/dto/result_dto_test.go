package dto

import (
	"testing"

	"github.com/google/uuid"
)

func validSubmit() SubmitResultRequest {
	score, total := 2, 3
	sel0, sel1, sel2 := 1, 0, 3
	yes, no := true, false
	return SubmitResultRequest{
		Category:       "Science",
		Difficulty:     "Basic",
		Score:          &score,
		TotalQuestions: &total,
		Answers: []AttemptAnswer{
			{QuestionID: uuid.NewString(), SelectedAnswer: &sel0, IsCorrect: &yes},
			{QuestionID: uuid.NewString(), SelectedAnswer: &sel1, IsCorrect: &no},
			{QuestionID: uuid.NewString(), SelectedAnswer: &sel2, IsCorrect: &yes},
		},
	}
}

func TestSubmitValidateOK(t *testing.T) {
	if err := validSubmit().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// Kontrak submit: presence check saja. Skor yang tidak konsisten dengan
// answers tetap diterima apa adanya (skor dihitung dan dipercaya dari client).
func TestSubmitTrustsClientScore(t *testing.T) {
	r := validSubmit()
	bogus := 999
	r.Score = &bogus
	if err := r.Validate(); err != nil {
		t.Fatalf("skor tidak konsisten ditolak, padahal kontraknya presence-only: %v", err)
	}

	m, err := r.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ResultScore != 999 {
		t.Errorf("score = %d, want 999 (disimpan apa adanya)", m.ResultScore)
	}
}

func TestSubmitScoreZeroIsValid(t *testing.T) {
	r := validSubmit()
	zero := 0
	r.Score = &zero
	if err := r.Validate(); err != nil {
		t.Fatalf("score 0 ditolak: %v", err)
	}
}

func TestSubmitMissingFieldsRejected(t *testing.T) {
	r := validSubmit()
	r.Score = nil
	if err := r.Validate(); err == nil {
		t.Error("score absen lolos")
	}

	r = validSubmit()
	r.Answers = nil
	if err := r.Validate(); err == nil {
		t.Error("answers kosong lolos")
	}

	r = validSubmit()
	r.Category = ""
	if err := r.Validate(); err == nil {
		t.Error("category kosong lolos")
	}

	r = validSubmit()
	r.Answers[1].SelectedAnswer = nil
	if err := r.Validate(); err == nil {
		t.Error("selected_answer absen lolos")
	}

	r = validSubmit()
	r.Answers[0].QuestionID = "bukan-uuid"
	if err := r.Validate(); err == nil {
		t.Error("question_id non-uuid lolos")
	}
}

func TestToModelRoundTripsAnswers(t *testing.T) {
	r := validSubmit()
	owner := uuid.New()

	m, err := r.ToModel(owner)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if m.ResultUserID != owner || m.ResultScore != 2 || m.ResultTotalQuestions != 3 {
		t.Errorf("model = %+v", m)
	}

	dto := ToResultDTO(m)
	if len(dto.Answers) != 3 {
		t.Fatalf("answers = %d, want 3", len(dto.Answers))
	}
	if dto.Answers[0].QuestionID != r.Answers[0].QuestionID {
		t.Errorf("answers tidak utuh setelah roundtrip jsonb")
	}
}

func TestCanViewResult(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	cases := []struct {
		name      string
		requester uuid.UUID
		role      string
		want      bool
	}{
		{"pemilik boleh", owner, "user", true},
		{"admin boleh walau bukan pemilik", other, "admin", true},
		{"user lain ditolak", other, "user", false},
		{"role kosong ditolak", other, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewResult(owner, tc.requester, tc.role); got != tc.want {
				t.Errorf("CanViewResult = %v, want %v", got, tc.want)
			}
		})
	}
}
