package dto

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validCreate() CreateQuestionRequest {
	zero := 2
	return CreateQuestionRequest{
		Category:      "Science",
		Difficulty:    "Basic",
		Question:      "Apa simbol kimia emas?",
		Options:       []string{"Go", "Gd", "Au", "Ag"},
		CorrectAnswer: &zero,
	}
}

func TestCreateValidateOK(t *testing.T) {
	if err := validCreate().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// correct_answer = 0 adalah nilai sah, harus dibedakan dari field kosong.
func TestCorrectAnswerZeroIsValid(t *testing.T) {
	r := validCreate()
	zero := 0
	r.CorrectAnswer = &zero
	if err := r.Validate(); err != nil {
		t.Fatalf("correct_answer 0 ditolak: %v", err)
	}

	r.CorrectAnswer = nil
	if err := r.Validate(); err == nil {
		t.Fatal("correct_answer absen lolos validasi")
	}
}

func TestCorrectAnswerOutOfRange(t *testing.T) {
	for _, v := range []int{-1, 4, 99} {
		r := validCreate()
		r.CorrectAnswer = &v
		if err := r.Validate(); err == nil {
			t.Errorf("correct_answer %d lolos validasi", v)
		}
	}
}

func TestDifficultyClosedSet(t *testing.T) {
	r := validCreate()
	for _, d := range []string{"Basic", "Intermediate", "Hard"} {
		r.Difficulty = d
		if err := r.Validate(); err != nil {
			t.Errorf("difficulty %q ditolak: %v", d, err)
		}
	}
	for _, d := range []string{"basic", "Easy", "", "Expert"} {
		r.Difficulty = d
		if err := r.Validate(); err == nil {
			t.Errorf("difficulty %q lolos validasi", d)
		}
	}
}

func TestOptionsRules(t *testing.T) {
	r := validCreate()
	r.Options = []string{"a", "b", "c"}
	if err := r.Validate(); err == nil {
		t.Error("3 opsi lolos validasi")
	}

	r = validCreate()
	r.Options = []string{"a", "b", "c", "d", "e"}
	if err := r.Validate(); err == nil {
		t.Error("5 opsi lolos validasi")
	}

	r = validCreate()
	r.Options = []string{"a", "  ", "c", "d"}
	if err := r.Validate(); err == nil {
		t.Error("opsi kosong lolos validasi")
	}
}

func TestCategoryFreeButNonEmpty(t *testing.T) {
	r := validCreate()
	r.Category = "Kategori Baru Apa Saja 123"
	if err := r.Validate(); err != nil {
		t.Errorf("kategori bebas ditolak: %v", err)
	}

	r.Category = "   "
	if err := r.Validate(); err == nil {
		t.Error("kategori whitespace lolos validasi")
	}
}

// Batch invalid harus menyebut index soal yang bermasalah.
func TestValidateBatchNamesOffendingIndex(t *testing.T) {
	bad := validCreate()
	bad.Question = ""
	items := []CreateQuestionRequest{validCreate(), bad, validCreate()}

	err := ValidateBatch(items)
	if err == nil {
		t.Fatal("batch invalid lolos validasi")
	}
	if !strings.Contains(err.Error(), "questions[1]") {
		t.Errorf("pesan error tidak menyebut index: %q", err.Error())
	}
}

func TestValidateBatchEmpty(t *testing.T) {
	if err := ValidateBatch(nil); err == nil {
		t.Fatal("batch kosong lolos validasi")
	}
}

func TestToModelTrimsAndCopies(t *testing.T) {
	r := validCreate()
	r.Category = "  Science  "
	r.Question = "  Apa?  "
	owner := uuid.New()

	m := r.ToModel(owner)
	if m.QuestionCategory != "Science" || m.QuestionText != "Apa?" {
		t.Errorf("trim tidak jalan: %q / %q", m.QuestionCategory, m.QuestionText)
	}
	if m.QuestionCorrectAnswer != 2 || m.QuestionCreatedBy != owner {
		t.Errorf("field tidak tersalin: %+v", m)
	}
}

func TestUpdatePartialApply(t *testing.T) {
	base := validCreate().ToModel(uuid.New())

	newCat := "History"
	zero := 0
	upd := UpdateQuestionRequest{Category: &newCat, CorrectAnswer: &zero}
	if err := upd.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	upd.ApplyTo(&base)

	if base.QuestionCategory != "History" {
		t.Errorf("category = %q", base.QuestionCategory)
	}
	if base.QuestionCorrectAnswer != 0 {
		t.Errorf("correct_answer = %d, want 0 (update ke 0 harus sah)", base.QuestionCorrectAnswer)
	}
	// field yang tidak dikirim tidak berubah
	if base.QuestionText != "Apa simbol kimia emas?" {
		t.Errorf("question ikut berubah: %q", base.QuestionText)
	}
}

func TestUpdateValidateRejectsBadFields(t *testing.T) {
	empty := "  "
	if err := (UpdateQuestionRequest{Category: &empty}).Validate(); err == nil {
		t.Error("category kosong lolos")
	}
	bad := "Easy"
	if err := (UpdateQuestionRequest{Difficulty: &bad}).Validate(); err == nil {
		t.Error("difficulty di luar enum lolos")
	}
	three := []string{"a", "b", "c"}
	if err := (UpdateQuestionRequest{Options: &three}).Validate(); err == nil {
		t.Error("options != 4 lolos")
	}
	five := 5
	if err := (UpdateQuestionRequest{CorrectAnswer: &five}).Validate(); err == nil {
		t.Error("correct_answer di luar rentang lolos")
	}
	// request kosong = no-op yang sah
	if err := (UpdateQuestionRequest{}).Validate(); err != nil {
		t.Errorf("request kosong ditolak: %v", err)
	}
}
