package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"quizku_backend/internals/features/quizzes/question/model"
)

var validate = validator.New()

// ============================
// Response DTO
// ============================

type QuestionDTO struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Difficulty    string    `json:"difficulty"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToQuestionDTO(m model.QuestionModel) QuestionDTO {
	createdBy := ""
	if m.QuestionCreatedBy != uuid.Nil {
		createdBy = m.QuestionCreatedBy.String()
	}
	return QuestionDTO{
		ID:            m.QuestionID.String(),
		Category:      m.QuestionCategory,
		Difficulty:    m.QuestionDifficulty,
		Question:      m.QuestionText,
		Options:       []string(m.QuestionOptions),
		CorrectAnswer: m.QuestionCorrectAnswer,
		CreatedBy:     createdBy,
		CreatedAt:     m.QuestionCreatedAt,
	}
}

func ToQuestionDTOs(models []model.QuestionModel) []QuestionDTO {
	out := make([]QuestionDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToQuestionDTO(m))
	}
	return out
}

// ============================
// Create Request DTO
// ============================

// CorrectAnswer pakai pointer: nilai 0 valid dan HARUS bisa dibedakan
// dari field yang tidak dikirim.
type CreateQuestionRequest struct {
	Category      string   `json:"category" validate:"required"`
	Difficulty    string   `json:"difficulty" validate:"required,oneof=Basic Intermediate Hard"`
	Question      string   `json:"question" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4"`
	CorrectAnswer *int     `json:"correct_answer" validate:"required,min=0,max=3"`
}

// Validate memeriksa satu soal; pesan error menyebut field yang melanggar.
func (r CreateQuestionRequest) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return errors.New("category wajib diisi")
	}
	if strings.TrimSpace(r.Question) == "" {
		return errors.New("question wajib diisi")
	}
	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			switch fe.Field() {
			case "Difficulty":
				return errors.New("difficulty harus salah satu dari Basic, Intermediate, Hard")
			case "Options":
				return errors.New("options harus tepat 4 entri")
			case "CorrectAnswer":
				return errors.New("correct_answer wajib diisi dan di rentang 0..3")
			}
		}
		return err
	}
	for i, opt := range r.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("options[%d] tidak boleh kosong", i)
		}
	}
	return nil
}

// ValidateBatch memvalidasi seluruh batch sebelum insert apa pun.
// Soal pertama yang invalid menggagalkan seluruh batch, dengan index-nya disebut.
func ValidateBatch(items []CreateQuestionRequest) error {
	if len(items) == 0 {
		return errors.New("questions tidak boleh kosong")
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("questions[%d]: %s", i, err.Error())
		}
	}
	return nil
}

func (r CreateQuestionRequest) ToModel(createdBy uuid.UUID) model.QuestionModel {
	return model.QuestionModel{
		QuestionCategory:      strings.TrimSpace(r.Category),
		QuestionDifficulty:    r.Difficulty,
		QuestionText:          strings.TrimSpace(r.Question),
		QuestionOptions:       pq.StringArray(r.Options),
		QuestionCorrectAnswer: *r.CorrectAnswer,
		QuestionCreatedBy:     createdBy,
	}
}

// ============================
// Update Request DTO (partial)
// ============================

// Semua field pointer: nil = tidak diubah. Presence check eksplisit,
// bukan truthiness — correct_answer: 0 adalah update yang sah.
type UpdateQuestionRequest struct {
	Category      *string   `json:"category"`
	Difficulty    *string   `json:"difficulty"`
	Question      *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *int      `json:"correct_answer"`
}

// Validate hanya memeriksa field yang dikirim.
func (r UpdateQuestionRequest) Validate() error {
	if r.Category != nil && strings.TrimSpace(*r.Category) == "" {
		return errors.New("category tidak boleh kosong")
	}
	if r.Difficulty != nil {
		ok := false
		for _, d := range model.KnownDifficulties {
			if *r.Difficulty == d {
				ok = true
				break
			}
		}
		if !ok {
			return errors.New("difficulty harus salah satu dari Basic, Intermediate, Hard")
		}
	}
	if r.Question != nil && strings.TrimSpace(*r.Question) == "" {
		return errors.New("question tidak boleh kosong")
	}
	if r.Options != nil {
		if len(*r.Options) != 4 {
			return errors.New("options harus tepat 4 entri")
		}
		for i, opt := range *r.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("options[%d] tidak boleh kosong", i)
			}
		}
	}
	if r.CorrectAnswer != nil && (*r.CorrectAnswer < 0 || *r.CorrectAnswer > 3) {
		return errors.New("correct_answer harus di rentang 0..3")
	}
	return nil
}

// ApplyTo menyalin field yang dikirim ke model hasil fetch (read-modify-write).
func (r UpdateQuestionRequest) ApplyTo(m *model.QuestionModel) {
	if r.Category != nil {
		m.QuestionCategory = strings.TrimSpace(*r.Category)
	}
	if r.Difficulty != nil {
		m.QuestionDifficulty = *r.Difficulty
	}
	if r.Question != nil {
		m.QuestionText = strings.TrimSpace(*r.Question)
	}
	if r.Options != nil {
		m.QuestionOptions = pq.StringArray(*r.Options)
	}
	if r.CorrectAnswer != nil {
		m.QuestionCorrectAnswer = *r.CorrectAnswer
	}
}
