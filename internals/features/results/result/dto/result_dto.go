package dto

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"quizku_backend/internals/features/results/result/model"
)

var validate = validator.New()

// ============================
// Submit Request DTO
// ============================

// AttemptAnswer adalah satu jawaban dalam payload submit. is_correct dan
// score dihitung client (session machine) dan dipercaya apa adanya —
// celah integritas bawaan desain aslinya, sengaja TIDAK diperbaiki diam-diam.
type AttemptAnswer struct {
	QuestionID     string `json:"question_id" validate:"required,uuid4"`
	SelectedAnswer *int   `json:"selected_answer" validate:"required,min=0,max=3"`
	IsCorrect      *bool  `json:"is_correct" validate:"required"`
}

type SubmitResultRequest struct {
	Category       string          `json:"category" validate:"required"`
	Difficulty     string          `json:"difficulty" validate:"required"`
	Score          *int            `json:"score" validate:"required,min=0"`
	TotalQuestions *int            `json:"total_questions" validate:"required,min=1"`
	Answers        []AttemptAnswer `json:"answers" validate:"required,min=1,dive"`
}

// Validate: presence check saja, sesuai kontrak submit.
func (r SubmitResultRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return errors.New("field " + verrs[0].Field() + " tidak valid atau kosong")
		}
		return err
	}
	return nil
}

func (r SubmitResultRequest) ToModel(userID uuid.UUID) (model.ResultModel, error) {
	raw, err := sonic.Marshal(r.Answers)
	if err != nil {
		return model.ResultModel{}, err
	}
	return model.ResultModel{
		ResultUserID:         userID,
		ResultCategory:       r.Category,
		ResultDifficulty:     r.Difficulty,
		ResultScore:          *r.Score,
		ResultTotalQuestions: *r.TotalQuestions,
		ResultAnswers:        datatypes.JSON(raw),
	}, nil
}

// ============================
// Response DTO
// ============================

type ResultDTO struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name,omitempty"` // terisi di listing admin
	Category       string          `json:"category"`
	Difficulty     string          `json:"difficulty"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"total_questions"`
	Answers        []AttemptAnswer `json:"answers"`
	CompletedAt    time.Time       `json:"completed_at"`
}

func ToResultDTO(m model.ResultModel) ResultDTO {
	var answers []AttemptAnswer
	// answers tersimpan sebagai jsonb; kalau korup, biarkan kosong
	_ = sonic.Unmarshal([]byte(m.ResultAnswers), &answers)

	return ResultDTO{
		ID:             m.ResultID.String(),
		UserID:         m.ResultUserID.String(),
		Category:       m.ResultCategory,
		Difficulty:     m.ResultDifficulty,
		Score:          m.ResultScore,
		TotalQuestions: m.ResultTotalQuestions,
		Answers:        answers,
		CompletedAt:    m.ResultCompletedAt,
	}
}

func ToResultDTOs(models []model.ResultModel) []ResultDTO {
	out := make([]ResultDTO, 0, len(models))
	for _, m := range models {
		out = append(out, ToResultDTO(m))
	}
	return out
}

// ============================
// Ownership
// ============================

// CanViewResult: pemilik boleh, admin boleh, selain itu Forbidden.
func CanViewResult(ownerID, requesterID uuid.UUID, requesterRole string) bool {
	return requesterRole == "admin" || ownerID == requesterID
}
