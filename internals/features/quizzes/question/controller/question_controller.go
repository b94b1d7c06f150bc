package controller

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/question/dto"
	"quizku_backend/internals/features/quizzes/question/model"
	helper "quizku_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =======================
// 📄 Get All Questions
// =======================
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	var questions []model.QuestionModel
	if err := ctrl.DB.
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	return helper.JsonList(c, "ok", dto.ToQuestionDTOs(questions))
}

// =======================
// 🔍 Filter Questions
// Query: ?category=&difficulty= (keduanya opsional, match exact)
// =======================
func (ctrl *QuestionController) FilterQuestions(c *fiber.Ctx) error {
	category := strings.TrimSpace(c.Query("category"))
	difficulty := strings.TrimSpace(c.Query("difficulty"))

	q := ctrl.DB.Model(&model.QuestionModel{})
	if category != "" {
		q = q.Where("question_category = ?", category)
	}
	if difficulty != "" {
		q = q.Where("question_difficulty = ?", difficulty)
	}

	var questions []model.QuestionModel
	if err := q.Order("question_created_at ASC").Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	return helper.JsonList(c, "ok", dto.ToQuestionDTOs(questions))
}

// =======================
// 🔍 Get Question by ID
// =======================
func (ctrl *QuestionController) GetQuestionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	return helper.JsonOK(c, "ok", dto.ToQuestionDTO(question))
}

// =======================
// ➕ Create Questions (single atau batch, all-or-nothing)
// Body: satu objek soal ATAU {"questions":[...]}
// =======================
func (ctrl *QuestionController) CreateQuestions(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	items, err := decodeCreateBody(c.Body())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Validasi seluruh batch dulu — satu item invalid menggagalkan semuanya
	// sebelum ada write (pesan menyebut index soal yang melanggar).
	if err := dto.ValidateBatch(items); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	questions := make([]model.QuestionModel, 0, len(items))
	for _, item := range items {
		questions = append(questions, item.ToModel(adminID))
	}

	// Insert dalam satu transaksi: no partial insert
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create questions")
	}

	return helper.JsonCreated(c, "Questions created", dto.ToQuestionDTOs(questions))
}

// decodeCreateBody menerima bentuk batch {"questions":[...]} maupun objek tunggal.
func decodeCreateBody(body []byte) ([]dto.CreateQuestionRequest, error) {
	var batch struct {
		Questions []dto.CreateQuestionRequest `json:"questions"`
	}
	if err := sonic.Unmarshal(body, &batch); err == nil && len(batch.Questions) > 0 {
		return batch.Questions, nil
	}

	var single dto.CreateQuestionRequest
	if err := sonic.Unmarshal(body, &single); err != nil {
		return nil, errors.New("Invalid request body")
	}
	return []dto.CreateQuestionRequest{single}, nil
}

// =======================
// ✏️ Update Question (partial)
// Field yang tidak dikirim tidak diubah; correct_answer=0 ≠ tidak dikirim.
// =======================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// read-modify-write tanpa optimistic lock (traffic admin kecil)
	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	body.ApplyTo(&question)

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	return helper.JsonUpdated(c, "Question updated", dto.ToQuestionDTO(question))
}

// =======================
// 🗑️ Delete Question
// =======================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	res := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c, "Question removed", fiber.Map{
		"question_id": id.String(),
	})
}

// =======================
// 🏷️ Distinct Categories / Difficulties
// =======================
func (ctrl *QuestionController) GetCategories(c *fiber.Ctx) error {
	var categories []string
	if err := ctrl.DB.Model(&model.QuestionModel{}).
		Distinct().
		Order("question_category ASC").
		Pluck("question_category", &categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	return helper.JsonList(c, "ok", categories)
}

func (ctrl *QuestionController) GetDifficulties(c *fiber.Ctx) error {
	var difficulties []string
	if err := ctrl.DB.Model(&model.QuestionModel{}).
		Distinct().
		Order("question_difficulty ASC").
		Pluck("question_difficulty", &difficulties).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve difficulties")
	}

	return helper.JsonList(c, "ok", difficulties)
}
