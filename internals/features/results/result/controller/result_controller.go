package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizku_backend/internals/features/results/result/dto"
	"quizku_backend/internals/features/results/result/model"
	helper "quizku_backend/internals/helpers"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// =======================
// ➕ Submit Result
// =======================
// Satu insert atomik per attempt. Skor dipercaya dari client (session
// machine yang menghitung); tidak ada dedup key, jadi retry setelah
// timeout bisa menghasilkan dua record — perilaku bawaan, bukan bug baru.
func (ctrl *ResultController) SubmitResult(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var body dto.SubmitResultRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	result, err := body.ToModel(userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answers payload")
	}

	if err := ctrl.DB.Create(&result).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save result")
	}

	return helper.JsonCreated(c, "Result submitted", dto.ToResultDTO(result))
}

// =======================
// 📄 My Results
// =======================
func (ctrl *ResultController) GetMyResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var results []model.ResultModel
	if err := ctrl.DB.
		Where("result_user_id = ?", userID).
		Order("result_completed_at DESC").
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve results")
	}

	return helper.JsonList(c, "ok", dto.ToResultDTOs(results))
}

// =======================
// 📄 All Results (admin) — join username pengirim
// =======================
func (ctrl *ResultController) GetAllResults(c *fiber.Ctx) error {
	type resultRow struct {
		model.ResultModel
		UserName string `gorm:"column:user_name"`
	}

	var rows []resultRow
	if err := ctrl.DB.
		Table("quiz_results").
		Select("quiz_results.*, users.user_name").
		Joins("JOIN users ON users.id = quiz_results.result_user_id").
		Order("result_completed_at DESC").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve results")
	}

	out := make([]dto.ResultDTO, 0, len(rows))
	for _, row := range rows {
		item := dto.ToResultDTO(row.ResultModel)
		item.UserName = row.UserName
		out = append(out, item)
	}

	return helper.JsonList(c, "ok", out)
}

// =======================
// 🔍 Get Result by ID (owner atau admin)
// =======================
func (ctrl *ResultController) GetResultByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid result ID")
	}

	requesterID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	requesterRole, err := helper.GetUserRoleFromToken(c)
	if err != nil {
		return err
	}

	var result model.ResultModel
	if err := ctrl.DB.First(&result, "result_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve result")
	}

	if !dto.CanViewResult(result.ResultUserID, requesterID, requesterRole) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to view this result")
	}

	return helper.JsonOK(c, "ok", dto.ToResultDTO(result))
}
