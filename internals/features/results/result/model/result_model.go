package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ResultModel merepresentasikan satu attempt quiz yang selesai.
// Immutable setelah insert: tidak pernah di-update/di-delete lewat alur app.
// Score dan is_correct dihitung client dan disimpan apa adanya.
type ResultModel struct {
	ResultID             uuid.UUID      `gorm:"column:result_id;type:uuid;default:gen_random_uuid();primaryKey" json:"result_id"`
	ResultUserID         uuid.UUID      `gorm:"column:result_user_id;type:uuid;not null;index" json:"result_user_id"`
	ResultCategory       string         `gorm:"column:result_category;type:varchar(100);not null" json:"result_category"`
	ResultDifficulty     string         `gorm:"column:result_difficulty;type:varchar(20);not null" json:"result_difficulty"`
	ResultScore          int            `gorm:"column:result_score;not null" json:"result_score"`
	ResultTotalQuestions int            `gorm:"column:result_total_questions;not null" json:"result_total_questions"`
	ResultAnswers        datatypes.JSON `gorm:"column:result_answers;type:jsonb;not null" json:"result_answers"`
	ResultCompletedAt    time.Time      `gorm:"column:result_completed_at;autoCreateTime" json:"result_completed_at"`
}

// TableName sets the name of the table
func (ResultModel) TableName() string {
	return "quiz_results"
}
