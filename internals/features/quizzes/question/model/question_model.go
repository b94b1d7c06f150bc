package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Difficulty yang dikenal bank soal. Category sengaja string bebas:
// admin boleh menambah kategori baru dari UI, jadi TIDAK di-enum di storage.
const (
	DifficultyBasic        = "Basic"
	DifficultyIntermediate = "Intermediate"
	DifficultyHard         = "Hard"
)

var KnownDifficulties = []string{DifficultyBasic, DifficultyIntermediate, DifficultyHard}

// QuestionModel merepresentasikan satu soal pilihan ganda di bank soal.
// Invariant (dijaga saat tulis, tidak dicek saat baca):
// options tepat 4 entri non-kosong, correct_answer di 0..3.
type QuestionModel struct {
	QuestionID            uuid.UUID      `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionCategory      string         `gorm:"column:question_category;type:varchar(100);not null" json:"question_category"`
	QuestionDifficulty    string         `gorm:"column:question_difficulty;type:varchar(20);not null" json:"question_difficulty"`
	QuestionText          string         `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionOptions       pq.StringArray `gorm:"column:question_options;type:text[];not null" json:"question_options"`
	QuestionCorrectAnswer int            `gorm:"column:question_correct_answer;not null" json:"question_correct_answer"`
	QuestionCreatedBy     uuid.UUID      `gorm:"column:question_created_by;type:uuid" json:"question_created_by"`
	QuestionCreatedAt     time.Time      `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt     time.Time      `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

// TableName sets the name of the table
func (QuestionModel) TableName() string {
	return "quiz_questions"
}
