package quizzes

import (
	"encoding/json"
	"log"
	"os"

	questionModel "quizku_backend/internals/features/quizzes/question/model"
	userModel "quizku_backend/internals/features/users/user/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionSeed struct {
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

func SeedQuestionsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file soal:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []QuestionSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	// Soal seed dimiliki admin pertama
	var admin userModel.UserModel
	if err := db.Where("role = ?", "admin").Order("created_at ASC").First(&admin).Error; err != nil {
		log.Fatalf("❌ Admin belum ada — jalankan seed user dulu: %v", err)
	}

	for _, data := range inputs {
		var count int64
		db.Model(&questionModel.QuestionModel{}).
			Where("question_text = ?", data.Question).
			Count(&count)
		if count > 0 {
			log.Printf("ℹ️ Soal '%.40s...' sudah ada, dilewati.", data.Question)
			continue
		}

		q := questionModel.QuestionModel{
			QuestionCategory:      data.Category,
			QuestionDifficulty:    data.Difficulty,
			QuestionText:          data.Question,
			QuestionOptions:       pq.StringArray(data.Options),
			QuestionCorrectAnswer: data.CorrectAnswer,
			QuestionCreatedBy:     admin.ID,
		}

		if err := db.Create(&q).Error; err != nil {
			log.Printf("❌ Gagal insert soal '%.40s...': %v", data.Question, err)
			continue
		}
	}

	log.Println("✅ Seed bank soal selesai.")
}
