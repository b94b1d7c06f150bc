package main

import (
	"log"

	"quizku_backend/internals/configs"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	resultModel "quizku_backend/internals/features/results/result/model"
	userModel "quizku_backend/internals/features/users/user/model"
	"quizku_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()

	log.Println("🛠 Menjalankan AutoMigrate...")
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&questionModel.QuestionModel{},
		&resultModel.ResultModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	seeds.RunAllSeeds(db)

	log.Println("✅ Database seeded successfully!")
	log.Println("   Admin credentials - username: admin, password: admin123")
	log.Println("   User credentials  - username: user, password: user123")
}
