package seeds

import (
	quizzes "quizku_backend/internals/seeds/quizzes"
	users "quizku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* User (admin + sample user)
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")

	//* Bank soal
	quizzes.SeedQuestionsFromJSON(db, "internals/seeds/quizzes/data_questions.json")
}
