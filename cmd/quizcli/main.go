package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"quizku_backend/internals/features/quizzes/session"
)

// quizcli: client terminal untuk mengerjakan quiz lewat API.
// Alurnya mengikuti session.Machine: pilih kategori & tingkat, jawab soal
// satu per satu (A-D), lalu submit hasil di akhir.

var optionLabels = []string{"A", "B", "C", "D"}

func main() {
	_ = godotenv.Load()

	baseURL := os.Getenv("QUIZ_API_BASE")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	ctx := context.Background()
	in := bufio.NewReader(os.Stdin)
	client := newAPIClient(baseURL)

	fmt.Println("=== Quizku CLI ===")
	fmt.Println("Server:", baseURL)
	fmt.Println()

	if err := loginLoop(ctx, in, client); err != nil {
		log.Fatalf("Login gagal: %v", err)
	}

	for {
		if err := runQuiz(ctx, in, client); err != nil {
			fmt.Println("⚠️", err)
		}
		if !askYesNo(in, "Main lagi? (y/n): ") {
			fmt.Println("Sampai jumpa! 👋")
			return
		}
		fmt.Println()
	}
}

func loginLoop(ctx context.Context, in *bufio.Reader, client *apiClient) error {
	for attempt := 0; attempt < 3; attempt++ {
		userName := prompt(in, "Username: ")
		password := prompt(in, "Password: ")
		if err := client.Login(ctx, userName, password); err != nil {
			fmt.Println("⚠️", err)
			continue
		}
		fmt.Printf("Halo, %s!\n\n", userName)
		return nil
	}
	return errors.New("terlalu banyak percobaan")
}

// runQuiz menjalankan satu attempt penuh: satu Machine per quiz.
func runQuiz(ctx context.Context, in *bufio.Reader, client *apiClient) error {
	category, err := pickFrom(ctx, in, "kategori", client.Categories)
	if err != nil {
		return err
	}
	difficulty, err := pickFrom(ctx, in, "tingkat kesulitan", client.Difficulties)
	if err != nil {
		return err
	}

	m := session.New(category, difficulty)
	if err := m.Start(ctx, client); err != nil {
		return err
	}
	if m.Phase() != session.PhaseInProgress {
		return errors.New("tidak ada soal untuk pilihan itu")
	}

	for m.Phase() == session.PhaseInProgress {
		q, ok := m.CurrentQuestion()
		if !ok {
			break
		}
		fmt.Printf("\nSoal %d/%d: %s\n", m.CurrentIndex()+1, m.TotalQuestions(), q.Text)
		for i, opt := range q.Options {
			fmt.Printf("  %s. %s\n", optionLabels[i], opt)
		}

		for {
			answer := strings.ToUpper(prompt(in, "Jawaban (A-D): "))
			idx := indexOfLabel(answer)
			if idx < 0 {
				fmt.Println("Masukkan salah satu dari A, B, C, atau D.")
				continue
			}
			if err := m.Select(idx); err != nil {
				fmt.Println("⚠️", err)
				continue
			}
			break
		}
		if err := m.Next(); err != nil {
			return err
		}
	}

	// submit, dengan retry manual saat gagal (payload tetap tersimpan di mesin)
	for {
		if err := m.Submit(ctx, client); err != nil {
			fmt.Println("⚠️ Gagal mengirim hasil:", err)
			if askYesNo(in, "Coba kirim ulang? (y/n): ") {
				continue
			}
			return errors.New("hasil tidak terkirim")
		}
		break
	}

	if sum, ok := m.Summary(); ok {
		fmt.Printf("\n🎉 Selesai! Skor: %d/%d (%s - %s)\n",
			sum.Score, sum.TotalQuestions, sum.Category, sum.Difficulty)
	}
	return nil
}

// pickFrom menampilkan daftar bernomor dan mengembalikan pilihan user.
func pickFrom(ctx context.Context, in *bufio.Reader, label string, list func(context.Context) ([]string, error)) (string, error) {
	items, err := list(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", fmt.Errorf("tidak ada %s tersedia", label)
	}

	fmt.Printf("Pilih %s:\n", label)
	for i, item := range items {
		fmt.Printf("  %d. %s\n", i+1, item)
	}
	for {
		choice := prompt(in, fmt.Sprintf("Nomor (1-%d): ", len(items)))
		var n int
		if _, err := fmt.Sscanf(choice, "%d", &n); err == nil && n >= 1 && n <= len(items) {
			return items[n-1], nil
		}
		fmt.Println("Pilihan tidak valid.")
	}
}

func prompt(in *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

func askYesNo(in *bufio.Reader, label string) bool {
	answer := strings.ToLower(prompt(in, label))
	return answer == "y" || answer == "yes" || answer == "ya"
}

func indexOfLabel(s string) int {
	for i, l := range optionLabels {
		if s == l {
			return i
		}
	}
	return -1
}
