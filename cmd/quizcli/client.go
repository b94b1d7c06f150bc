package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bytedance/sonic"

	"quizku_backend/internals/features/quizzes/session"
)

// envelope adalah bentuk respons standar API: {success, message, data}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// apiClient membungkus akses HTTP ke backend dan memegang token setelah login.
// Mengimplementasikan session.QuestionFetcher dan session.ResultSubmitter.
type apiClient struct {
	baseURL string
	token   string
	http    *http.Client
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *apiClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := sonic.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("respons tidak terbaca (status %d)", resp.StatusCode)
	}
	if resp.StatusCode >= 400 || !env.Success {
		if env.Message != "" {
			return fmt.Errorf("%s (status %d)", env.Message, resp.StatusCode)
		}
		return fmt.Errorf("permintaan gagal (status %d)", resp.StatusCode)
	}
	if out != nil && len(env.Data) > 0 {
		return sonic.Unmarshal(env.Data, out)
	}
	return nil
}

// Login menukar kredensial dengan access token.
func (c *apiClient) Login(ctx context.Context, userName, password string) error {
	var data struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"user_name": userName,
		"password":  password,
	}, &data)
	if err != nil {
		return err
	}
	c.token = data.Token
	return nil
}

func (c *apiClient) Categories(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/quizzes/categories", nil, &out)
	return out, err
}

func (c *apiClient) Difficulties(ctx context.Context) ([]string, error) {
	var out []string
	err := c.do(ctx, http.MethodGet, "/api/quizzes/difficulties", nil, &out)
	return out, err
}

// questionPayload mengikuti bentuk QuestionDTO dari API.
type questionPayload struct {
	ID            string   `json:"id"`
	Category      string   `json:"category"`
	Difficulty    string   `json:"difficulty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

func (c *apiClient) FetchQuestions(ctx context.Context, category, difficulty string) ([]session.Question, error) {
	q := url.Values{}
	q.Set("category", category)
	q.Set("difficulty", difficulty)

	var payload []questionPayload
	if err := c.do(ctx, http.MethodGet, "/api/quizzes/filter?"+q.Encode(), nil, &payload); err != nil {
		return nil, err
	}

	out := make([]session.Question, 0, len(payload))
	for _, p := range payload {
		out = append(out, session.Question{
			ID:            p.ID,
			Category:      p.Category,
			Difficulty:    p.Difficulty,
			Text:          p.Question,
			Options:       p.Options,
			CorrectAnswer: p.CorrectAnswer,
		})
	}
	return out, nil
}

func (c *apiClient) SubmitResult(ctx context.Context, sub session.Submission) error {
	body := map[string]any{
		"category":        sub.Category,
		"difficulty":      sub.Difficulty,
		"score":           sub.Score,
		"total_questions": sub.TotalQuestions,
		"answers":         sub.Answers,
	}
	return c.do(ctx, http.MethodPost, "/api/results", body, nil)
}
