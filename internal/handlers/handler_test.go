package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"spelltest/internal/database"
	"spelltest/internal/models"
	"spelltest/internal/repository"
	"spelltest/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.EnsureSchema(); err != nil {
		t.Fatalf("EnsureSchema() failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	listRepo := repository.NewListRepository(db)
	statRepo := repository.NewStatRepository(db)
	difficultyRepo := repository.NewDifficultyRepository(db)

	listService := service.NewListService(listRepo, userRepo, nil)
	quizService := service.NewQuizService(listRepo, statRepo, nil)
	statsService := service.NewStatsService(statRepo)

	mux := NewRouter(
		NewUserHandler(userRepo, listRepo),
		NewListHandler(listService, listRepo, difficultyRepo),
		NewQuizHandler(quizService, nil, userRepo, listRepo, statRepo, ""),
		NewStatsHandler(statsService),
	)

	server := httptest.NewServer(Logging(mux))
	t.Cleanup(server.Close)

	return server
}

func doJSON(t *testing.T, method, url string, body, out interface{}) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}

	return resp
}

func TestUserCRUDOverHTTP(t *testing.T) {
	server := newTestServer(t)

	var created models.User
	resp := doJSON(t, http.MethodPut, server.URL+"/users",
		models.User{ID: models.NullRowID, FirstName: "Alice", LastName: "Smith"}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("PUT /users status = %d, want 201", resp.StatusCode)
	}

	var fetched models.User
	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/users/%d", server.URL, created.ID), nil, &fetched)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /users/{id} status = %d, want 200", resp.StatusCode)
	}
	if fetched.FirstName != "Alice" {
		t.Errorf("fetched user = %+v", fetched)
	}

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/users/%d", server.URL, created.ID), nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("DELETE /users/{id} status = %d, want 204", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/users/%d", server.URL, created.ID), nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("GET deleted user status = %d, want 404", resp.StatusCode)
	}
}

func TestQuizFlowOverHTTP(t *testing.T) {
	server := newTestServer(t)

	var user models.User
	doJSON(t, http.MethodPut, server.URL+"/users",
		models.User{ID: models.NullRowID, FirstName: "Alice", LastName: "Smith"}, &user)

	var list models.SpellingList
	resp := doJSON(t, http.MethodPut, server.URL+"/lists",
		models.SpellingList{ID: models.NullRowID, UserID: user.ID, Name: "Animals"}, &list)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("PUT /lists status = %d, want 201", resp.StatusCode)
	}

	for _, spelling := range []string{"cat", "dog"} {
		resp := doJSON(t, http.MethodPut, server.URL+"/words",
			models.Word{ID: models.NullRowID, ListID: list.ID, Spelling: spelling}, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("PUT /words status = %d, want 201", resp.StatusCode)
		}
	}

	var snap service.SessionSnapshot
	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/quiz/start/%d", server.URL, list.ID), nil, &snap)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("POST /quiz/start status = %d, want 201", resp.StatusCode)
	}
	if snap.State != "awaiting_answer" {
		t.Fatalf("session state = %q, want awaiting_answer", snap.State)
	}

	// Answer wrong twice; the engine still walks through both words
	var result service.AnswerResult
	for i := 0; i < 2; i++ {
		resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/quiz/%s/answer", server.URL, snap.ID),
			map[string]string{"answer": "xyz"}, &result)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("POST answer status = %d, want 200", resp.StatusCode)
		}
	}
	if !result.Done {
		t.Fatal("session not done after answering every word")
	}

	var summary service.StatSummary
	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/stats/%d", server.URL, result.StatID), nil, &summary)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /stats/{id} status = %d, want 200", resp.StatusCode)
	}
	if summary.NumberIncorrect != 2 || summary.ScorePercent != 0 {
		t.Errorf("summary = %+v, want 2 incorrect and 0%%", summary)
	}

	// A further answer must be rejected, the session is complete
	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/quiz/%s/answer", server.URL, snap.ID),
		map[string]string{"answer": "xyz"}, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("answer after complete status = %d, want 409", resp.StatusCode)
	}
}

func TestStartQuizUnknownList(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPost, server.URL+"/quiz/start/9999", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("POST /quiz/start/9999 status = %d, want 404", resp.StatusCode)
	}
}

func TestPutListValidation(t *testing.T) {
	server := newTestServer(t)

	resp := doJSON(t, http.MethodPut, server.URL+"/lists",
		models.SpellingList{ID: models.NullRowID, UserID: 1, Name: "  "}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("PUT /lists with empty name status = %d, want 400", resp.StatusCode)
	}
}

func TestListDifficulties(t *testing.T) {
	server := newTestServer(t)

	var difficulties []models.Difficulty
	resp := doJSON(t, http.MethodGet, server.URL+"/difficulties", nil, &difficulties)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /difficulties status = %d, want 200", resp.StatusCode)
	}
	if len(difficulties) != 3 {
		t.Errorf("difficulty count = %d, want 3", len(difficulties))
	}
}
