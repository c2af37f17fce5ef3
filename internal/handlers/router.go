package handlers

import "net/http"

// NewRouter wires every handler into a method-pattern mux
func NewRouter(users *UserHandler, lists *ListHandler, quiz *QuizHandler, stats *StatsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	// User routes
	mux.HandleFunc("GET /users", users.ListUsers)
	mux.HandleFunc("PUT /users", users.PutUser)
	mux.HandleFunc("GET /users/{id}", users.GetUser)
	mux.HandleFunc("DELETE /users/{id}", users.DeleteUser)
	mux.HandleFunc("GET /users/{id}/lists", users.ListUserLists)
	mux.HandleFunc("GET /users/{id}/stats", stats.ListUserStats)

	// Spelling list routes
	mux.HandleFunc("GET /lists", lists.ListLists)
	mux.HandleFunc("PUT /lists", lists.PutList)
	mux.HandleFunc("GET /lists/{id}", lists.GetList)
	mux.HandleFunc("DELETE /lists/{id}", lists.DeleteList)
	mux.HandleFunc("GET /lists/{id}/words", lists.ListWords)
	mux.HandleFunc("GET /lists/{id}/stats", stats.ListListStats)
	mux.HandleFunc("POST /lists/{id}/audio", lists.PrepareAudio)

	// Word routes
	mux.HandleFunc("PUT /words", lists.PutWord)
	mux.HandleFunc("GET /words/{id}", lists.GetWord)
	mux.HandleFunc("DELETE /words/{id}", lists.DeleteWord)

	// Difficulty lookup
	mux.HandleFunc("GET /difficulties", lists.ListDifficulties)

	// Quiz session routes
	mux.HandleFunc("POST /quiz/start/{listId}", quiz.StartQuiz)
	mux.HandleFunc("GET /quiz/{id}", quiz.GetQuiz)
	mux.HandleFunc("POST /quiz/{id}/answer", quiz.SubmitAnswer)
	mux.HandleFunc("POST /quiz/{id}/repeat", quiz.RepeatWord)
	mux.HandleFunc("POST /quiz/{id}/abandon", quiz.AbandonQuiz)

	// Stat routes
	mux.HandleFunc("GET /stats/{id}", stats.GetStat)

	return mux
}
