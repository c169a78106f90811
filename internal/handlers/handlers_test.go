package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/calnote/apiserver/internal/metrics"
	"github.com/calnote/apiserver/internal/security"
	"github.com/calnote/apiserver/internal/services"
	"github.com/calnote/apiserver/internal/store"
	"github.com/calnote/apiserver/types"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// In-memory repositories backing the real service and handler stack, so
// the tests exercise the same wiring the server uses, minus Postgres.

type memUserRepo struct {
	nextID int
	byName map[string]types.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, byName: map[string]types.User{}}
}

func (r *memUserRepo) GetByID(ctx context.Context, id int) (types.User, error) {
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	u, ok := r.byName[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (r *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if _, ok := r.byName[user.Username]; ok {
		return types.User{}, store.ErrDuplicate
	}
	user.ID = r.nextID
	r.nextID++
	r.byName[user.Username] = user
	return user, nil
}

type memNoteRepo struct {
	nextID int
	notes  []types.Note
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{nextID: 1}
}

func (r *memNoteRepo) Create(ctx context.Context, note types.Note) (types.Note, error) {
	note.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, note)
	return note, nil
}

func (r *memNoteRepo) ListByOwner(ctx context.Context, ownerID int) ([]types.Note, error) {
	out := make([]types.Note, 0)
	for _, n := range r.notes {
		if n.OwnerID == ownerID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNoteRepo) UpdateContent(ctx context.Context, ownerID, noteID int, content string) error {
	for i, n := range r.notes {
		if n.ID == noteID && n.OwnerID == ownerID {
			r.notes[i].Content = content
			return nil
		}
	}
	return store.ErrNotFound
}

func (r *memNoteRepo) Delete(ctx context.Context, ownerID, noteID int) error {
	for i, n := range r.notes {
		if n.ID == noteID && n.OwnerID == ownerID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// newTestRouter mirrors the route wiring in internal/server over in-memory
// repositories.
func newTestRouter(t *testing.T, tokenTTL time.Duration) *chi.Mux {
	t.Helper()

	authService := services.NewAuthService(newMemUserRepo(), "test-secret", tokenTTL)
	noteService := services.NewNoteService(newMemNoteRepo(), security.NewContentSanitizer())
	collector := metrics.NewCollector(prometheus.NewRegistry())
	authMiddleware := RequireAuth(authService)

	router := chi.NewRouter()
	router.Get("/healthz", Healthz)
	AuthRouter(router, authService)
	router.Route("/notes", func(r chi.Router) {
		NoteRouter(r, noteService, collector, authMiddleware)
	})
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reqBody = bytes.NewBuffer(encoded)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, rec.Body.String())
	}
	return out
}

func signupAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/signup", "", CredentialsRequest{Username: username, Password: password})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/login", "", CredentialsRequest{Username: username, Password: password})
	if rec.Code != http.StatusOK {
		t.Fatalf("login status %d: %s", rec.Code, rec.Body.String())
	}
	return decodeBody[LoginResponse](t, rec).Token
}
