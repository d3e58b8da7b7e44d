package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/studentdesk/internal/client/api"
	"github.com/iudanet/studentdesk/internal/client/auth"
	"github.com/iudanet/studentdesk/internal/client/iocli"
	"github.com/iudanet/studentdesk/internal/client/storage/memory"
	"github.com/iudanet/studentdesk/internal/models"
	pkgapi "github.com/iudanet/studentdesk/pkg/api"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testIO собирает весь вывод в буфер и отдает заранее заданный ввод по очереди
type testIO struct {
	mock    *iocli.IOMock
	out     *bytes.Buffer
	prompts []string
}

func newTestIO(inputs ...string) *testIO {
	tio := &testIO{out: &bytes.Buffer{}}
	var mu sync.Mutex
	next := func(prompt string) (string, error) {
		mu.Lock()
		defer mu.Unlock()
		tio.prompts = append(tio.prompts, prompt)
		tio.out.WriteString(prompt)
		if len(inputs) == 0 {
			return "", io.EOF
		}
		in := inputs[0]
		inputs = inputs[1:]
		return in, nil
	}

	tio.mock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintln(tio.out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintf(tio.out, format, a...)
		},
		WriteFunc: func(p []byte) (int, error) {
			mu.Lock()
			defer mu.Unlock()
			return tio.out.Write(p)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}
	return tio
}

func (t *testIO) Output() string {
	return t.out.String()
}

// fakeBackend минимальный backend учеников в памяти
type fakeBackend struct {
	students     map[string]models.Student
	requests     []string
	lastQuery    map[string]string
	batch        []pkgapi.StudentPayload
	token        string
	order        []string
	mu           sync.Mutex
	nextID       int
	expireTokens bool // все запросы кроме signin/signup получают 401
	failStudents bool // GET /students отвечает 500
}

func newFakeBackend(students ...models.Student) *fakeBackend {
	b := &fakeBackend{
		students:  map[string]models.Student{},
		token:     "T1",
		nextID:    100,
		lastQuery: map[string]string{},
	}
	for _, s := range students {
		b.students[s.ID] = s
		b.order = append(b.order, s.ID)
	}
	return b
}

func (b *fakeBackend) list() []models.Student {
	result := make([]models.Student, 0, len(b.order))
	for _, id := range b.order {
		if s, ok := b.students[id]; ok {
			result = append(result, s)
		}
	}
	return result
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api")
	b.requests = append(b.requests, r.Method+" "+path)
	for key := range r.URL.Query() {
		b.lastQuery[key] = r.URL.Query().Get(key)
	}

	writeJSON := func(status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	switch {
	case r.Method == "POST" && (path == "/signin" || path == "/signup"):
		var req pkgapi.SignUpRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "pw" {
			writeJSON(http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "unauthorized", Message: "Invalid credentials"})
			return
		}
		writeJSON(http.StatusOK, pkgapi.TokenResponse{Data: pkgapi.TokenData{Token: b.token}})
		return
	case b.expireTokens || r.Header.Get("Authorization") != "Bearer "+b.token:
		writeJSON(http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "unauthorized"})
		return
	}

	id := strings.TrimPrefix(path, "/students/")
	switch {
	case r.Method == "GET" && path == "/students":
		if b.failStudents {
			writeJSON(http.StatusInternalServerError, pkgapi.ErrorResponse{Error: "boom"})
			return
		}
		students := b.list()
		if limit := r.URL.Query().Get("limit"); limit != "" {
			var n int
			_, _ = fmt.Sscanf(limit, "%d", &n)
			if n < len(students) {
				students = students[:n]
			}
		}
		writeJSON(http.StatusOK, pkgapi.StudentsResponse{Students: students})
	case r.Method == "GET" && path == "/students/search":
		q := strings.ToLower(r.URL.Query().Get("q"))
		found := []models.Student{}
		for _, s := range b.list() {
			if strings.Contains(strings.ToLower(s.Name), q) {
				found = append(found, s)
			}
		}
		writeJSON(http.StatusOK, pkgapi.StudentsResponse{Students: found})
	case r.Method == "POST" && path == "/students/batch":
		var payloads []pkgapi.StudentPayload
		_ = json.NewDecoder(r.Body).Decode(&payloads)
		b.batch = payloads
		created := make([]models.Student, 0, len(payloads))
		for _, p := range payloads {
			created = append(created, b.create(p))
		}
		writeJSON(http.StatusCreated, created)
	case r.Method == "POST" && path == "/students":
		var p pkgapi.StudentPayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		s := b.create(p)
		writeJSON(http.StatusCreated, pkgapi.MutationResponse{Student: &s})
	case r.Method == "GET":
		s, ok := b.students[id]
		if !ok {
			writeJSON(http.StatusNotFound, pkgapi.ErrorResponse{Error: "not_found", Message: "Student not found"})
			return
		}
		writeJSON(http.StatusOK, pkgapi.StudentResponse{Student: s})
	case r.Method == "PUT":
		s, ok := b.students[id]
		if !ok {
			writeJSON(http.StatusNotFound, pkgapi.ErrorResponse{Message: "Student not found"})
			return
		}
		var p pkgapi.StudentPayload
		_ = json.NewDecoder(r.Body).Decode(&p)
		s.Name, s.Email, s.Age, s.Grade, s.Phone, s.Address = p.Name, p.Email, p.Age, p.Grade, p.Phone, p.Address
		b.students[id] = s
		writeJSON(http.StatusOK, pkgapi.MutationResponse{Student: &s})
	case r.Method == "DELETE":
		if _, ok := b.students[id]; !ok {
			writeJSON(http.StatusNotFound, pkgapi.ErrorResponse{Message: "Student not found"})
			return
		}
		delete(b.students, id)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}

func (b *fakeBackend) create(p pkgapi.StudentPayload) models.Student {
	b.nextID++
	s := models.Student{
		ID: fmt.Sprintf("%d", b.nextID), Name: p.Name, Email: p.Email, Age: p.Age,
		Grade: p.Grade, Phone: p.Phone, Address: p.Address,
	}
	b.students[s.ID] = s
	b.order = append(b.order, s.ID)
	return s
}

func (b *fakeBackend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *fakeBackend) Student(id string) (models.Student, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.students[id]
	return s, ok
}

// testEnv собранный клиент, как в cmd/client
type testEnv struct {
	cli     *Cli
	io      *testIO
	backend *fakeBackend
	auth    *auth.Controller
	session *memory.Session
}

func newTestEnv(t *testing.T, backend *fakeBackend, inputs ...string) *testEnv {
	t.Helper()

	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	session := memory.NewSession()
	client, err := api.NewClient(server.URL+"/api", session, api.WithLogger(discardLogger()))
	require.NoError(t, err)

	controller := auth.NewController(client, session, discardLogger())
	tio := newTestIO(inputs...)
	c := New(tio.mock, controller, client, discardLogger())
	client.OnUnauthorized(c.HandleUnauthorized)

	return &testEnv{cli: c, io: tio, backend: backend, auth: controller, session: session}
}

// loggedIn сохраняет токен и восстанавливает сессию, как при запуске
func (e *testEnv) loggedIn(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.session.SaveToken(ctx, e.backend.token))
	require.NoError(t, e.auth.Start(ctx))
	return e
}

var (
	johnDoe = models.Student{
		ID: "1", Name: "John Doe", Email: "john.doe@email.com", Age: 16,
		Grade: models.Grade10, Phone: "+1234567890", Address: "123 Main St",
	}
	janeSmith = models.Student{
		ID: "2", Name: "Jane Smith", Email: "jane.smith@email.com", Age: 17,
		Grade: models.Grade11, Phone: "+1234567891", Address: "456 Oak Ave",
	}
)
