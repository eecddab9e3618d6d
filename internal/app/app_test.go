package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	createCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/create_car"
	deleteCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/delete_car"
	listCarsHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/list_cars"
	loginHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/login"
	registerHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/register"
	updateCarHandler "github.com/m04kA/SMC-CarService/internal/api/handlers/update_car"
	"github.com/m04kA/SMC-CarService/internal/domain"
	"github.com/m04kA/SMC-CarService/internal/infra/storage"
	authService "github.com/m04kA/SMC-CarService/internal/service/auth"
	carsService "github.com/m04kA/SMC-CarService/internal/service/cars"
	"github.com/m04kA/SMC-CarService/internal/service/cars/models"
	"github.com/m04kA/SMC-CarService/pkg/password"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// memoryStore имитирует хранилище документов с уникальным индексом по username
type memoryStore struct {
	mu     sync.Mutex
	users  []*domain.User
	cars   []*domain.Car
	nextID int
}

func (s *memoryStore) id() string {
	s.nextID++
	return fmt.Sprintf("%024x", s.nextID)
}

func (s *memoryStore) userRepo() *memoryUsers { return &memoryUsers{s} }
func (s *memoryStore) carRepo() *memoryCars { return &memoryCars{s} }

type memoryUsers struct{ s *memoryStore }

func (m *memoryUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.users {
		if existing.Username == u.Username {
			return nil, storage.ErrDuplicate
		}
	}
	u.ID = m.s.id()
	stored := *u
	m.s.users = append(m.s.users, &stored)
	return u, nil
}

func (m *memoryUsers) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if u.Username == username {
			found := *u
			return &found, nil
		}
	}
	return nil, storage.ErrNotFound
}

type memoryCars struct{ s *memoryStore }

func (m *memoryCars) List(context.Context) ([]*domain.Car, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	result := make([]*domain.Car, 0, len(m.s.cars))
	for _, c := range m.s.cars {
		copied := *c
		result = append(result, &copied)
	}
	return result, nil
}

func (m *memoryCars) Create(_ context.Context, c *domain.Car) (*domain.Car, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	c.ID = m.s.id()
	stored := *c
	m.s.cars = append(m.s.cars, &stored)
	return c, nil
}

func (m *memoryCars) Update(_ context.Context, id string, c *domain.Car) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, existing := range m.s.cars {
		if existing.ID == id {
			existing.Brand, existing.Name, existing.Year, existing.Price = c.Brand, c.Name, c.Year, c.Price
		}
	}
	return nil
}

func (m *memoryCars) Delete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, existing := range m.s.cars {
		if existing.ID == id {
			m.s.cars = append(m.s.cars[:i], m.s.cars[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestRouter(t *testing.T, store *memoryStore) http.Handler {
	t.Helper()

	hasher, err := password.NewHasher(bcrypt.MinCost)
	require.NoError(t, err)

	auth := authService.NewService(store.userRepo(), hasher, nil, nopLogger{})
	cars := carsService.NewService(store.carRepo(), nopLogger{})

	return NewRouter(Handlers{
		Register:  registerHandler.NewHandler(auth, nopLogger{}).Handle,
		Login:     loginHandler.NewHandler(auth, nopLogger{}).Handle,
		ListCars:  listCarsHandler.NewHandler(cars, nopLogger{}).Handle,
		CreateCar: createCarHandler.NewHandler(cars, nopLogger{}).Handle,
		UpdateCar: updateCarHandler.NewHandler(cars, nopLogger{}).Handle,
		DeleteCar: deleteCarHandler.NewHandler(cars, nopLogger{}).Handle,
	}, RouterOptions{AccessLog: nopLogger{}})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAPI_RegisterAndLogin(t *testing.T) {
	router := newTestRouter(t, &memoryStore{})
	creds := `{"username":"testuser","password":"password"}`

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/register", creds).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/login", creds).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, router, http.MethodPost, "/login", `{"username":"testuser","password":"wrongpassword"}`).Code)
	assert.Equal(t, http.StatusUnauthorized,
		do(t, router, http.MethodPost, "/login", `{"username":"nobody","password":"password"}`).Code)
	assert.Equal(t, http.StatusConflict, do(t, router, http.MethodPost, "/register", creds).Code)
}

func TestAPI_RegisterLongPassword(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(t, store)
	body := `{"username":"u","password":"` + strings.Repeat("p", 80) + `"}`

	rec := do(t, router, http.MethodPost, "/register", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.users)
	assert.Equal(t, http.StatusUnauthorized, do(t, router, http.MethodPost, "/login", body).Code)
}

func TestAPI_FractionalYearRoundTrip(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(t, store)

	rec := do(t, router, http.MethodPost, "/cars", `{"brand":"BMW","name":"X5","year":2020.5,"price":50000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.cars, 1)
	assert.Equal(t, 2020.5, store.cars[0].Year)

	rec = do(t, router, http.MethodGet, "/cars", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var cars []models.CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	require.Len(t, cars, 1)
	assert.Equal(t, 2020.5, cars[0].Year)

	rec = do(t, router, http.MethodPut, "/cars/"+cars[0].ID, `{"brand":"BMW","name":"X5","year":1999.25,"price":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1999.25, store.cars[0].Year)
}

func TestAPI_CarLifecycle(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(t, store)

	rec := do(t, router, http.MethodPost, "/cars", `{"brand":"BMW","name":"X5","year":2020,"price":50000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	require.Len(t, store.cars, 1)
	assert.Equal(t, domain.Car{ID: created.ID, Brand: "BMW", Name: "X5", Year: 2020, Price: 50000}, *store.cars[0])

	rec = do(t, router, http.MethodPut, "/cars/"+created.ID, `{"brand":"Audi","name":"Q7","year":2021,"price":60000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Audi", store.cars[0].Brand)

	rec = do(t, router, http.MethodDelete, "/cars/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.cars)
}

func TestAPI_ListSortedByBrand(t *testing.T) {
	router := newTestRouter(t, &memoryStore{})

	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/cars", `{"brand":"Z"}`).Code)
	require.Equal(t, http.StatusOK, do(t, router, http.MethodPost, "/cars", `{"brand":"A"}`).Code)

	rec := do(t, router, http.MethodGet, "/cars", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cars []models.CarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cars))
	require.Len(t, cars, 2)
	assert.Equal(t, "A", cars[0].Brand)
	assert.Equal(t, "Z", cars[1].Brand)
}

func TestAPI_MissingCarsAreNoops(t *testing.T) {
	store := &memoryStore{}
	router := newTestRouter(t, store)
	missing := "64b7f0c2a1b2c3d4e5f60718"

	assert.Equal(t, http.StatusOK, do(t, router, http.MethodPut, "/cars/"+missing, `{"brand":"BMW"}`).Code)
	assert.Equal(t, http.StatusOK, do(t, router, http.MethodDelete, "/cars/"+missing, "").Code)
	assert.Empty(t, store.cars)
}

func TestAPI_HealthAndUnknownRoute(t *testing.T) {
	router := newTestRouter(t, &memoryStore{})

	rec := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	assert.Equal(t, http.StatusMethodNotAllowed, do(t, router, http.MethodPatch, "/cars", "").Code)
}

type recordingCloser struct {
	closed bool
	err    error
}

func (c *recordingCloser) Close(context.Context) error {
	c.closed = true
	return c.err
}

func TestServer_StartStop(t *testing.T) {
	closer := &recordingCloser{}
	srv := NewServer("127.0.0.1:0", newTestRouter(t, &memoryStore{}), Timeouts{Read: time.Second}, nopLogger{}, closer)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start(context.Background()) }()

	select {
	case <-srv.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + srv.Addr() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	assert.NoError(t, <-errCh)
	assert.True(t, closer.closed)
	assert.ErrorIs(t, srv.Start(context.Background()), ErrAlreadyStarted)
}

func TestServer_StopReportsCloserError(t *testing.T) {
	closer := &recordingCloser{err: fmt.Errorf("disconnect failed")}
	srv := NewServer("127.0.0.1:0", http.NotFoundHandler(), Timeouts{}, nopLogger{}, closer)

	err := srv.Stop(context.Background())

	assert.Error(t, err)
	assert.True(t, closer.closed)
}

func TestServer_StopAfterFailedStartClosesResources(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	closer := &recordingCloser{}
	srv := NewServer(busy.Addr().String(), http.NotFoundHandler(), Timeouts{}, nopLogger{}, closer)

	require.Error(t, srv.Start(context.Background()))

	assert.NoError(t, srv.Stop(context.Background()))
	assert.True(t, closer.closed)
}
