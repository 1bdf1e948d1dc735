package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casaluna/hotel/api/internal/model"
	"github.com/casaluna/hotel/api/internal/service"
)

// ============================================================================
// Mock Room Repository
// ============================================================================

type mockRoomRepo struct {
	rooms  map[int64]*model.Room
	nextID int64
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[int64]*model.Room), nextID: 1}
}

func (m *mockRoomRepo) List(ctx context.Context, roomNumber *int) ([]*model.Room, error) {
	out := []*model.Room{}
	for _, r := range m.rooms {
		if roomNumber != nil && r.RoomNumber != *roomNumber {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoomRepo) GetByID(ctx context.Context, id int64) (*model.Room, error) {
	return m.rooms[id], nil
}

func (m *mockRoomRepo) Create(ctx context.Context, room *model.Room) (*model.Room, error) {
	room.ID = m.nextID
	m.nextID++
	m.rooms[room.ID] = room
	return room, nil
}

func (m *mockRoomRepo) Update(ctx context.Context, room *model.Room) (*model.Room, error) {
	m.rooms[room.ID] = room
	return room, nil
}

func (m *mockRoomRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := m.rooms[id]; !ok {
		return false, nil
	}
	delete(m.rooms, id)
	return true, nil
}

// ============================================================================
// Test Helpers
// ============================================================================

func setupRoomHandler(t *testing.T) (*RoomHandler, *mockRoomRepo) {
	t.Helper()
	repo := newMockRoomRepo()
	return NewRoomHandler(service.NewRoomService(repo)), repo
}

func seedRoom(repo *mockRoomRepo, number int) *model.Room {
	room, _ := repo.Create(context.Background(), &model.Room{
		RoomNumber:    number,
		RoomType:      model.RoomTypeStandard,
		Description:   "Garden view double",
		PricePerNight: 120,
		Capacity:      2,
		Amenities:     []string{"wifi"},
		IsAvailable:   true,
	})
	return room
}

func getRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()
	var pd model.ProblemDetails
	if err := json.NewDecoder(rec.Body).Decode(&pd); err != nil {
		t.Fatalf("decoding problem details: %v", err)
	}
	return pd
}

// ============================================================================
// List
// ============================================================================

func TestRoomList(t *testing.T) {
	h, repo := setupRoomHandler(t)
	seedRoom(repo, 101)
	seedRoom(repo, 102)

	rec := httptest.NewRecorder()
	h.List(rec, getRequest("/v1/rooms"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp CollectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
}

func TestRoomListFilter(t *testing.T) {
	h, repo := setupRoomHandler(t)
	seedRoom(repo, 101)
	seedRoom(repo, 102)

	rec := httptest.NewRecorder()
	h.List(rec, getRequest("/v1/rooms?room_number=101"))

	var resp CollectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 1 {
		t.Errorf("expected count 1, got %d", resp.Count)
	}
}

func TestRoomListBadFilter(t *testing.T) {
	h, _ := setupRoomHandler(t)

	rec := httptest.NewRecorder()
	h.List(rec, getRequest("/v1/rooms?room_number=abc"))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestRoomListEmpty(t *testing.T) {
	h, _ := setupRoomHandler(t)

	rec := httptest.NewRecorder()
	h.List(rec, getRequest("/v1/rooms"))

	var resp CollectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("expected count 0, got %d", resp.Count)
	}
	if resp.Data == nil {
		t.Error("expected empty data array, got null")
	}
}

// ============================================================================
// Get
// ============================================================================

func TestRoomGet(t *testing.T) {
	h, repo := setupRoomHandler(t)
	room := seedRoom(repo, 101)

	req := getRequest("/v1/rooms/1")
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data model.Room `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Data.RoomNumber != room.RoomNumber {
		t.Errorf("expected room %d, got %d", room.RoomNumber, resp.Data.RoomNumber)
	}
}

func TestRoomGetNotFound(t *testing.T) {
	h, _ := setupRoomHandler(t)

	req := getRequest("/v1/rooms/99")
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	pd := decodeProblem(t, rec)
	if pd.Status != http.StatusNotFound {
		t.Errorf("problem status mismatch: %d", pd.Status)
	}
	if pd.Title != "Not Found" {
		t.Errorf("unexpected problem title: %s", pd.Title)
	}
}

func TestRoomGetBadID(t *testing.T) {
	h, _ := setupRoomHandler(t)

	req := getRequest("/v1/rooms/banana")
	req.SetPathValue("id", "banana")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// ============================================================================
// Create
// ============================================================================

func TestRoomCreate(t *testing.T) {
	h, _ := setupRoomHandler(t)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/v1/rooms", map[string]any{
		"room_number":     201,
		"room_type":       "suite",
		"description":     "Sea view suite",
		"price_per_night": 250.0,
		"capacity":        4,
	}))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRoomCreateValidationFailure(t *testing.T) {
	h, _ := setupRoomHandler(t)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/v1/rooms", map[string]any{
		"room_number":     201,
		"room_type":       "penthouse", // not a known type
		"description":     "x",
		"price_per_night": 250.0,
		"capacity":        4,
	}))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	pd := decodeProblem(t, rec)
	if len(pd.Errors) == 0 {
		t.Error("expected field-level errors")
	}
}

func TestRoomCreateDuplicateNumber(t *testing.T) {
	h, repo := setupRoomHandler(t)
	seedRoom(repo, 101)

	rec := httptest.NewRecorder()
	h.Create(rec, jsonRequest(http.MethodPost, "/v1/rooms", map[string]any{
		"room_number":     101,
		"room_type":       "standard",
		"description":     "Duplicate",
		"price_per_night": 100.0,
		"capacity":        2,
	}))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestRoomCreateMalformedBody(t *testing.T) {
	h, _ := setupRoomHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/rooms", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// ============================================================================
// Delete
// ============================================================================

func TestRoomDelete(t *testing.T) {
	h, repo := setupRoomHandler(t)
	seedRoom(repo, 101)

	req := httptest.NewRequest(http.MethodDelete, "/v1/rooms/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(repo.rooms) != 0 {
		t.Error("room was not deleted")
	}
}

func TestRoomDeleteNotFound(t *testing.T) {
	h, _ := setupRoomHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/v1/rooms/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
