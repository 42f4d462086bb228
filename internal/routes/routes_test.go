package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/izlekapp/izlek_backend_v1/internal/auth"
	"github.com/izlekapp/izlek_backend_v1/internal/config"
	"github.com/izlekapp/izlek_backend_v1/internal/models"
	"github.com/izlekapp/izlek_backend_v1/internal/store"
)

func newTestRouter() (*gin.Engine, *store.Memory) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mem := store.NewMemory()
	Register(r, mem, &config.Config{})
	return r, mem
}

func perform(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestLiveness(t *testing.T) {
	r, _ := newTestRouter()

	w := perform(r, "GET", "/api/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body map[string]string
	decode(t, w, &body)
	if body["message"] != "İzlek API" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestProfileEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	// blank name travels back as an error payload, not a 4xx
	w := perform(r, "POST", "/api/profiles", `{"name": "  "}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var errBody map[string]string
	decode(t, w, &errBody)
	if errBody["error"] == "" {
		t.Fatalf("expected error payload, got %q", w.Body.String())
	}

	w = perform(r, "POST", "/api/profiles", `{"name": "Ada", "firebase_uid": "fb-1", "extra_field": 42}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var created models.Profile
	decode(t, w, &created)
	if created.ID == "" || created.Name != "Ada" {
		t.Fatalf("unexpected profile: %+v", created)
	}

	w = perform(r, "GET", "/api/profiles/"+created.ID, "", nil)
	var fetched models.Profile
	decode(t, w, &fetched)
	if fetched.ID != created.ID || !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("round trip mismatch: %+v vs %+v", fetched, created)
	}

	w = perform(r, "GET", "/api/profiles/by-firebase-uid/fb-1", "", nil)
	var byUID models.Profile
	decode(t, w, &byUID)
	if byUID.ID != created.ID {
		t.Errorf("lookup by firebase uid returned %+v", byUID)
	}

	// unknown ids read back as null, not 404
	w = perform(r, "GET", "/api/profiles/ghost", "", nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != "null" {
		t.Errorf("missing profile: status=%d body=%q", w.Code, w.Body.String())
	}
}

func TestRoomFlow(t *testing.T) {
	r, _ := newTestRouter()

	w := perform(r, "POST", "/api/rooms", `{"name": "Study", "owner_name": "Ada"}`, nil)
	var room models.Room
	decode(t, w, &room)
	if len(room.Participants) != 1 || room.Code == "" {
		t.Fatalf("unexpected room: %+v", room)
	}

	w = perform(r, "POST", "/api/rooms/join", `{"room_code": "`+strings.ToLower(room.Code)+`", "user_name": "Eva"}`, nil)
	var joined models.Room
	decode(t, w, &joined)
	if len(joined.Participants) != 2 {
		t.Fatalf("join did not append: %+v", joined.Participants)
	}

	w = perform(r, "POST", "/api/rooms/join", `{"room_code": "ZZZZZZ", "user_name": "Eva"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var errBody map[string]string
	decode(t, w, &errBody)
	if errBody["error"] != "Oda bulunamadı" {
		t.Errorf("unknown code error = %q", errBody["error"])
	}

	w = perform(r, "PUT", "/api/rooms/"+room.ID+"/timer",
		`{"is_running": true, "duration_minutes": 50, "remaining_seconds": 2700}`, nil)
	var timerResp map[string]bool
	decode(t, w, &timerResp)
	if !timerResp["success"] {
		t.Fatalf("timer update: %q", w.Body.String())
	}

	w = perform(r, "GET", "/api/rooms/code/"+strings.ToLower(room.Code), "", nil)
	var byCode models.Room
	decode(t, w, &byCode)
	if byCode.ID != room.ID || !byCode.TimerState.IsRunning {
		t.Errorf("room by code: %+v", byCode)
	}
}

func TestMessageEndpoints(t *testing.T) {
	r, mem := newTestRouter()

	w := perform(r, "POST", "/api/messages", `{"room_id": "r1", "user_id": "u1", "user_name": "Ada", "content": " "}`, nil)
	var errBody map[string]string
	decode(t, w, &errBody)
	if errBody["error"] != "Mesaj boş olamaz" {
		t.Fatalf("blank content error = %q", errBody["error"])
	}
	if mem.Count(store.Messages) != 0 {
		t.Error("rejected message was persisted")
	}

	perform(r, "POST", "/api/messages", `{"room_id": "r1", "user_id": "u1", "user_name": "Ada", "content": "selam"}`, nil)
	perform(r, "POST", "/api/messages", `{"room_id": "r1", "user_id": "u2", "user_name": "Eva", "content": "merhaba"}`, nil)

	w = perform(r, "GET", "/api/messages/r1", "", nil)
	var msgs []models.Message
	decode(t, w, &msgs)
	if len(msgs) != 2 || msgs[0].Content != "selam" {
		t.Errorf("unexpected message list: %+v", msgs)
	}
}

func TestExamEndpointsRequireIdentity(t *testing.T) {
	r, mem := newTestRouter()

	w := perform(r, "POST", "/api/exams", `{"exam_type": "TYT", "date": "2026-08-15", "net_score": 90}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status = %d", w.Code)
	}

	hdr := map[string]string{auth.UIDHeader: "fb-1"}

	w = perform(r, "POST", "/api/exams", `{"exam_type": "FOO", "date": "2026-08-15", "net_score": 90}`, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("invalid type: status = %d", w.Code)
	}
	var errBody map[string]string
	decode(t, w, &errBody)
	if errBody["error"] != "Geçersiz sınav türü (TYT/AYT olmalı)" {
		t.Errorf("invalid type error = %q", errBody["error"])
	}
	if mem.Count(store.ExamResults) != 0 {
		t.Error("rejected result was persisted")
	}

	w = perform(r, "POST", "/api/exams", `{"exam_type": "TYT", "date": "2026-08-15", "net_score": 90.25}`, hdr)
	var created models.ExamResult
	decode(t, w, &created)
	if created.FirebaseUID != "fb-1" || created.NetScore != 90.25 {
		t.Fatalf("unexpected result: %+v", created)
	}

	// a different caller sees nothing
	w = perform(r, "GET", "/api/exams", "", map[string]string{auth.UIDHeader: "fb-2"})
	var other []models.ExamResult
	decode(t, w, &other)
	if len(other) != 0 {
		t.Errorf("foreign results leaked: %+v", other)
	}

	w = perform(r, "GET", "/api/exams", "", hdr)
	var mine []models.ExamResult
	decode(t, w, &mine)
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Errorf("unexpected list: %+v", mine)
	}
}

func TestProgramEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := perform(r, "POST", "/api/programs", `{"profile_id": "p1", "exam_goal": "TYT", "daily_hours": "2-4", "study_days": 3}`, nil)
	var program models.Program
	decode(t, w, &program)
	if len(program.Tasks) != 6 {
		t.Fatalf("expected 6 starter tasks, got %d", len(program.Tasks))
	}

	w = perform(r, "GET", "/api/programs/p1", "", nil)
	var programs []models.Program
	decode(t, w, &programs)
	if len(programs) != 1 {
		t.Fatalf("expected 1 program, got %d", len(programs))
	}

	w = perform(r, "PUT", "/api/programs/"+program.ID, `{"exam_goal": "AYT"}`, nil)
	var updated models.Program
	decode(t, w, &updated)
	if updated.ExamGoal != "AYT" || updated.StudyDays != 3 {
		t.Errorf("partial patch failed: %+v", updated)
	}

	w = perform(r, "DELETE", "/api/programs/"+program.ID, "", nil)
	var deleted map[string]bool
	decode(t, w, &deleted)
	if !deleted["deleted"] {
		t.Errorf("delete = %q", w.Body.String())
	}

	w = perform(r, "DELETE", "/api/programs/"+program.ID, "", nil)
	decode(t, w, &deleted)
	if deleted["deleted"] {
		t.Error("second delete reported true")
	}
}

func TestStatusEndpoints(t *testing.T) {
	r, _ := newTestRouter()

	w := perform(r, "POST", "/api/status", `{"client_name": "web"}`, nil)
	var check models.StatusCheck
	decode(t, w, &check)
	if check.ID == "" || check.ClientName != "web" {
		t.Fatalf("unexpected status check: %+v", check)
	}

	w = perform(r, "GET", "/api/status", "", nil)
	var checks []models.StatusCheck
	decode(t, w, &checks)
	if len(checks) != 1 {
		t.Errorf("expected 1 status check, got %d", len(checks))
	}
}
