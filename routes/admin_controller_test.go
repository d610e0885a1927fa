package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/xuri/excelize/v2"

	"github.com/mbolis/intake-form/log"
	"github.com/mbolis/intake-form/model"
)

type tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func login(t *testing.T, h http.Handler, user, pass string) (tokens, int) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.SetBasicAuth(user, pass)
	rec := do(t, h, req)

	var tok tokens
	if rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), &tok); err != nil {
			t.Fatalf("decode tokens: %v", err)
		}
	}
	return tok, rec.Code
}

func authorized(method, target, token string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestLoginRejectsBadPassword(t *testing.T) {
	h := Wire(withArchive(t, newTestApp(t)))

	if _, code := login(t, h, "admin", "wrong"); code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
	rec := do(t, h, httptest.NewRequest(http.MethodPost, "/api/login", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login without basic auth = %d, want 401", rec.Code)
	}
}

func TestAdminNeedsToken(t *testing.T) {
	h := Wire(withArchive(t, newTestApp(t)))

	rec := do(t, h, httptest.NewRequest(http.MethodGet, "/api/admin/submissions", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAdminArchiveFlow(t *testing.T) {
	h := Wire(withArchive(t, newTestApp(t)))

	rec := do(t, h, postForm("/api/submissions?lang=en", url.Values{
		"universityName": {"Future University"},
		"projectGoals":   {"Reduce staff workload", "Provide 24/7 service"},
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit status = %d", rec.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	json.Unmarshal(rec.Body.Bytes(), &created)

	tok, code := login(t, h, "admin", "pa55word")
	if code != http.StatusOK || tok.AccessToken == "" {
		t.Fatalf("login status = %d, tokens = %+v", code, tok)
	}

	rec = do(t, h, authorized(http.MethodGet, "/api/admin/submissions", tok.AccessToken))
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d: %s", rec.Code, rec.Body)
	}
	var list struct {
		Submissions []model.Submission `json:"submissions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Submissions) != 1 || list.Submissions[0].ID != created.ID {
		t.Fatalf("list = %+v, want the created submission", list.Submissions)
	}
	if got := list.Submissions[0].Fields["projectGoals"]; len(got) != 2 || got[0] != "Reduce staff workload" {
		t.Fatalf("archived projectGoals = %v", got)
	}

	rec = do(t, h, authorized(http.MethodGet, "/api/admin/submissions/"+created.ID, tok.AccessToken))
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}

	rec = do(t, h, authorized(http.MethodGet, "/api/admin/submissions.xlsx", tok.AccessToken))
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != xlsxContentType {
		t.Fatalf("export = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("export is not a workbook: %v", err)
	}
	rows, _ := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	f.Close()
	if len(rows) != 2 {
		t.Fatalf("export rows = %d, want header + 1", len(rows))
	}

	rec = do(t, h, authorized(http.MethodDelete, "/api/admin/submissions/"+created.ID, tok.AccessToken))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rec.Code)
	}
	rec = do(t, h, authorized(http.MethodGet, "/api/admin/submissions/"+created.ID, tok.AccessToken))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d, want 404", rec.Code)
	}
}

func TestRefreshTokenWorksOnce(t *testing.T) {
	h := Wire(withArchive(t, newTestApp(t)))

	tok, code := login(t, h, "admin", "pa55word")
	if code != http.StatusOK || tok.RefreshToken == "" {
		t.Fatalf("login status = %d, tokens = %+v", code, tok)
	}

	refresh := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/refresh", nil)
		req.Header.Set("Authorization", "Refresh "+tok.RefreshToken)
		return do(t, h, req).Code
	}
	if got := refresh(); got != http.StatusOK {
		t.Fatalf("first refresh = %d, want 200", got)
	}
	if got := refresh(); got == http.StatusOK {
		t.Fatalf("second refresh with the same token succeeded")
	}
}

type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestExportLogsWriteFailure(t *testing.T) {
	hook := test.NewLocal(log.Logger)
	defer hook.Reset()
	level := log.Logger.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer log.Logger.SetLevel(level)

	a := withArchive(t, newTestApp(t))
	w := brokenWriter{httptest.NewRecorder()}
	ExportSubmissions(a).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/submissions.xlsx", nil))

	var failure *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.DebugLevel && strings.HasPrefix(e.Message, "export.write") {
			failure = e
		}
	}
	if failure == nil {
		t.Fatalf("write failure was not logged")
	}
}
