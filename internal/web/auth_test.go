package web

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/baigashl/blog/internal/repo"
	"github.com/baigashl/blog/internal/session"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "second_name", "password_hash", "age"})
}

// flashValue digs the flash cookie out of a recorded response.
func flashValue(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rr.Result().Cookies() {
		if c.Name == "blog_flash" && c.MaxAge >= 0 {
			v, err := url.QueryUnescape(c.Value)
			if err != nil {
				t.Fatalf("unescape flash: %v", err)
			}
			return v
		}
	}
	return ""
}

func registerForm(email, password string) string {
	return url.Values{
		"email":       {email},
		"name":        {"Alice"},
		"second_name": {"Smith"},
		"password":    {password},
		"age":         {"30"},
	}.Encode()
}

func TestRegisterSubmit(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, name, second_name, password_hash, age`).
		WithArgs("alice@example.com").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice@example.com", "Alice", "Smith", sqlmock.AnyArg(), 30).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "second_name", "age"}).
			AddRow(1, "alice@example.com", "Alice", "Smith", 30))

	h := &Handler{Users: repo.NewUserRepo(db)}
	req := requestWithChiURLParams("POST", "/register/", registerForm("alice@example.com", "Passw0rd"), nil)
	rr := httptest.NewRecorder()
	h.RegisterSubmit(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/login/" {
		t.Errorf("location: got %q, want /login/", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// A taken email rejects the registration no matter what the other fields are.
func TestRegisterSubmit_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, email, name, second_name, password_hash, age`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows().AddRow(1, "alice@example.com", "Alice", "Smith", "$2a$10$x", 30))
	// No INSERT is expected.

	h := &Handler{Users: repo.NewUserRepo(db)}
	form := url.Values{
		"email":       {"alice@example.com"},
		"name":        {"Somebody"},
		"second_name": {"Else"},
		"password":    {"Different1"},
		"age":         {"55"},
	}.Encode()
	req := requestWithChiURLParams("POST", "/register/", form, nil)
	rr := httptest.NewRecorder()
	h.RegisterSubmit(rr, req)

	if rr.Code != http.StatusFound {
		t.Errorf("status: got %d, want 302", rr.Code)
	}
	if loc := rr.Header().Get("Location"); loc != "/register/" {
		t.Errorf("location: got %q, want /register/", loc)
	}
	if got := flashValue(t, rr); got != MsgDuplicateEmail {
		t.Errorf("flash: got %q, want %q", got, MsgDuplicateEmail)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRegisterSubmit_WeakPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &Handler{Users: repo.NewUserRepo(db)}
	for _, pw := range []string{"short1A", "nouppercase1", "NOLOWERCASE1", "NoDigitsHere"} {
		mock.ExpectQuery(`SELECT id, email, name, second_name, password_hash, age`).
			WithArgs("alice@example.com").
			WillReturnError(sql.ErrNoRows)

		req := requestWithChiURLParams("POST", "/register/", registerForm("alice@example.com", pw), nil)
		rr := httptest.NewRecorder()
		h.RegisterSubmit(rr, req)

		if rr.Code != http.StatusFound {
			t.Errorf("%q: status: got %d, want 302", pw, rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/register/" {
			t.Errorf("%q: location: got %q, want /register/", pw, loc)
		}
		if got := flashValue(t, rr); got != MsgWeakPassword {
			t.Errorf("%q: flash: got %q, want %q", pw, got, MsgWeakPassword)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestLoginSubmit_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	// Unknown email.
	mock.ExpectQuery(`SELECT id, email, name, second_name, password_hash, age`).
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)
	// Known email, wrong password (a real bcrypt hash of a different password).
	mock.ExpectQuery(`SELECT id, email, name, second_name, password_hash, age`).
		WithArgs("alice@example.com").
		WillReturnRows(userRows().AddRow(1, "alice@example.com", "Alice", "Smith",
			"$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", 30))

	h := &Handler{
		Users:    repo.NewUserRepo(db),
		Sessions: session.NewManager([]byte("test-secret"), time.Hour),
	}
	for _, email := range []string{"nobody@example.com", "alice@example.com"} {
		form := url.Values{"email": {email}, "password": {"WrongPass1"}}.Encode()
		req := requestWithChiURLParams("POST", "/login/", form, nil)
		rr := httptest.NewRecorder()
		h.LoginSubmit(rr, req)

		if rr.Code != http.StatusFound {
			t.Errorf("%s: status: got %d, want 302", email, rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/login/" {
			t.Errorf("%s: location: got %q, want /login/", email, loc)
		}
		if got := flashValue(t, rr); got != MsgInvalidCredentials {
			t.Errorf("%s: flash: got %q, want %q", email, got, MsgInvalidCredentials)
		}
		for _, c := range rr.Result().Cookies() {
			if c.Name == session.CookieName {
				t.Errorf("%s: no session cookie should be issued", email)
			}
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// Logout only clears the cookie, so calling it without a session works too.
func TestLogout_Idempotent(t *testing.T) {
	h := &Handler{Sessions: session.NewManager([]byte("test-secret"), time.Hour)}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/logout/", nil)
		rr := httptest.NewRecorder()
		h.Logout(rr, req)

		if rr.Code != http.StatusFound {
			t.Errorf("status: got %d, want 302", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "/login/" {
			t.Errorf("location: got %q, want /login/", loc)
		}
		cleared := false
		for _, c := range rr.Result().Cookies() {
			if c.Name == session.CookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Error("session cookie should be expired")
		}
	}
}
