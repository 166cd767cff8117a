package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ideal-institute/bookstall/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{BaseURL: srv.URL + "/api/", AssetBaseURL: "http://assets.test/store/"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestListBooks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/list_books.php", r.URL.Path)
		_, err := uuid.Parse(r.Header.Get(RequestIDHeader))
		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "bookstall/"))
		_, _ = io.WriteString(w, `[{"id":"1","book_name":"DBMS","book_year":2,"price":"150","seller_roll_no":"22A91A0501"}]`)
	})

	books, err := c.ListBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "DBMS", books[0].Title)
	assert.True(t, books[0].BookYear.IsNumber(2))
}

func TestListBooksKeepsRecordsWithMismatchedTypes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"book_name":"Good","regulation":"R20","price":100,"seller_roll_no":"22A91A0501"},`+
			`{"id":2,"book_name":"Odd","regulation":23,"book_condition":1,"price":"80","seller_roll_no":"22A91A0402"}]`)
	})

	books, err := c.ListBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, "Odd", books[1].Title)
	assert.Empty(t, books[1].Regulation)
	assert.Empty(t, books[1].Condition)
	assert.Equal(t, "22A91A0402", books[1].SellerRollNo)
	got := domain.FilterListings(books, domain.Criteria{Regulation: "R20"})
	require.Len(t, got, 1)
	assert.Equal(t, "Good", got[0].Title)
}

func TestListBooksEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `null`)
	})

	books, err := c.ListBooks(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListBooks(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "boom", statusErr.Body)
	assert.Contains(t, err.Error(), "Status: 500")
}

func TestMalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>`)
	})

	_, err := c.ListBooks(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := New(Options{BaseURL: srv.URL})

	_, err := c.ListBooks(context.Background())
	require.Error(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c.timeout = 20 * time.Millisecond

	err := c.Ping(context.Background())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGetUserProfile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/get_user_profile.php", r.URL.Path)
		switch r.URL.Query().Get("roll_number") {
		case "22A91A0501":
			writeJSON(w, map[string]any{"success": true, "user": map[string]any{"roll_number": "22A91A0501", "name": "Asha"}})
		default:
			writeJSON(w, map[string]any{"success": false})
		}
	})

	u, err := c.GetUserProfile(context.Background(), "22A91A0501")
	require.NoError(t, err)
	assert.Equal(t, "Asha", u.Name)

	_, err = c.GetUserProfile(context.Background(), "nobody")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Empty(t, apiErr.Message)
	assert.Equal(t, "Unknown error", apiErr.Error())
}

func TestGetUserBooks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "22A91A0501", r.URL.Query().Get("roll_number"))
		writeJSON(w, map[string]any{"success": true})
	})

	books, err := c.GetUserBooks(context.Background(), "22A91A0501")
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestUploadBook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			return
		}
		assert.Equal(t, "22A91A0501", r.FormValue("seller_roll_no"))
		assert.Equal(t, "Compilers", r.FormValue("book_name"))
		assert.Equal(t, "3rd Year", r.FormValue("book_year"))
		assert.Equal(t, "Like New", r.FormValue("condition"))
		assert.Equal(t, "120", r.FormValue("price"))
		files := r.MultipartForm.File["photos[]"]
		if !assert.Len(t, files, 2) {
			return
		}
		assert.Equal(t, "front.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))
		writeJSON(w, map[string]any{"success": true, "debug": map[string]any{"stored": "uploads/1.png"}})
	})

	res, err := c.UploadBook(context.Background(), domain.NewListing{
		SellerRollNo: "22A91A0501",
		Title:        "Compilers",
		BookYear:     "3rd Year",
		Subject:      "CD",
		Category:     "CSE",
		Regulation:   "R20",
		Condition:    "Like New",
		Price:        "120",
		Photos:       []domain.Photo{{Filename: "front.png", Data: pngHeader}, {Filename: "back.png", Data: pngHeader}},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"stored":"uploads/1.png"}`, res.Debug)
}

func TestUploadBookFailure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": false, "message": "Invalid price"})
	})

	_, err := c.UploadBook(context.Background(), domain.NewListing{})
	assert.Equal(t, "Invalid price", MessageOf(err, "Unknown error"))
}

func TestDeleteBook(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"book_id":42,"seller_roll_no":"22A91A0501"}`, string(body))
		writeJSON(w, map[string]any{"success": true, "debug": "image removed"})
	})

	res, err := c.DeleteBook(context.Background(), domain.NumberValue(42), "22A91A0501")
	require.NoError(t, err)
	assert.Equal(t, "image removed", res.Debug)
}

func TestLoginAndRegister(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload)) {
			return
		}
		switch r.URL.Path {
		case "/api/login.php":
			if payload["password"] != "secret1" {
				writeJSON(w, map[string]any{"success": false, "message": "Invalid credentials"})
				return
			}
			writeJSON(w, map[string]any{"success": true, "user": map[string]any{"roll_number": payload["roll_number"], "name": "Asha"}})
		case "/api/register.php":
			assert.Equal(t, "Ravi", payload["name"])
			writeJSON(w, map[string]any{"success": true})
		}
	})

	u, err := c.Login(context.Background(), "22A91A0501", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.User{RollNumber: "22A91A0501", Name: "Asha"}, u)

	_, err = c.Login(context.Background(), "22A91A0501", "wrong")
	assert.Equal(t, "Invalid credentials", MessageOf(err, "Login failed"))

	u, err = c.Register(context.Background(), "22A91A0502", "Ravi", "secret1")
	require.NoError(t, err)
	assert.Equal(t, domain.User{RollNumber: "22A91A0502", Name: "Ravi"}, u)
}

func TestImageURL(t *testing.T) {
	c := New(Options{AssetBaseURL: "http://localhost/ideal-bookstore/"})

	assert.Equal(t, "http://localhost/ideal-bookstore/uploads/a.jpg", c.ImageURL("uploads/a.jpg"))
	assert.Equal(t, "http://localhost/ideal-bookstore/uploads/a.jpg", c.ImageURL("/uploads/a.jpg"))
	assert.Equal(t, "https://cdn.test/a.jpg", c.ImageURL("https://cdn.test/a.jpg"))
	assert.Equal(t, "", c.ImageURL("  "))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "fallback", MessageOf(errors.New("plain"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(&APIError{}, "fallback"))
	assert.Equal(t, "User not found", MessageOf(&APIError{Message: "User not found"}, "fallback"))
}
