package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestBaiduSign(t *testing.T) {
	// Known vector from the Fanyi API documentation: appid=2015063000000001,
	// q=apple, salt=1435660288, secret=12345678.
	got := baiduSign("2015063000000001", "apple", "1435660288", "12345678")
	want := "f89f9594663708c1605f3d736d01d2d4"
	if got != want {
		t.Errorf("sign: got %q, want %q", got, want)
	}
}

func TestBaidu_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "hello" || q.Get("from") != "en" || q.Get("to") != "zh" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("sign") != baiduSign(q.Get("appid"), q.Get("q"), q.Get("salt"), "secret") {
			t.Error("request sign does not verify")
		}
		json.NewEncoder(w).Encode(map[string]any{
			"from": "en", "to": "zh",
			"trans_result": []map[string]string{{"src": "hello", "dst": "你好"}},
		})
	}))
	defer srv.Close()

	b := &baiduTranslator{
		appID:    "appid",
		secret:   "secret",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}

	got, err := b.Translate(context.Background(), "hello", "en", "zh")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "你好" {
		t.Errorf("got %q, want 你好", got)
	}
}

func TestBaidu_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{
			"error_code": "54001",
			"error_msg":  "Invalid Sign",
		})
	}))
	defer srv.Close()

	b := &baiduTranslator{
		appID: "appid", secret: "secret", endpoint: srv.URL,
		client: &http.Client{Timeout: 5 * time.Second},
	}

	if _, err := b.Translate(context.Background(), "hello", "en", "zh"); err == nil {
		t.Error("api error must surface as an error")
	}
}

func TestBaidu_MissingCredentials(t *testing.T) {
	b := NewBaidu("", "")
	if _, err := b.Translate(context.Background(), "hello", "en", "zh"); err == nil {
		t.Error("missing credentials must error")
	}
}
