package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(srv *httptest.Server) PaystackClient {
	return PaystackClient{
		SecretKey: "sk_test_x",
		BaseURL:   srv.URL,
		HTTP:      &http.Client{Timeout: 2 * time.Second},
	}
}

// TestInitializePayment_ReturnsAuthorizationURL covers the happy path.
func TestInitializePayment_ReturnsAuthorizationURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/initialize" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_test_x" {
			t.Errorf("missing bearer header, got %q", got)
		}
		w.Write([]byte(`{"status":true,"message":"ok","data":{"authorization_url":"https://checkout.paystack.com/abc","access_code":"abc","reference":"CONF-REG123"}}`))
	}))
	defer srv.Close()

	p := testClient(srv)
	res, err := p.InitializePayment("a@example.com", 500000, "CONF-REG123", "https://site/payment/success")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AuthorizationURL != "https://checkout.paystack.com/abc" {
		t.Errorf("bad authorization url: %q", res.AuthorizationURL)
	}
}

// TestInitializePayment_ProviderError covers a declined initialize call.
func TestInitializePayment_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"status":false,"message":"Invalid key"}`))
	}))
	defer srv.Close()

	p := testClient(srv)
	if _, err := p.InitializePayment("a@example.com", 1000, "X", ""); err == nil {
		t.Fatal("expected error for provider failure")
	}
}

// TestVerifyPayment_Success covers a settled charge.
func TestVerifyPayment_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction/verify/BOOK-BP1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"success","reference":"BOOK-BP1","amount":150000}}`))
	}))
	defer srv.Close()

	p := testClient(srv)
	res, err := p.VerifyPayment("BOOK-BP1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success() {
		t.Errorf("expected settled charge, got status %q", res.Status)
	}
}

// TestVerifyPayment_Abandoned covers a charge that never settled.
func TestVerifyPayment_Abandoned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":true,"message":"ok","data":{"status":"abandoned","reference":"X","amount":0}}`))
	}))
	defer srv.Close()

	p := testClient(srv)
	res, err := p.VerifyPayment("X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success() {
		t.Error("abandoned charge must not report success")
	}
}
