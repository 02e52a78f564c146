// Command smoketest exercises a running API instance end to end. It needs
// the server, the database, and valid Stripe credentials, so it lives
// outside the test suite.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type runner struct {
	baseURL string
	client  *http.Client
	run     int
	passed  int
}

func (r *runner) report(name string, ok bool, details string) {
	r.run++
	status := "FAIL"
	if ok {
		r.passed++
		status = "PASS"
	}
	fmt.Printf("%s  %s", status, name)
	if details != "" {
		fmt.Printf("  (%s)", details)
	}
	fmt.Println()
}

func (r *runner) getJSON(path string, out any) (int, error) {
	resp, err := r.client.Get(r.baseURL + path)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (r *runner) postJSON(path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Post(r.baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (r *runner) checkRoot() {
	var body struct {
		Message string `json:"message"`
	}
	code, err := r.getJSON("/api/", &body)
	if err != nil {
		r.report("api root", false, err.Error())
		return
	}
	r.report("api root", code == http.StatusOK && body.Message != "",
		fmt.Sprintf("status=%d message=%q", code, body.Message))
}

func (r *runner) checkContactSubmit() {
	req := map[string]string{
		"name":    "Test User",
		"email":   "test@example.com",
		"phone":   "+1 555 0100",
		"service": "Web Design & Development",
		"message": "Smoke test contact submission.",
	}
	var body struct {
		Success bool `json:"success"`
	}
	code, err := r.postJSON("/api/contact", req, &body)
	if err != nil {
		r.report("contact submit", false, err.Error())
		return
	}
	r.report("contact submit", code == http.StatusOK && body.Success,
		fmt.Sprintf("status=%d success=%v", code, body.Success))
}

func (r *runner) checkContactList() {
	var forms []map[string]any
	code, err := r.getJSON("/api/contact", &forms)
	if err != nil {
		r.report("contact list", false, err.Error())
		return
	}
	r.report("contact list", code == http.StatusOK,
		fmt.Sprintf("status=%d count=%d", code, len(forms)))
}

// checkSession creates a checkout session and returns its id for the
// status check, or "" on failure.
func (r *runner) checkSession(name string, req map[string]any) string {
	var body struct {
		URL       string `json:"url"`
		SessionID string `json:"session_id"`
	}
	code, err := r.postJSON("/api/checkout/session", req, &body)
	if err != nil {
		r.report(name, false, err.Error())
		return ""
	}
	ok := code == http.StatusOK && body.URL != "" && body.SessionID != ""
	r.report(name, ok, fmt.Sprintf("status=%d session=%s", code, body.SessionID))
	if !ok {
		return ""
	}
	return body.SessionID
}

func (r *runner) checkSessionRejected(name string, req map[string]any) {
	code, err := r.postJSON("/api/checkout/session", req, nil)
	if err != nil {
		r.report(name, false, err.Error())
		return
	}
	r.report(name, code == http.StatusBadRequest, fmt.Sprintf("status=%d want 400", code))
}

func (r *runner) checkStatus(sessionID string) {
	if sessionID == "" {
		r.report("checkout status", false, "no session id")
		return
	}
	var body struct {
		PaymentStatus string `json:"payment_status"`
	}
	code, err := r.getJSON("/api/checkout/status/"+sessionID, &body)
	if err != nil {
		r.report("checkout status", false, err.Error())
		return
	}
	r.report("checkout status", code == http.StatusOK,
		fmt.Sprintf("status=%d payment_status=%s", code, body.PaymentStatus))
}

func (r *runner) checkUnsignedWebhook() {
	resp, err := r.client.Post(r.baseURL+"/api/webhook/stripe", "application/json",
		bytes.NewReader([]byte(`{"type":"checkout.session.completed"}`)))
	if err != nil {
		r.report("unsigned webhook rejected", false, err.Error())
		return
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	r.report("unsigned webhook rejected", resp.StatusCode == http.StatusBadRequest,
		fmt.Sprintf("status=%d want 400", resp.StatusCode))
}

func (r *runner) checkUnknownRoute() {
	code, err := r.getJSON("/api/nonexistent", nil)
	if err != nil {
		r.report("unknown route 404", false, err.Error())
		return
	}
	r.report("unknown route 404", code == http.StatusNotFound,
		fmt.Sprintf("status=%d want 404", code))
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "base URL of the running server")
	flag.Parse()

	r := &runner{
		baseURL: *baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}

	r.checkRoot()
	r.checkContactSubmit()
	r.checkContactList()

	sessionID := r.checkSession("checkout session (bronze)", map[string]any{
		"plan_type": "bronze", "customer_email": "test@example.com",
	})
	r.checkSession("checkout session (silver)", map[string]any{
		"plan_type": "silver", "customer_email": "test@example.com",
	})
	r.checkSession("checkout session (gold)", map[string]any{
		"plan_type": "gold", "customer_email": "test@example.com",
	})
	r.checkSession("checkout session (custom)", map[string]any{
		"plan_type": "custom", "customer_email": "test@example.com", "custom_amount": 500.0,
	})
	r.checkSessionRejected("custom without amount rejected", map[string]any{
		"plan_type": "custom", "customer_email": "test@example.com",
	})
	r.checkSessionRejected("unknown plan rejected", map[string]any{
		"plan_type": "platinum", "customer_email": "test@example.com",
	})

	r.checkStatus(sessionID)
	r.checkUnsignedWebhook()
	r.checkUnknownRoute()

	fmt.Printf("\n%d/%d checks passed\n", r.passed, r.run)
	if r.passed != r.run {
		os.Exit(1)
	}
}
