package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
)

// doRequest sends an HTTP request against the scenario's server, attaching
// the bearer token when the scenario has authenticated.
func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.token != "" {
		req.Header.Set("Authorization", "Bearer "+tc.token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	return err
}

// parsedBody decodes the last response body as arbitrary JSON.
func (tc *TestContext) parsedBody() (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(tc.responseBody, &v); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.responseBody)
	}
	return v, nil
}

// lookupField resolves a dot-separated path in the decoded response.
// Numeric path segments index into arrays, so "0.spent" reads the first
// element of a list response.
func lookupField(v interface{}, path string) (interface{}, bool) {
	current := v
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			val, ok := node[part]
			if !ok {
				return nil, false
			}
			current = val
		case []interface{}:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

func iAmARegisteredUser(ctx context.Context) error {
	tc := GetTestContext(ctx)

	body := []byte(`{"username":"tester","email":"tester@example.com","password":"password123"}`)
	if err := tc.doRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}

	v, err := tc.parsedBody()
	if err != nil {
		return err
	}
	token, ok := lookupField(v, "token")
	if !ok {
		return fmt.Errorf("registration response has no token: %s", tc.responseBody)
	}
	tc.token, _ = token.(string)
	return nil
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	return GetTestContext(ctx).doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	// Scenario bodies may carry date placeholders so features stay valid
	// regardless of when they run.
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	content := body.Content
	content = strings.ReplaceAll(content, "{{today}}", now.Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{monthStart}}", monthStart.Format("2006-01-02"))
	content = strings.ReplaceAll(content, "{{monthEnd}}", monthEnd.Format("2006-01-02"))
	return GetTestContext(ctx).doRequest(method, path, []byte(content))
}

func iHaveRecordedATransactionToday(ctx context.Context, amount int, category string) error {
	return recordTransaction(ctx, "expense", amount, category)
}

func iHaveRecordedAnIncomeToday(ctx context.Context, amount int, category string) error {
	return recordTransaction(ctx, "income", amount, category)
}

func recordTransaction(ctx context.Context, txType string, amount int, category string) error {
	tc := GetTestContext(ctx)
	body := []byte(fmt.Sprintf(
		`{"type":%q,"amount":%d,"category":%q,"date":%q}`,
		txType, amount, category, time.Now().UTC().Format("2006-01-02"),
	))
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("seeding transaction failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc := GetTestContext(ctx)
	v, err := tc.parsedBody()
	if err != nil {
		return err
	}
	field, ok := lookupField(v, path)
	if !ok {
		return fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
	}

	actual := fmt.Sprintf("%v", field)
	if actual != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc := GetTestContext(ctx)
	v, err := tc.parsedBody()
	if err != nil {
		return err
	}
	if _, ok := lookupField(v, path); !ok {
		return fmt.Errorf("field %q not found in response: %s", path, tc.responseBody)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, substr string) error {
	tc := GetTestContext(ctx)
	if !strings.Contains(string(tc.responseBody), substr) {
		return fmt.Errorf("expected response to contain %q, got: %s", substr, tc.responseBody)
	}
	return nil
}

func theResponseArrayShouldHaveItems(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	var arr []interface{}
	if err := json.Unmarshal(tc.responseBody, &arr); err != nil {
		return fmt.Errorf("response is not a JSON array: %s", tc.responseBody)
	}
	if len(arr) != expected {
		return fmt.Errorf("expected %d items, got %d (body: %s)", expected, len(arr), tc.responseBody)
	}
	return nil
}

func theResponseContentTypeShouldBe(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	actual := tc.response.Header.Get("Content-Type")
	if !strings.HasPrefix(actual, expected) {
		return fmt.Errorf("expected content type %q, got %q", expected, actual)
	}
	return nil
}
