// Command report_smoke walks the report catalogue of a running API, downloads every report in
// every format for one month and checks status, content type and attachment name. With
// -legacy-base it also compares the JSON report data against another deployment.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type catalogueEntry struct {
	ID      string   `json:"id"`
	Formats []string `json:"formats"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

type check struct {
	Report   string
	Format   string
	Status   int
	Problems []string
	Duration time.Duration
}

var contentTypes = map[string]string{
	"pdf":   "application/pdf",
	"excel": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"csv":   "text/csv",
	"json":  "application/json",
	"print": "text/html",
}

var extensions = map[string]string{
	"pdf":   "pdf",
	"excel": "xlsx",
	"csv":   "csv",
	"json":  "json",
	"print": "html",
}

type client struct {
	http  *http.Client
	base  string
	token string
}

func main() {
	var (
		base       string
		legacyBase string
		email      string
		password   string
		month      int
		year       int
		timeout    time.Duration
	)

	now := time.Now()
	flag.StringVar(&base, "base", "http://localhost:8080/api/v1", "API base URL including prefix")
	flag.StringVar(&legacyBase, "legacy-base", "", "optional second deployment to compare report data with")
	flag.StringVar(&email, "email", os.Getenv("SMOKE_EMAIL"), "login email")
	flag.StringVar(&password, "password", os.Getenv("SMOKE_PASSWORD"), "login password")
	flag.IntVar(&month, "month", int(now.Month()), "report month")
	flag.IntVar(&year, "year", now.Year(), "report year")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	httpClient := &http.Client{Timeout: timeout}
	api := &client{http: httpClient, base: strings.TrimRight(base, "/")}
	if err := api.login(email, password); err != nil {
		log.Fatalf("login failed: %v", err)
	}

	var legacy *client
	if legacyBase != "" {
		legacy = &client{http: httpClient, base: strings.TrimRight(legacyBase, "/")}
		if err := legacy.login(email, password); err != nil {
			log.Fatalf("legacy login failed: %v", err)
		}
	}

	catalogue, err := api.catalogue()
	if err != nil {
		log.Fatalf("catalogue failed: %v", err)
	}

	var checks []check
	for _, entry := range catalogue {
		for _, format := range entry.Formats {
			checks = append(checks, api.download(entry.ID, format, month, year))
		}
		if legacy != nil {
			checks = append(checks, compareData(api, legacy, entry.ID, month, year))
		}
	}

	failed := printReport(checks)
	fmt.Printf("Checks: %d, failed: %d\n", len(checks), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func (c *client) login(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password are required")
	}
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	resp, err := c.http.Post(c.base+"/auth/login", "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || body.Data.AccessToken == "" {
		return fmt.Errorf("unexpected login status %d", resp.StatusCode)
	}
	c.token = body.Data.AccessToken
	return nil
}

func (c *client) get(path string) (*http.Response, time.Duration, error) {
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	return resp, time.Since(start), nil
}

func (c *client) catalogue() ([]catalogueEntry, error) {
	resp, _, err := c.get("/reports")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}
	var entries []catalogueEntry
	if err := json.Unmarshal(env.Data, &entries); err != nil {
		return nil, fmt.Errorf("decode catalogue entries: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("catalogue is empty")
	}
	return entries, nil
}

func (c *client) download(reportID, format string, month, year int) check {
	res := check{Report: reportID, Format: format}
	path := fmt.Sprintf("/reports/%s/export/%s?month=%d&year=%d", reportID, format, month, year)
	if format == "print" {
		path = fmt.Sprintf("/reports/%s/print?month=%d&year=%d", reportID, month, year)
	}

	resp, dur, err := c.get(path)
	if err != nil {
		res.Problems = append(res.Problems, err.Error())
		return res
	}
	defer resp.Body.Close()
	res.Status = resp.StatusCode
	res.Duration = dur

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Problems = append(res.Problems, fmt.Sprintf("read body: %v", err))
		return res
	}
	res.Problems = append(res.Problems, inspect(resp, body, reportID, format, month, year)...)
	return res
}

func inspect(resp *http.Response, body []byte, reportID, format string, month, year int) []string {
	var problems []string
	if resp.StatusCode != http.StatusOK {
		problems = append(problems, fmt.Sprintf("status %d", resp.StatusCode))
		return problems
	}
	if want := contentTypes[format]; !strings.HasPrefix(resp.Header.Get("Content-Type"), want) {
		problems = append(problems, fmt.Sprintf("content type %q, want %q", resp.Header.Get("Content-Type"), want))
	}
	if want := expectedFilename(reportID, format, month, year); !strings.Contains(resp.Header.Get("Content-Disposition"), `filename="`+want+`"`) {
		problems = append(problems, fmt.Sprintf("content disposition %q, want filename %q", resp.Header.Get("Content-Disposition"), want))
	}
	if len(body) == 0 {
		problems = append(problems, "empty body")
	}
	return problems
}

func expectedFilename(reportID, format string, month, year int) string {
	return fmt.Sprintf("%s-%d-%d.%s", reportID, month, year, extensions[format])
}

func compareData(api, legacy *client, reportID string, month, year int) check {
	res := check{Report: reportID, Format: "data"}
	path := fmt.Sprintf("/reports/%s?month=%d&year=%d", reportID, month, year)

	ours, err := fetchData(api, path)
	if err != nil {
		res.Problems = append(res.Problems, err.Error())
		return res
	}
	theirs, err := fetchData(legacy, path)
	if err != nil {
		res.Problems = append(res.Problems, "legacy: "+err.Error())
		return res
	}
	res.Status = http.StatusOK
	if !dataEqual(ours, theirs) {
		res.Problems = append(res.Problems, "report data differs from legacy")
	}
	return res
}

func fetchData(c *client, path string) (json.RawMessage, error) {
	resp, _, err := c.get(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	return env.Data, nil
}

// dataEqual compares two JSON documents, treating integral floats and integers as equal.
func dataEqual(a, b []byte) bool {
	if bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	return reflect.DeepEqual(normalize(aj), normalize(bj))
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = normalize(item)
		}
	case []interface{}:
		for i, item := range val {
			val[i] = normalize(item)
		}
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func printReport(results []check) int {
	fmt.Println("Report Smoke Check")
	fmt.Println("==================")
	failed := 0
	for _, res := range results {
		status := "OK"
		if len(res.Problems) > 0 {
			status = "FAIL"
			failed++
		}
		fmt.Printf("[%s] %s %s (%d, %s)\n", status, res.Report, res.Format, res.Status, res.Duration)
		for _, problem := range res.Problems {
			fmt.Printf("  - %s\n", problem)
		}
	}
	return failed
}
