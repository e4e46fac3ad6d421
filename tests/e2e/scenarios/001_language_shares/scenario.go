package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

type languageShare struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Share float64 `json:"share"`
}

type languageReport struct {
	Languages []languageShare `json:"languages"`
	Total     int64           `json:"total"`
}

type errorResponse struct {
	ErrorCategory string `json:"errorCategory"`
	ErrorCode     string `json:"errorCode"`
}

type userResult struct {
	user   string
	status int
	report *languageReport
	errRes *errorResponse
	err    error
}

// main runs the e2e scenario: 001_language_shares
//
// This scenario requests the language report of several GitHub users from a running langshare
// server (which needs a valid GITHUB_TOKEN) and checks every report it gets back.
//
// What it tests:
//   - GET /languages/{user}/all against the live GitHub GraphQL API
//   - Shares sit on the 10^-PRECISION grid and sum to exactly one
//   - Byte counts sum to the reported total and entries are sorted by descending count
//   - An invalid login is rejected with 400 LANG_1000
//   - An unknown login is reported as 404 LANG_1001
//
// Expected results:
//   - Every valid user returns 200 with a consistent report (or an empty one with total 0)
//   - The invalid and unknown logins return the documented error codes
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("BASE_URL", "http://localhost:3000")                      // Base URL of the langshare server
	users := strings.Split(getEnv("USERS", "octocat,torvalds,gaearon"), ",")    // Logins expected to exist
	unknownUser := getEnv("UNKNOWN_USER", "this-user-should-not-exist-4f9a2c1") // Login expected to be missing
	precision := getEnvInt("PRECISION", 4)                                      // Must match shares.precision of the server
	parallel := getEnvInt("PARALLEL", 2)                                        // Number of concurrent requests

	fmt.Println("Starting e2e scenario: 001_language_shares")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("USERS: %v\n", users)
	fmt.Printf("UNKNOWN_USER: %s\n", unknownUser)
	fmt.Printf("PRECISION: %d\n", precision)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	client := &http.Client{Timeout: 60 * time.Second}

	results := make([]userResult, len(users))
	var g errgroup.Group
	g.SetLimit(parallel)
	for i, user := range users {
		i := i
		user := user
		g.Go(func() error {
			results[i] = fetchReport(client, baseURL, strings.TrimSpace(user))
			return nil
		})
	}
	_ = g.Wait()

	failures := 0
	for _, res := range results {
		if res.err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.user, res.err)
			failures++
			continue
		}
		if res.status != http.StatusOK {
			fmt.Fprintf(os.Stderr, "FAIL %s: status %d (%+v)\n", res.user, res.status, res.errRes)
			failures++
			continue
		}
		if err := checkReport(res.report, precision); err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", res.user, err)
			failures++
			continue
		}
		fmt.Printf("OK   %s: %d languages, %d bytes\n", res.user, len(res.report.Languages), res.report.Total)
	}

	for _, expected := range []struct {
		user   string
		status int
		code   string
	}{
		{user: "-invalid-", status: http.StatusBadRequest, code: "LANG_1000"},
		{user: unknownUser, status: http.StatusNotFound, code: "LANG_1001"},
	} {
		res := fetchReport(client, baseURL, expected.user)
		if res.err != nil || res.status != expected.status || res.errRes == nil || res.errRes.ErrorCode != expected.code {
			fmt.Fprintf(os.Stderr, "FAIL %s: want %d %s, got status %d (%+v, err=%v)\n",
				expected.user, expected.status, expected.code, res.status, res.errRes, res.err)
			failures++
			continue
		}
		fmt.Printf("OK   %s: %d %s\n", expected.user, res.status, res.errRes.ErrorCode)
	}

	fmt.Println()
	fmt.Printf("Failures: %d\n", failures)
	if failures > 0 {
		os.Exit(1)
	}
}

func fetchReport(client *http.Client, baseURL, user string) userResult {
	res := userResult{user: user}

	resp, err := client.Get(fmt.Sprintf("%s/languages/%s/all", baseURL, user))
	if err != nil {
		res.err = err
		return res
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.err = err
		return res
	}

	res.status = resp.StatusCode
	if resp.StatusCode == http.StatusOK {
		res.report = &languageReport{}
		res.err = json.Unmarshal(body, res.report)
		return res
	}

	res.errRes = &errorResponse{}
	res.err = json.Unmarshal(body, res.errRes)
	return res
}

func checkReport(report *languageReport, precision int) error {
	if report.Total == 0 {
		if len(report.Languages) != 0 {
			return fmt.Errorf("empty total with %d languages", len(report.Languages))
		}
		return nil
	}

	grid := math.Pow10(precision)
	var units, bytes int64
	for i, language := range report.Languages {
		if language.Share < 0 || language.Share > 1 {
			return fmt.Errorf("share of %s out of range: %v", language.Name, language.Share)
		}
		u := math.Round(language.Share * grid)
		if math.Abs(u-language.Share*grid) > 1e-6 {
			return fmt.Errorf("share of %s is off the grid: %v", language.Name, language.Share)
		}
		if i > 0 && report.Languages[i-1].Count < language.Count {
			return fmt.Errorf("languages not sorted by count at %s", language.Name)
		}
		units += int64(u)
		bytes += language.Count
	}

	if units != int64(grid) {
		return fmt.Errorf("shares sum to %d units, want %d", units, int64(grid))
	}
	if bytes != report.Total {
		return fmt.Errorf("counts sum to %d, total is %d", bytes, report.Total)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
