package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"
)

// ImportRow is one statement line of an import batch
type ImportRow struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Reference   string `json:"reference,omitempty"`
	Amount      string `json:"amount"`
}

// ImportResponse holds the counters returned by the import endpoint
type ImportResponse struct {
	Total             int `json:"total"`
	Inserted          int `json:"inserted"`
	SkippedDuplicates int `json:"skippedDuplicates"`
	AutoMatched       int `json:"autoMatched"`
	Unmatched         int `json:"unmatched"`
	Failed            int `json:"failed"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Kind         string
	StatusCode   int
	ResponseTime time.Duration
	Import       *ImportResponse
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	StatusCounts      map[string]int // "<kind> <status>"
	ErrorCounts       map[string]int
	Inserted          int
	SkippedDuplicates int
	AutoMatched       int
	Lock              sync.Mutex
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	batchSize := flag.Int("b", 20, "Rows per import batch")
	aliasesStr := flag.String("aliases", "JSMITH25,THX1138,MDOE", "Comma-separated aliases to embed in descriptions")
	userID := flag.String("user", "P1", "Profile ID used for manual matches")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	aliases := strings.Split(*aliasesStr, ",")

	fmt.Printf("Load testing %s\n", *baseURL)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d rows per batch\n", *concurrency, *totalRequests, *batchSize)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[string]int),
		ErrorCounts:   make(map[string]int),
	}

	client := &http.Client{Timeout: 30 * time.Second}
	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))
			for job := range jobs {
				// Every fifth request races a manual match on a shared row
				if job%5 == 4 {
					results <- manualMatch(client, *baseURL, *userID, workerID)
				} else {
					results <- importBatch(client, *baseURL, buildBatch(rng, aliases, *batchSize))
				}
				time.Sleep(time.Duration(*delayMs) * time.Millisecond)
			}
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range results {
			stats.Lock.Lock()
			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.StatusCounts[fmt.Sprintf("%s %d", result.Kind, result.StatusCode)]++
			if result.Error != nil {
				stats.ErrorCounts[result.Error.Error()]++
			}
			if result.Import != nil {
				stats.Inserted += result.Import.Inserted
				stats.SkippedDuplicates += result.Import.SkippedDuplicates
				stats.AutoMatched += result.Import.AutoMatched
			}
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	wg.Wait()
	close(results)
	<-done
	stats.TotalTime = time.Since(startTime)

	printStats(stats)
}

// buildBatch creates rows from a small date and amount space so that batches overlap
func buildBatch(rng *rand.Rand, aliases []string, size int) []ImportRow {
	rows := make([]ImportRow, 0, size)
	for i := 0; i < size; i++ {
		description := fmt.Sprintf("CARD PAYMENT %04d", rng.Intn(500))
		if rng.Intn(3) > 0 {
			description = fmt.Sprintf("TRANSFER FROM %s", aliases[rng.Intn(len(aliases))])
		}
		rows = append(rows, ImportRow{
			Date:        fmt.Sprintf("2024-03-%02d", rng.Intn(28)+1),
			Description: description,
			Amount:      fmt.Sprintf("%d.%02d", rng.Intn(200), rng.Intn(100)),
		})
	}
	return rows
}

func importBatch(client *http.Client, baseURL string, rows []ImportRow) TestResult {
	body, _ := json.Marshal(map[string]any{"rows": rows})

	start := time.Now()
	resp, err := client.Post(baseURL+"/api/v1/imports", "application/json", bytes.NewReader(body))
	result := TestResult{Kind: "import", ResponseTime: time.Since(start), Error: err}
	if err != nil {
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	var counters ImportResponse
	if err := json.NewDecoder(resp.Body).Decode(&counters); err == nil {
		result.Import = &counters
	}
	return result
}

// manualMatch matches the oldest unmatched row, so concurrent workers contend for it
func manualMatch(client *http.Client, baseURL, userID string, workerID int) TestResult {
	start := time.Now()
	resp, err := client.Get(baseURL + "/api/v1/transactions?confidence=unmatched&orderBy=created&limit=1")
	if err != nil {
		return TestResult{Kind: "match", ResponseTime: time.Since(start), Error: err}
	}
	var list struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	err = json.NewDecoder(resp.Body).Decode(&list)
	resp.Body.Close()
	if err != nil || len(list.Items) == 0 {
		return TestResult{Kind: "match", StatusCode: http.StatusNoContent, ResponseTime: time.Since(start), Error: err}
	}

	body, _ := json.Marshal(map[string]string{"userId": userID})
	req, _ := http.NewRequest(http.MethodPut, baseURL+"/api/v1/transactions/"+list.Items[0].ID+"/match", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", fmt.Sprintf("load-test-%d", workerID))

	resp, err = client.Do(req)
	result := TestResult{Kind: "match", ResponseTime: time.Since(start), Error: err}
	if err != nil {
		return result
	}
	resp.Body.Close()
	result.StatusCode = resp.StatusCode
	return result
}

func printStats(stats *TestStats) {
	stats.Lock.Lock()
	defer stats.Lock.Unlock()

	sort.Slice(stats.ResponseTimes, func(i, j int) bool { return stats.ResponseTimes[i] < stats.ResponseTimes[j] })
	percentile := func(p float64) time.Duration {
		if len(stats.ResponseTimes) == 0 {
			return 0
		}
		return stats.ResponseTimes[int(float64(len(stats.ResponseTimes)-1)*p)]
	}

	fmt.Println("\n===== Load Test Results =====")
	fmt.Printf("Total time: %v\n", stats.TotalTime)
	fmt.Printf("Requests per second: %.2f\n", float64(len(stats.ResponseTimes))/stats.TotalTime.Seconds())
	fmt.Printf("Latency p50: %v  p95: %v  p99: %v\n", percentile(0.50), percentile(0.95), percentile(0.99))
	fmt.Printf("Rows inserted: %d, duplicates skipped: %d, auto-matched: %d\n",
		stats.Inserted, stats.SkippedDuplicates, stats.AutoMatched)

	fmt.Println("\nResponses:")
	keys := make([]string, 0, len(stats.StatusCounts))
	for k := range stats.StatusCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, stats.StatusCounts[k])
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\nErrors:")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("  %s: %d\n", msg, count)
		}
	}
}
