// Loadtest is a concurrent HTTP client that hammers the QR route with one
// fixed payload and verifies that every successful response is byte-identical.
//
// Usage:
//
//	go run loadtest.go -url http://localhost:8080/qr -concurrency 10 -requests 1000
//	go run loadtest.go -body '{"url":"https://example.com"}' -out summary.json
//
// The tool reports:
//   - Status code distribution
//   - Latency percentiles (p50, p90, p95, p99)
//   - Number of distinct response bodies among 200 responses
//
// Exit codes:
//
//	0 - All 200 bodies identical
//	1 - Setup or output errors
//	3 - Responses differed for identical input
package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Summary is the JSON report written with -out.
type Summary struct {
	Requests       int            `json:"requests"`
	Failures       int            `json:"failures"`
	StatusCodes    map[int]int    `json:"status_codes"`
	DistinctBodies int            `json:"distinct_bodies"`
	Duration       time.Duration  `json:"duration"`
	Throughput     float64        `json:"throughput_rps"`
	Latency        map[string]int `json:"latency_ms"`
}

func main() {
	var (
		url         = flag.String("url", "http://localhost:8080/qr", "Target URL")
		concurrency = flag.Int("concurrency", 10, "Number of concurrent workers")
		requests    = flag.Int("requests", 100, "Total number of requests to send")
		body        = flag.String("body", `{"url":"https://example.com"}`, "Request body")
		timeoutSec  = flag.Int("timeout", 10, "Per-request timeout in seconds")
		outJSON     = flag.String("out", "", "Write JSON summary to this file (optional)")
	)
	flag.Parse()

	client := &http.Client{Timeout: time.Duration(*timeoutSec) * time.Second}

	jobs := make(chan int)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var latencies []time.Duration
	statusCodes := make(map[int]int)
	bodies := make(map[string]int)
	failures := 0

	start := time.Now()

	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				reqStart := time.Now()
				resp, err := client.Post(*url, "application/json", bytes.NewBufferString(*body))
				if err != nil {
					mu.Lock()
					failures++
					mu.Unlock()
					continue
				}

				payload, err := io.ReadAll(resp.Body)
				resp.Body.Close()
				dur := time.Since(reqStart)

				mu.Lock()
				latencies = append(latencies, dur)
				statusCodes[resp.StatusCode]++
				if err != nil {
					failures++
				} else if resp.StatusCode == http.StatusOK {
					sum := sha256.Sum256(payload)
					bodies[hex.EncodeToString(sum[:])]++
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < *requests; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	elapsed := time.Since(start)

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	summary := Summary{
		Requests:       *requests,
		Failures:       failures,
		StatusCodes:    statusCodes,
		DistinctBodies: len(bodies),
		Duration:       elapsed,
		Throughput:     float64(*requests) / elapsed.Seconds(),
		Latency: map[string]int{
			"p50": percentileMS(latencies, 0.50),
			"p90": percentileMS(latencies, 0.90),
			"p95": percentileMS(latencies, 0.95),
			"p99": percentileMS(latencies, 0.99),
		},
	}

	fmt.Printf("requests=%d failures=%d duration=%s throughput=%.1f rps\n",
		summary.Requests, summary.Failures, summary.Duration, summary.Throughput)
	fmt.Printf("status codes: %v\n", summary.StatusCodes)
	fmt.Printf("latency ms: p50=%d p90=%d p95=%d p99=%d\n",
		summary.Latency["p50"], summary.Latency["p90"], summary.Latency["p95"], summary.Latency["p99"])
	fmt.Printf("distinct 200 bodies: %d\n", summary.DistinctBodies)

	if *outJSON != "" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode summary: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*outJSON, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write summary: %v\n", err)
			os.Exit(1)
		}
	}

	if summary.DistinctBodies > 1 {
		fmt.Fprintln(os.Stderr, "FAIL: identical requests produced different bodies")
		os.Exit(3)
	}
}

func percentileMS(sorted []time.Duration, p float64) int {
	if len(sorted) == 0 {
		return 0
	}

	index := int(float64(len(sorted)) * p)
	if index >= len(sorted) {
		index = len(sorted) - 1
	}

	return int(sorted[index].Milliseconds())
}
