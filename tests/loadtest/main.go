package main

import (
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"
)

const (
	baseURL      = "http://127.0.0.1:8099"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var beverages = []string{"Beer", "Guinness", "Wine", "Cidra", "Shots", "Cocktails"}

var variants = map[string][]string{
	"Beer":      {"20cl", "33cl", "Pint"},
	"Wine":      {"Red", "White", "Rosé"},
	"Cocktails": {"Rum and Coke", "Gin Tonic", "Others"},
}

var periods = []string{"day", "week", "month", "year"}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func main() {
	fmt.Println("=== bevlog Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n\n", numWorkers, testDuration)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/beverages")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed log entries
	fmt.Println("\n--- Phase 1: Seeding logs (POST /logs) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		return doAddLog(rng)
	})

	// Phase 2: Mixed read/write load
	fmt.Println("\n--- Phase 2: Mixed load (50% POST, 50% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.50:
			return doAddLog(rng)
		case r < 0.65:
			return doGetLogs()
		case r < 0.80:
			return doGetStats(rng)
		case r < 0.90:
			return doGetBeverages()
		default:
			return doExportCSV()
		}
	})

	// Phase 3: Read-heavy load
	fmt.Println("\n--- Phase 3: Read-heavy load (10% POST, 90% GET) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doAddLog(rng)
		case r < 0.40:
			return doGetStats(rng)
		case r < 0.65:
			return doGetLogs()
		case r < 0.85:
			return doGetBeverages()
		default:
			return doExportCSV()
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + strings.Repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + strings.Repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doAddLog(rng *rand.Rand) result {
	name := beverages[rng.Intn(len(beverages))]
	body := map[string]interface{}{
		"beverage": name,
		// spread entries over the last 30 days
		"timestamp": time.Now().Add(-time.Duration(rng.Intn(30*24)) * time.Hour).UnixMilli(),
	}
	if vs, ok := variants[name]; ok && rng.Float64() < 0.6 {
		body["variant"] = vs[rng.Intn(len(vs))]
	}

	data, _ := json.Marshal(body)
	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/logs", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /logs", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"POST /logs", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doGetLogs() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/logs")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /logs", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /logs", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetStats(rng *rand.Rand) result {
	period := periods[rng.Intn(len(periods))]
	url := fmt.Sprintf("%s/stats?period=%s", baseURL, period)
	if period == "month" && rng.Float64() < 0.5 {
		url += fmt.Sprintf("&offset=%d", -rng.Intn(3))
	}
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{"GET /stats", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /stats", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetBeverages() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/beverages")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /beverages", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /beverages", resp.StatusCode, lat, resp.StatusCode != 200}
}

func doExportCSV() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/export.csv?liters=true")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /export.csv", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /export.csv", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
