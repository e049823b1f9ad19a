// Command catalog_smoke exercises a running gateway end to end: it creates a
// catalog view, pages through it and cross-checks the snapshot against the
// upstream course listing. Exits non-zero on any mismatch so it can gate
// deploys.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type snapshot struct {
	ID      string `json:"id"`
	Source  string `json:"source"`
	Error   string `json:"error"`
	Courses []struct {
		ID string `json:"id"`
	} `json:"courses"`
	Page struct {
		Page       int `json:"page"`
		PageSize   int `json:"pageSize"`
		TotalPages int `json:"totalPages"`
		TotalCount int `json:"totalCount"`
	} `json:"page"`
}

type upstreamCourse struct {
	ID    string `json:"_id"`
	AltID string `json:"id"`
}

func main() {
	var (
		gatewayBase  string
		upstreamBase string
		prefix       string
		source       string
		timeout      time.Duration
	)

	flag.StringVar(&gatewayBase, "gateway", "http://localhost:8080", "Gateway base URL")
	flag.StringVar(&upstreamBase, "upstream", "", "Upstream catalog API base URL (skip cross-check when empty)")
	flag.StringVar(&prefix, "prefix", "/api/v1", "Gateway API prefix")
	flag.StringVar(&source, "source", "all", "Catalog source (all or trending)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	base := strings.TrimRight(gatewayBase, "/") + prefix

	snap, err := createView(client, base, source)
	if err != nil {
		log.Fatalf("create view: %v", err)
	}
	defer deleteView(client, base, snap.ID)

	fmt.Printf("view %s source=%s pages=%d total=%d\n", snap.ID, snap.Source, snap.Page.TotalPages, snap.Page.TotalCount)
	if snap.Error != "" {
		log.Fatalf("view reported load error: %s", snap.Error)
	}

	failures := 0
	seen := map[string]bool{}
	for _, c := range snap.Courses {
		seen[c.ID] = true
	}
	current := snap
	for current.Page.Page < current.Page.TotalPages {
		next, err := postSnapshot(client, base+"/catalog/views/"+snap.ID+"/page/next", nil)
		if err != nil {
			log.Fatalf("next page: %v", err)
		}
		if next.Page.Page != current.Page.Page+1 {
			fmt.Printf("FAIL page cursor did not advance: %d -> %d\n", current.Page.Page, next.Page.Page)
			failures++
			break
		}
		if len(next.Courses) == 0 {
			fmt.Printf("FAIL page %d of %d is empty\n", next.Page.Page, next.Page.TotalPages)
			failures++
		}
		for _, c := range next.Courses {
			if seen[c.ID] {
				fmt.Printf("FAIL course %s repeated across pages\n", c.ID)
				failures++
			}
			seen[c.ID] = true
		}
		current = next
	}
	if len(seen) != snap.Page.TotalCount {
		fmt.Printf("FAIL walked %d distinct courses, snapshot reports %d\n", len(seen), snap.Page.TotalCount)
		failures++
	}

	if upstreamBase != "" {
		upstreamIDs, err := fetchUpstreamIDs(client, upstreamBase, source)
		if err != nil {
			log.Fatalf("fetch upstream courses: %v", err)
		}
		if len(upstreamIDs) != len(seen) {
			fmt.Printf("FAIL upstream lists %d courses, gateway served %d\n", len(upstreamIDs), len(seen))
			failures++
		}
		for _, id := range upstreamIDs {
			if !seen[id] {
				fmt.Printf("FAIL upstream course %s missing from gateway\n", id)
				failures++
			}
		}
	}

	if failures > 0 {
		fmt.Printf("smoke failed: %d problem(s)\n", failures)
		os.Exit(1)
	}
	fmt.Println("smoke passed")
}

func createView(client *http.Client, base, source string) (snapshot, error) {
	body, _ := json.Marshal(map[string]string{"source": source})
	return postSnapshot(client, base+"/catalog/views", body)
}

func deleteView(client *http.Client, base, id string) {
	req, err := http.NewRequest(http.MethodDelete, base+"/catalog/views/"+id, nil)
	if err != nil {
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		return
	}
	resp.Body.Close()
}

func postSnapshot(client *http.Client, url string, body []byte) (snapshot, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(http.MethodPost, url, reader)
	if err != nil {
		return snapshot{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return snapshot{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return snapshot{}, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return snapshot{}, fmt.Errorf("decode envelope: %w", err)
	}
	if !env.Success {
		return snapshot{}, fmt.Errorf("gateway returned %d: %s", resp.StatusCode, env.Message)
	}
	var snap snapshot
	if err := json.Unmarshal(env.Data, &snap); err != nil {
		return snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func fetchUpstreamIDs(client *http.Client, base, source string) ([]string, error) {
	path := "/courses"
	if source == "trending" {
		path = "/courses/popular"
	}
	resp, err := client.Get(strings.TrimRight(base, "/") + path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("upstream returned %d: %s", resp.StatusCode, env.Message)
	}
	var courses []upstreamCourse
	if err := json.Unmarshal(env.Data, &courses); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(courses))
	for _, c := range courses {
		id := c.ID
		if id == "" {
			id = c.AltID
		}
		ids = append(ids, id)
	}
	return ids, nil
}
