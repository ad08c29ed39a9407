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

	"weather-widget/models"
)

type searchResponse struct {
	Result struct {
		Outcome        string `json:"outcome"`
		Classification string `json:"classification"`
		Query          string `json:"query"`
		Message        string `json:"message"`
	} `json:"result"`
	Page struct {
		Texts map[string]string `json:"texts"`
	} `json:"page"`
}

func main() {
	baseURL := flag.String("server", "http://localhost:8080", "Widget server base URL")
	location := flag.String("location", "London", "Location to search for")
	flag.Parse()

	body, _ := json.Marshal(map[string]string{"location": *location})

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Post(*baseURL+"/api/submit", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error submitting search: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Server returned %d: %s\n", resp.StatusCode, raw)
		os.Exit(1)
	}

	var data searchResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		fmt.Printf("Error parsing response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Search %q (%s): %s\n", *location, data.Result.Classification, data.Result.Outcome)

	switch data.Result.Outcome {
	case "rendered":
		for _, name := range models.FieldNames {
			fmt.Printf("  %-16s %s\n", name, data.Page.Texts[name])
		}
	case "invalid":
		fmt.Println("Enter a city name, or a city and country separated by a space.")
		os.Exit(2)
	default:
		if data.Result.Message != "" {
			fmt.Printf("  %s\n", data.Result.Message)
		}
		os.Exit(1)
	}
}
