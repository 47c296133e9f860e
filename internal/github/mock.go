package github

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MockHTTPClient is a test implementation that records requests and returns
// mocked responses keyed by method and URL
type MockHTTPClient struct {
	responses map[string]MockResponse
	failures  map[string]error
	// Requests records every request in the order it was made
	Requests []RequestRecord
}

// MockResponse represents a mocked HTTP response
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// RequestRecord captures a request made through the mock
type RequestRecord struct {
	Method  string
	URL     string
	Headers http.Header
	Body    string
}

// NewMockHTTPClient creates an empty mock client
func NewMockHTTPClient() *MockHTTPClient {
	return &MockHTTPClient{
		responses: make(map[string]MockResponse),
		failures:  make(map[string]error),
	}
}

func mockKey(method, url string) string {
	return method + " " + url
}

// Do records the request and returns the configured response, a configured
// transport error, or 404 when nothing matches
func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	record := RequestRecord{
		Method:  req.Method,
		URL:     req.URL.String(),
		Headers: req.Header.Clone(),
	}
	if req.Body != nil {
		bodyBytes, _ := io.ReadAll(req.Body)
		record.Body = string(bodyBytes)
		req.Body = io.NopCloser(strings.NewReader(record.Body))
	}
	m.Requests = append(m.Requests, record)

	key := mockKey(req.Method, req.URL.String())

	if err, exists := m.failures[key]; exists {
		return nil, err
	}

	response, exists := m.responses[key]
	if !exists {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Status:     fmt.Sprintf("%d %s", http.StatusNotFound, http.StatusText(http.StatusNotFound)),
			Header:     make(http.Header),
			Body:       io.NopCloser(strings.NewReader(`{"message":"Not Found"}`)),
		}, nil
	}

	statusCode := response.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	resp := &http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(response.Body)),
	}
	for key, value := range response.Headers {
		resp.Header.Set(key, value)
	}

	return resp, nil
}

// SetResponse sets a mock response for a method and URL
func (m *MockHTTPClient) SetResponse(method, url string, response MockResponse) {
	m.responses[mockKey(method, url)] = response
}

// SetJSONResponse sets a mock JSON response for a method and URL
func (m *MockHTTPClient) SetJSONResponse(method, url string, statusCode int, body any) error {
	jsonBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	m.responses[mockKey(method, url)] = MockResponse{
		StatusCode: statusCode,
		Body:       string(jsonBytes),
		Headers:    map[string]string{"Content-Type": "application/json"},
	}

	return nil
}

// FailWith makes requests to the given method and URL fail at the transport
// level, as if the network were unreachable
func (m *MockHTTPClient) FailWith(method, url string, err error) {
	m.failures[mockKey(method, url)] = err
}

// RequestCount returns the number of requests made to a method and URL
func (m *MockHTTPClient) RequestCount(method, url string) int {
	count := 0
	for _, record := range m.Requests {
		if record.Method == method && record.URL == url {
			count++
		}
	}
	return count
}

// LastRequest returns the most recent request to a method and URL, or nil
func (m *MockHTTPClient) LastRequest(method, url string) *RequestRecord {
	for i := len(m.Requests) - 1; i >= 0; i-- {
		if m.Requests[i].Method == method && m.Requests[i].URL == url {
			return &m.Requests[i]
		}
	}
	return nil
}
