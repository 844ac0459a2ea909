package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type responseAssertion func(*http.Response)

func withStatusCode(t *testing.T, expected int) responseAssertion {
	return func(resp *http.Response) {
		require.Equal(t, expected, resp.StatusCode)
	}
}

func sendRequest[TReq any, TResp any](
	t *testing.T,
	method string,
	url string,
	req TReq,
	opts ...responseAssertion,
) TResp {
	t.Helper()

	var resp TResp

	payload, err := json.Marshal(req)
	require.NoError(t, err)

	httpReq, err := http.NewRequest(method, url, bytes.NewReader(payload))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := fixture.client.Do(httpReq)
	require.NoError(t, err)

	defer func() {
		_ = httpResp.Body.Close()
	}()

	for _, opt := range opts {
		opt(httpResp)
	}

	responsePayload, err := io.ReadAll(httpResp.Body)
	require.NoError(t, err)

	if len(responsePayload) > 0 {
		require.NoError(t, json.Unmarshal(responsePayload, &resp))
	}

	return resp
}

func getRequest[TResp any](t *testing.T, url string, opts ...responseAssertion) TResp {
	t.Helper()

	var resp TResp

	httpResp, err := fixture.client.Get(url)
	require.NoError(t, err)

	defer func() {
		_ = httpResp.Body.Close()
	}()

	for _, opt := range opts {
		opt(httpResp)
	}

	responsePayload, err := io.ReadAll(httpResp.Body)
	require.NoError(t, err)

	if len(responsePayload) > 0 {
		require.NoError(t, json.Unmarshal(responsePayload, &resp))
	}

	return resp
}
