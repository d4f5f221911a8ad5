package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_Level(t *testing.T) {
	logger, err := SetupLogging("debug")
	require.NoError(t, err)
	assert.Equal(t, "debug", logger.Level.String())

	logger, err = SetupLogging("")
	require.NoError(t, err)
	assert.Equal(t, "info", logger.Level.String())

	_, err = SetupLogging("loud")
	assert.Error(t, err)
}

func TestLogData_Fields(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	logData := NewLogData(logger)

	logData.AddData("count", 3)
	stop := logData.AddTiming("loadMs")
	stop()

	entry := logData.Log()
	assert.Equal(t, 3, entry.Data["count"])
	assert.Contains(t, entry.Data, "loadMs")
}

func TestLogData_ConcurrentWrites(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	logData := NewLogData(logger)

	wg := sync.WaitGroup{}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logData.AddData("key", i)
			logData.AddToExistingTiming("total")()
		}()
	}
	wg.Wait()

	assert.Contains(t, logData.Log().Data, "total")
}

func TestContextHelpers(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
	StartTiming(context.Background(), "noop")()
	AddData(context.Background(), "ignored", true)

	logger, err := SetupLogging("info")
	require.NoError(t, err)
	logData := NewLogData(logger)
	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
	AddData(ctx, "user", "abc")
	assert.Equal(t, "abc", logData.Log().Data["user"])
}

func TestLoggingWrapper(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logger.Out = out

	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		w.WriteHeader(http.StatusOK)
		return nil
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "Handler.Status.Complete", line["msg"])
	assert.Equal(t, "info", line["loglevel"])
}

type pingOutput struct {
	Body struct {
		HasLogData bool `json:"hasLogData"`
	}
}

func TestMiddleware(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logger.Out = out

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		AddData(ctx, "pinged", true)
		resp := &pingOutput{}
		resp.Body.HasLogData = GetLogData(ctx) != nil
		return resp, nil
	})

	resp := api.Get("/ping")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"hasLogData":true`)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "Handler.ping.Complete", line["msg"])
	assert.Equal(t, true, line["pinged"])
	assert.Equal(t, "/ping", line["path"])
}

func TestMiddleware_ServerErrorLogsError(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logger.Out = out

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "explode",
		Method:      http.MethodGet,
		Path:        "/explode",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		return nil, huma.Error500InternalServerError("boom")
	})

	resp := api.Get("/explode")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "Handler.explode.Error", line["msg"])
	assert.Equal(t, "error", line["loglevel"])
	assert.Equal(t, float64(http.StatusInternalServerError), line["status"])
}

func TestMiddleware_ClientErrorLogsComplete(t *testing.T) {
	logger, err := SetupLogging("info")
	require.NoError(t, err)
	out := &bytes.Buffer{}
	logger.Out = out

	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))
	huma.Register(api, huma.Operation{
		OperationID: "missing",
		Method:      http.MethodGet,
		Path:        "/missing",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		return nil, huma.Error404NotFound("nope")
	})

	resp := api.Get("/missing")

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &line))
	assert.Equal(t, "Handler.missing.Complete", line["msg"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
}
