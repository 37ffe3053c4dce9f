package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/trezcool/gradesheet/apps/api/echo"
	"github.com/trezcool/gradesheet/core/grade"
	"github.com/trezcool/gradesheet/storage/database/inmem"
)

func setup(t *testing.T, opts ...func(*Options)) Server {
	db, err := inmemdb.Open(grade.SeedEntries()...)
	require.NoError(t, err)

	o := &Options{
		DisableReqLogs: true,
		GradeSvc:       grade.NewService(inmemdb.NewGradeRepository(db)),
		Logger:         &loggerMock{},
	}
	for _, opt := range opts {
		opt(o)
	}
	return NewServer(o)
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

type loggerMock struct {
	mu     sync.Mutex
	errors []string
}

func (l *loggerMock) Debug(string, ...interface{}) {}
func (l *loggerMock) Info(string, ...interface{})  {}
func (l *loggerMock) Warn(string, ...interface{})  {}
func (l *loggerMock) Fatal(string, ...interface{}) {}

func (l *loggerMock) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

// brokenService fails every operation with err.
type brokenService struct {
	err error
}

func (svc brokenService) AddOrReplace(context.Context, string, string) (grade.Sheet, error) {
	return nil, svc.err
}

func (svc brokenService) UpdateExisting(context.Context, string, string) (grade.Sheet, error) {
	return nil, svc.err
}

func (svc brokenService) ListAll(context.Context, func(grade.Entry)) error {
	return svc.err
}
