package echoapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func Test_pathParam(t *testing.T) {
	tests := []struct {
		name    string
		rawPath string
		param   string
		want    string
		wantErr bool
	}{
		{name: "plain", param: "bhavya", want: "bhavya"},
		{name: "already decoded", param: "100%", want: "100%"},
		{name: "escaped", rawPath: "/grades/a%2Fb", param: "a%2Fb", want: "a/b"},
		{name: "bad escape", rawPath: "/grades/a%2Fb%zz", param: "a%2Fb%zz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/grades/x", nil)
			req.URL.RawPath = tt.rawPath
			ctx := echo.New().NewContext(req, httptest.NewRecorder())
			ctx.SetParamNames("name")
			ctx.SetParamValues(tt.param)

			got, err := pathParam(ctx, "name")
			if (err != nil) != tt.wantErr {
				t.Fatalf("pathParam() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("pathParam() = %q, want %q", got, tt.want)
			}
		})
	}
}
