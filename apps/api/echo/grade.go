package echoapi

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/gradesheet/core/grade"
)

type (
	gradeApi struct {
		svc grade.Service
	}

	// nil fields tell "missing" apart from "empty"; empty strings are accepted as-is.
	addGradeRequest struct {
		Name  *string `json:"name"`
		Grade *string `json:"grade"`
	}

	updateGradeRequest struct {
		Grade *string `json:"grade"`
	}
)

func registerGradeAPI(g *echo.Group, svc grade.Service) {
	api := gradeApi{svc: svc}

	g.GET("", api.query)
	g.POST("", api.addOrReplace)
	g.GET("/entries", api.listAll)
	g.PUT("/:name", api.update)
}

// Handlers

func (api *gradeApi) query(ctx echo.Context) error {
	sheet := make(grade.Sheet, 0)
	err := api.svc.ListAll(ctx.Request().Context(), func(e grade.Entry) { sheet = append(sheet, e) })
	if err != nil {
		return errors.Wrap(err, "listing grades")
	}
	return ctx.JSON(http.StatusOK, sheet)
}

func (api *gradeApi) listAll(ctx echo.Context) error {
	entries := make([]grade.Entry, 0)
	err := api.svc.ListAll(ctx.Request().Context(), func(e grade.Entry) { entries = append(entries, e) })
	if err != nil {
		return errors.Wrap(err, "listing grades")
	}
	return ctx.JSON(http.StatusOK, entries)
}

func (api *gradeApi) addOrReplace(ctx echo.Context) error {
	var data addGradeRequest
	if err := ctx.Bind(&data); err != nil {
		return newNoDataError()
	}
	if data.Name == nil || data.Grade == nil {
		return newNoDataError()
	}

	sheet, err := api.svc.AddOrReplace(ctx.Request().Context(), *data.Name, *data.Grade)
	if err != nil {
		return errors.Wrap(err, "adding grade")
	}
	return ctx.JSON(http.StatusOK, sheet)
}

func (api *gradeApi) update(ctx echo.Context) error {
	var data updateGradeRequest
	if err := ctx.Bind(&data); err != nil {
		return newNoDataError()
	}
	if data.Grade == nil {
		return newNoDataError()
	}

	name, err := pathParam(ctx, "name")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid student name")
	}

	sheet, err := api.svc.UpdateExisting(ctx.Request().Context(), name, *data.Grade)
	if err != nil {
		return errors.Wrap(err, "updating grade")
	}
	return ctx.JSON(http.StatusOK, sheet)
}

// pathParam returns the decoded value of the path parameter `name`.
// The router matches on the raw path when it holds escapes (e.g. %2F), so those reach the handler undecoded.
func pathParam(ctx echo.Context, name string) (string, error) {
	val := ctx.Param(name)
	if ctx.Request().URL.RawPath == "" {
		return val, nil
	}
	return url.PathUnescape(val)
}
