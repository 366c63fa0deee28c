package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/printer-supplies-api/internal/application/dto"
	"github.com/jhoicas/printer-supplies-api/internal/application/movement"
	"github.com/jhoicas/printer-supplies-api/internal/application/movement/movementtest"
	"github.com/jhoicas/printer-supplies-api/internal/application/status"
	"github.com/jhoicas/printer-supplies-api/internal/domain/entity"
	"github.com/jhoicas/printer-supplies-api/internal/infrastructure/postgres"
	apphttp "github.com/jhoicas/printer-supplies-api/internal/interfaces/http"
)

type fakeInspector struct{}

func (fakeInspector) DatabaseInfo(context.Context) (*postgres.DatabaseInfo, error) {
	return &postgres.DatabaseInfo{Version: "16.2", MaxConnections: 100, OpenedConnections: 1}, nil
}

type fakeMigrator struct{}

func (fakeMigrator) Up() (postgres.MigrationState, error) {
	return postgres.MigrationState{Version: 2, Applied: true}, nil
}

func (fakeMigrator) Status() (postgres.MigrationState, error) {
	return postgres.MigrationState{Version: 2}, nil
}

type reportStub struct{}

func (reportStub) GenerateMovementReport(context.Context, []*entity.MovementDetails, time.Time) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

func newTestApp(store *movementtest.Store, jwtSecret string) *fiber.App {
	validator := movement.NewValidator(store)
	resolver := movement.NewItemResolver(store, nil)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RegisterMovement: movement.NewRegisterMovementUseCase(store, resolver, validator),
		UpdateMovement:   movement.NewUpdateMovementUseCase(store, resolver, validator),
		DeleteMovement:   movement.NewDeleteMovementUseCase(store, validator),
		MovementQuery:    movement.NewQueryUseCase(store, validator, reportStub{}),
		Status:           status.NewUseCase(fakeInspector{}, fakeMigrator{}),
		JWTSecret:        jwtSecret,
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCreate_SumaStockYSeLista(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	t1 := store.AddToner("T1", 0)
	app := newTestApp(store, "")

	resp := send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: p1, ItemID: t1, Quantity: 10})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.MovementIDResponse](t, resp)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 10, store.Stock(entity.Toner(t1)))

	list := decode[[]dto.MovementDetailsResponse](t, send(t, app, http.MethodGet, "/api/v1/movements", nil))
	require.Len(t, list, 1)
	assert.Equal(t, 10, list[0].Quantity)
	assert.Equal(t, t1, list[0].Item.ID)
	assert.Equal(t, "Recepción", list[0].Printer.Name)
}

func TestList_Paginacion(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	t1 := store.AddToner("T1", 0)
	app := newTestApp(store, "")
	for q := 1; q <= 3; q++ {
		resp := send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: p1, ItemID: t1, Quantity: q})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	list := decode[[]dto.MovementDetailsResponse](t, send(t, app, http.MethodGet, "/api/v1/movements?limit=2&offset=1", nil))
	assert.Len(t, list, 2)

	for _, path := range []string{
		"/api/v1/movements?limit=abc",
		"/api/v1/movements?offset=1.5",
		"/api/v1/movements?limit=-1",
	} {
		resp := send(t, app, http.MethodGet, path, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		body := decode[dto.ErrorResponse](t, resp)
		assert.Equal(t, "VALIDATION_ERROR", body.Code, path)
	}
}

func TestCreate_CantidadCero400(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	t1 := store.AddToner("T1", 7)
	app := newTestApp(store, "")

	resp := send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: p1, ItemID: t1, Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_QUANTITY", body.Code)
	assert.Equal(t, 7, store.Stock(entity.Toner(t1)))
}

func TestCreate_ItemDesconocido404(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	app := newTestApp(store, "")

	resp := send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: p1, ItemID: uuid.NewString(), Quantity: 5})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ITEM_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
	assert.Empty(t, store.Movements())
}

func TestCreate_IDMalformado400(t *testing.T) {
	store := movementtest.NewStore()
	app := newTestApp(store, "")

	resp := send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: "p1", ItemID: "unknown-id", Quantity: 5})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.NotNil(t, body.Details)
}

func TestCreate_JSONInvalido(t *testing.T) {
	app := newTestApp(movementtest.NewStore(), "")

	resp := send(t, app, http.MethodPost, "/api/v1/movements", `{"printer_id":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, resp).Code)
}

func TestUpdateDelete(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	t1 := store.AddToner("T1", 0)
	app := newTestApp(store, "")

	id := decode[dto.MovementIDResponse](t, send(t, app, http.MethodPost, "/api/v1/movements",
		dto.CreateMovementRequest{PrinterID: p1, ItemID: t1, Quantity: 3})).ID

	resp := send(t, app, http.MethodPut, "/api/v1/movements", map[string]any{"id": id, "quantity": 8})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, decode[dto.MovementIDResponse](t, resp).ID)
	assert.Equal(t, 3, store.Stock(entity.Toner(t1)))

	resp = send(t, app, http.MethodPut, "/api/v1/movements", map[string]any{"id": id, "quantity": 8})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp = send(t, app, http.MethodPut, "/api/v1/movements", map[string]any{"id": uuid.NewString(), "quantity": 1})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = send(t, app, http.MethodDelete, "/api/v1/movements", map[string]any{"id": id})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, store.Stock(entity.Toner(t1)))

	resp = send(t, app, http.MethodDelete, "/api/v1/movements", map[string]any{"id": id})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ID_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestGetCountReport(t *testing.T) {
	store := movementtest.NewStore()
	p1 := store.AddPrinter("Recepción", "M404")
	t1 := store.AddToner("T1", 0)
	d1 := store.AddDrum("D1", 0)
	app := newTestApp(store, "")

	id := decode[dto.MovementIDResponse](t, send(t, app, http.MethodPost, "/api/v1/movements",
		dto.CreateMovementRequest{PrinterID: p1, ItemID: t1, Quantity: 2})).ID
	send(t, app, http.MethodPost, "/api/v1/movements", dto.CreateMovementRequest{PrinterID: p1, ItemID: d1, Quantity: 1})

	assert.Equal(t, 2, decode[int](t, send(t, app, http.MethodGet, "/api/v1/movements/count", nil)))
	assert.Equal(t, 1, decode[int](t, send(t, app, http.MethodGet, "/api/v1/movements/count?kind=drum", nil)))

	details := decode[dto.MovementDetailsResponse](t, send(t, app, http.MethodGet, "/api/v1/movements/"+id, nil))
	assert.Equal(t, "toner", details.Item.Kind)
	require.NotNil(t, details.Item.Stock)
	assert.Equal(t, 2, *details.Item.Stock)

	resp := send(t, app, http.MethodGet, "/api/v1/movements/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/movements/no-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/movements?kind=cartucho", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/movements/report", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestStatusYMigraciones(t *testing.T) {
	app := newTestApp(movementtest.NewStore(), "")

	st := decode[dto.StatusResponse](t, send(t, app, http.MethodGet, "/api/v1/status", nil))
	assert.Equal(t, "16.2", st.Dependencies.Database.Version)

	resp := send(t, app, http.MethodGet, "/api/v1/migrations", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.MigrationStatusResponse](t, resp).Applied)

	resp = send(t, app, http.MethodPost, "/api/v1/migrations", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, decode[dto.MigrationStatusResponse](t, resp).Applied)

	resp = send(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ConJWT(t *testing.T) {
	store := movementtest.NewStore()
	app := newTestApp(store, testJWTSecret)

	resp := send(t, app, http.MethodGet, "/api/v1/movements", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/api/v1/movements", nil, "Authorization", tokenForRole(t, "operator"))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/migrations", nil, "Authorization", tokenForRole(t, "operator"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/api/v1/migrations", nil, "Authorization", tokenForRole(t, "admin"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "/health es público")
}
