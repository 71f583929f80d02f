package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armasset/ledger-api/internal/application/auth"
	"github.com/armasset/ledger-api/internal/application/ledger"
	"github.com/armasset/ledger-api/internal/application/metrics"
	"github.com/armasset/ledger-api/internal/application/usecase"
	"github.com/armasset/ledger-api/internal/domain/entity"
	infraaudit "github.com/armasset/ledger-api/internal/infrastructure/audit"
	"github.com/armasset/ledger-api/internal/infrastructure/memory"
	apphttp "github.com/armasset/ledger-api/internal/interfaces/http"
	pkgjwt "github.com/armasset/ledger-api/pkg/jwt"
	"github.com/armasset/ledger-api/pkg/logger"
)

// api arma la aplicación completa sobre el almacén en memoria.
type api struct {
	app   *fiber.App
	store *memory.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()
	store := memory.NewStore()

	baseRepo := memory.NewBaseRepository(store)
	assetRepo := memory.NewAssetRepository(store)
	userRepo := memory.NewUserRepository(store)
	auditRepo := memory.NewAuditLogRepository(store)
	reads := memory.Repos(store)

	auditor := infraaudit.NewSink(auditRepo, logger.Nop())
	engine := ledger.NewService(memory.NewTxRunner(store), reads, assetRepo, baseRepo, auditor)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Engine:    engine,
		Queries:   usecase.NewMovementQueryUseCase(reads),
		MetricsUC: metrics.NewUseCase(reads.Purchases, reads.Transfers, reads.Assignments, reads.Expenditures),
		BaseUC:    usecase.NewBaseUseCase(baseRepo, auditor),
		AssetUC:   usecase.NewAssetUseCase(assetRepo, baseRepo, auditor),
		AuthUC: auth.NewAuthUseCase(userRepo, baseRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		AuditRepo: auditRepo,
		JWTSecret: testJWTSecret,
	})
	return &api{app: app, store: store}
}

// token genera un JWT directo con el rol y la base indicados.
func (a *api) token(t *testing.T, role, baseID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, uuid.New().String(), baseID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func (a *api) do(t *testing.T, method, path, authHeader string, body any) *http.Response {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := a.app.Test(req, -1)
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

// createBase y createAsset vía API como Admin.
func (a *api) createBase(t *testing.T, admin, name string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/bases", admin, fiber.Map{"name": name, "location": "Zona " + name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)["id"].(string)
}

func (a *api) createAsset(t *testing.T, admin, serial, baseID string) string {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/assets", admin, fiber.Map{
		"type": entity.AssetTypeWeapon, "serial": serial, "description": "prueba", "base_id": baseID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[map[string]any](t, resp)["id"].(string)
}

func TestAPI_RegistroYLogin(t *testing.T) {
	a := newAPI(t)

	resp := a.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Oficial Uno", "email": "oficial@military.local", "password": "secreta123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	user := decode[map[string]any](t, resp)
	assert.Equal(t, entity.RoleLogisticsOfficer, user["role"], "rol por defecto")

	// Email duplicado
	resp = a.do(t, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"name": "Otro", "email": "oficial@military.local", "password": "x",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Login correcto devuelve token utilizable
	resp = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "oficial@military.local", "password": "secreta123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[map[string]any](t, resp)
	token := "Bearer " + login["token"].(string)

	resp = a.do(t, http.MethodGet, "/api/bases", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Password incorrecta
	resp = a.do(t, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"email": "oficial@military.local", "password": "mala",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_RBACEnAltas(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")
	logistics := a.token(t, entity.RoleLogisticsOfficer, "")
	commander := a.token(t, entity.RoleBaseCommander, uuid.New().String())

	// Solo Admin crea bases y activos.
	resp := a.do(t, http.MethodPost, "/api/bases", logistics, fiber.Map{"name": "Base X", "location": "X"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	baseID := a.createBase(t, admin, "Base Norte")

	resp = a.do(t, http.MethodPost, "/api/assets", commander, fiber.Map{
		"type": entity.AssetTypeWeapon, "serial": "WPN-X", "base_id": baseID,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	assetID := a.createAsset(t, admin, "WPN-001", baseID)

	// Un Base Commander no registra compras ni traslados.
	resp = a.do(t, http.MethodPost, "/api/purchases", commander, fiber.Map{
		"asset_id": assetID, "base_id": baseID, "quantity": 5, "date": "2026-05-01",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	// Un Logistics Officer no registra asignaciones ni bajas.
	resp = a.do(t, http.MethodPost, "/api/assignments", logistics, fiber.Map{
		"asset_id": assetID, "base_id": baseID, "personnel_id": uuid.New().String(), "quantity": 1, "date": "2026-05-01",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_FlujoCompraTrasladoSaldo(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	baseC := a.createBase(t, admin, "Base Sur")
	assetID := a.createAsset(t, admin, "AMMO-001", baseB)

	resp := a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 10, "date": "2026-05-01",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodPost, "/api/transfers", admin, fiber.Map{
		"asset_id": assetID, "from_base_id": baseB, "to_base_id": baseC, "quantity": 3, "date": "2026-05-02",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodGet, fmt.Sprintf("/api/assets/%s/balance?base_id=%s", assetID, baseB), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance := decode[map[string]any](t, resp)
	assert.Equal(t, float64(7), balance["available"])

	resp = a.do(t, http.MethodGet, fmt.Sprintf("/api/assets/%s/balance?base_id=%s", assetID, baseC), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance = decode[map[string]any](t, resp)
	assert.Equal(t, float64(3), balance["available"])

	// Fecha con coerción prohibida: o parsea o 400.
	resp = a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 1, "date": "01/05/2026",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAPI_StockInsuficienteRespondeCifras(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	baseC := a.createBase(t, admin, "Base Sur")
	assetID := a.createAsset(t, admin, "VEH-001", baseB)

	resp := a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 6, "date": "2026-05-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodPost, "/api/transfers", admin, fiber.Map{
		"asset_id": assetID, "from_base_id": baseB, "to_base_id": baseC, "quantity": 8, "date": "2026-05-02",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	assert.Equal(t, float64(6), body["available"])
	assert.Equal(t, float64(8), body["requested"])
}

func TestAPI_FalloDeAlmacenResponde503(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	assetID := a.createAsset(t, admin, "EQP-001", baseB)

	a.store.CreateErr = fmt.Errorf("conexión perdida")
	resp := a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 1, "date": "2026-05-01",
	})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "STORAGE", body["code"])
}

// La visibilidad del Base Commander queda acotada a su base aunque pida otra.
func TestAPI_BaseCommanderAcotadoASuBase(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	baseC := a.createBase(t, admin, "Base Sur")
	assetID := a.createAsset(t, admin, "AMMO-002", baseB)

	resp := a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 10, "date": "2026-05-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	commanderC := a.token(t, entity.RoleBaseCommander, baseC)

	// Pide las compras de B pero solo ve las de C (ninguna).
	resp = a.do(t, http.MethodGet, "/api/purchases?base_id="+baseB, commanderC, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	purchases := decode[[]map[string]any](t, resp)
	assert.Empty(t, purchases)

	commanderB := a.token(t, entity.RoleBaseCommander, baseB)
	resp = a.do(t, http.MethodGet, "/api/purchases", commanderB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	purchases = decode[[]map[string]any](t, resp)
	assert.Len(t, purchases, 1)

	// Métricas: la base solicitada se ignora, manda la del token.
	resp = a.do(t, http.MethodGet, "/api/dashboard/metrics?base_id="+baseB, commanderC, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[map[string]any](t, resp)
	assert.Equal(t, float64(0), summary["closingBalance"])
}

func TestAPI_DashboardMetrics(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	baseC := a.createBase(t, admin, "Base Sur")
	assetID := a.createAsset(t, admin, "WPN-010", baseB)

	for _, ev := range []fiber.Map{
		{"asset_id": assetID, "base_id": baseB, "quantity": 10, "date": "2026-05-01"},
	} {
		resp := a.do(t, http.MethodPost, "/api/purchases", admin, ev)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
	resp := a.do(t, http.MethodPost, "/api/transfers", admin, fiber.Map{
		"asset_id": assetID, "from_base_id": baseB, "to_base_id": baseC, "quantity": 3, "date": "2026-05-05",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodGet, "/api/dashboard/metrics?base_id="+baseB+"&from=2026-05-03&to=2026-05-08", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	summary := decode[map[string]any](t, resp)

	assert.Equal(t, float64(10), summary["openingBalance"])
	assert.Equal(t, float64(7), summary["closingBalance"])
	net := summary["netMovement"].(map[string]any)
	assert.Equal(t, float64(-3), net["total"])
	assert.Equal(t, float64(3), net["transfersOut"])
}

// El log de auditoría es solo para Admin y registra las mutaciones.
func TestAPI_AuditLogSoloAdmin(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")
	logistics := a.token(t, entity.RoleLogisticsOfficer, "")

	baseB := a.createBase(t, admin, "Base Norte")
	assetID := a.createAsset(t, admin, "EQP-002", baseB)

	resp := a.do(t, http.MethodPost, "/api/purchases", admin, fiber.Map{
		"asset_id": assetID, "base_id": baseB, "quantity": 2, "date": "2026-05-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodGet, "/api/audit-logs", logistics, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = a.do(t, http.MethodGet, "/api/audit-logs", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	logs := decode[[]map[string]any](t, resp)
	require.NotEmpty(t, logs)

	entities := make(map[string]bool)
	for _, l := range logs {
		entities[l["entity"].(string)] = true
	}
	assert.True(t, entities[entity.AuditEntityBase])
	assert.True(t, entities[entity.AuditEntityAsset])
	assert.True(t, entities[entity.AuditEntityPurchase])
}

// Un par (activo, base) sin eventos responde saldo 0, no 404.
func TestAPI_SaldoSinEventosEsCero(t *testing.T) {
	a := newAPI(t)
	admin := a.token(t, entity.RoleAdmin, "")

	baseB := a.createBase(t, admin, "Base Norte")
	assetID := a.createAsset(t, admin, "VEH-002", baseB)

	resp := a.do(t, http.MethodGet, fmt.Sprintf("/api/assets/%s/balance?base_id=%s", assetID, baseB), admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	balance := decode[map[string]any](t, resp)
	assert.Equal(t, float64(0), balance["available"])

	// Activo inexistente sí es 404.
	resp = a.do(t, http.MethodGet, fmt.Sprintf("/api/assets/%s/balance?base_id=%s", uuid.New().String(), baseB), admin, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
