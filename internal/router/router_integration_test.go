//go:build integration

package router_test

// Integration tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/edulopezdev/barberiaLopez/internal/config"
	"github.com/edulopezdev/barberiaLopez/internal/infra"
	"github.com/edulopezdev/barberiaLopez/internal/model"
	"github.com/edulopezdev/barberiaLopez/internal/router"
	"github.com/edulopezdev/barberiaLopez/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Setup ────────────────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("barberia_test"),
		tcPostgres.WithUsername("barberia"),
		tcPostgres.WithPassword("barberia"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8080,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 3,
		ImageStoragePath:   t.TempDir(),
		PDFStoragePath:     t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	require.NoError(t, infra.RunMigrations(db))

	rdb, err := infra.NewRedis(cfg.RedisURL, cfg.WorkerPoolSize)
	require.NoError(t, err)

	// Seed admin
	hash, err := bcrypt.GenerateFromPassword([]byte("admin1234"), 12)
	require.NoError(t, err)
	hashStr := string(hash)
	require.NoError(t, db.Create(&model.Usuario{
		Nombre:          "Admin Test",
		Email:           "admin@barberia.test",
		PasswordHash:    &hashStr,
		RolID:           model.RolAdministradorID,
		AccedeAlSistema: true,
		Activo:          true,
	}).Error)

	dispatcher := worker.NewDispatcher(rdb)
	r := router.New(cfg, db, rdb, dispatcher)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"email": "admin@barberia.test", "password": "admin1234"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		Token string `json:"token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.Token)

	return &testEnv{server: srv, token: loginBody.Token}
}

// crearCliente registers a customer and returns its id.
func crearCliente(t *testing.T, env *testEnv, email string) uint {
	t.Helper()
	resp := do(t, env.server, "POST", "/api/usuarios",
		jsonBody(t, map[string]any{
			"nombre": "Cliente Test",
			"email":  email,
			"rolId":  model.RolClienteID,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Usuario struct {
			ID uint `json:"id"`
		} `json:"usuario"`
	}
	decodeJSON(t, resp, &body)
	return body.Usuario.ID
}

// crearServicio creates a non-stock catalog row through the multipart
// endpoint, without attaching an image.
func crearServicio(t *testing.T, env *testEnv, nombre string, precio string) uint {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("nombre", nombre))
	require.NoError(t, mw.WriteField("precio", precio))
	require.NoError(t, mw.WriteField("esAlmacenable", "false"))
	require.NoError(t, mw.Close())

	req, err := http.NewRequest("POST", env.server.URL+"/api/productosservicios", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+env.token)
	resp, err := env.server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Producto struct {
			ID uint `json:"id"`
		} `json:"producto"`
	}
	decodeJSON(t, resp, &body)
	return body.Producto.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

// Full cycle: login, alta de cliente y servicio, atención y pago completo.
func TestIntegracionCicloCompleto(t *testing.T) {
	env := setupTestEnv(t)

	clienteID := crearCliente(t, env, "cliente@barberia.test")
	servicioID := crearServicio(t, env, "Corte clásico", "1500")

	atencionResp := do(t, env.server, "POST", "/api/atencion",
		jsonBody(t, map[string]any{
			"clienteId": clienteID,
			"detalles": []map[string]any{
				{"productoServicioId": servicioID, "cantidad": 2, "precioUnitario": "1500"},
			},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, atencionResp.StatusCode)
	var atencionBody struct {
		Atencion struct {
			ID    uint   `json:"id"`
			Total string `json:"total"`
		} `json:"atencion"`
	}
	decodeJSON(t, atencionResp, &atencionBody)
	assert.Equal(t, "3000", atencionBody.Atencion.Total)

	pagoResp := do(t, env.server, "POST", "/api/pagos",
		jsonBody(t, map[string]any{
			"atencionId": atencionBody.Atencion.ID,
			"metodoPago": "Efectivo",
			"monto":      "3000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, pagoResp.StatusCode)
	var pagoBody struct {
		Advertencia string `json:"advertencia"`
	}
	decodeJSON(t, pagoResp, &pagoBody)
	assert.Empty(t, pagoBody.Advertencia)

	listResp := do(t, env.server, "GET",
		fmt.Sprintf("/api/pagos/atencion/%d", atencionBody.Atencion.ID), nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)

	// The admin (id 1) registered the atencion; the monthly summary sees it.
	ahora := time.Now()
	resumenResp := do(t, env.server, "GET",
		fmt.Sprintf("/api/atencion/resumen-barbero?barberoId=1&mes=%d&anio=%d", int(ahora.Month()), ahora.Year()),
		nil, env.token)
	require.Equal(t, http.StatusOK, resumenResp.StatusCode)
	var resumenBody struct {
		Resumen struct {
			TotalAtenciones int64 `json:"totalAtenciones"`
		} `json:"resumen"`
	}
	decodeJSON(t, resumenResp, &resumenBody)
	assert.Equal(t, int64(1), resumenBody.Resumen.TotalAtenciones)
}

// A payment past the attendance total is accepted and flagged.
func TestIntegracionPagoExcedente(t *testing.T) {
	env := setupTestEnv(t)

	clienteID := crearCliente(t, env, "cliente2@barberia.test")
	servicioID := crearServicio(t, env, "Arreglo de barba", "800")

	atencionResp := do(t, env.server, "POST", "/api/atencion",
		jsonBody(t, map[string]any{
			"clienteId": clienteID,
			"detalles": []map[string]any{
				{"productoServicioId": servicioID, "cantidad": 1, "precioUnitario": "800"},
			},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, atencionResp.StatusCode)
	var atencionBody struct {
		Atencion struct {
			ID uint `json:"id"`
		} `json:"atencion"`
	}
	decodeJSON(t, atencionResp, &atencionBody)

	pagoResp := do(t, env.server, "POST", "/api/pagos",
		jsonBody(t, map[string]any{
			"atencionId": atencionBody.Atencion.ID,
			"metodoPago": "MercadoPago",
			"monto":      "1000",
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, pagoResp.StatusCode)
	var pagoBody struct {
		Advertencia string `json:"advertencia"`
	}
	decodeJSON(t, pagoResp, &pagoBody)
	assert.NotEmpty(t, pagoBody.Advertencia)
}

// A turno referenced by an atencion cannot be deleted.
func TestIntegracionTurnoProtegido(t *testing.T) {
	env := setupTestEnv(t)

	clienteID := crearCliente(t, env, "cliente3@barberia.test")
	servicioID := crearServicio(t, env, "Corte y barba", "2200")

	turnoResp := do(t, env.server, "POST", "/api/turnos",
		jsonBody(t, map[string]any{
			"fechaHora": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, turnoResp.StatusCode)
	var turnoBody struct {
		Turno struct {
			ID uint `json:"id"`
		} `json:"turno"`
	}
	decodeJSON(t, turnoResp, &turnoBody)

	atencionResp := do(t, env.server, "POST", "/api/atencion",
		jsonBody(t, map[string]any{
			"clienteId": clienteID,
			"turnoId":   turnoBody.Turno.ID,
			"detalles": []map[string]any{
				{"productoServicioId": servicioID, "cantidad": 1, "precioUnitario": "2200"},
			},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, atencionResp.StatusCode)

	delResp := do(t, env.server, "DELETE",
		fmt.Sprintf("/api/turnos/%d", turnoBody.Turno.ID), nil, env.token)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, delResp.StatusCode)
}

// Deleting a user is logical: the row stays, login stops working.
func TestIntegracionBajaLogica(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, "POST", "/api/usuarios",
		jsonBody(t, map[string]any{
			"nombre":          "Barbero Test",
			"email":           "barbero@barberia.test",
			"password":        "barbero1234",
			"rolId":           model.RolBarberoID,
			"accedeAlSistema": true,
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		Usuario struct {
			ID uint `json:"id"`
		} `json:"usuario"`
	}
	decodeJSON(t, resp, &body)

	loginOK := do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"email": "barbero@barberia.test", "password": "barbero1234"}),
		"",
	)
	loginOK.Body.Close()
	require.Equal(t, http.StatusOK, loginOK.StatusCode)

	delResp := do(t, env.server, "DELETE",
		fmt.Sprintf("/api/usuarios/%d", body.Usuario.ID), nil, env.token)
	delResp.Body.Close()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	loginKO := do(t, env.server, "POST", "/api/auth/login",
		jsonBody(t, map[string]string{"email": "barbero@barberia.test", "password": "barbero1234"}),
		"",
	)
	loginKO.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, loginKO.StatusCode)
}
