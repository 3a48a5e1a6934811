package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/agency-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/agency-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testCompany   = "Agencia Test"
	testIssuer    = "agency-pro-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con ActorMiddleware y un
// handler dummy que devuelve el actor resuelto (claims o fallback de query).
func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", apphttp.ActorMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		actor := apphttp.RequestActor(c)
		return c.JSON(fiber.Map{
			"id":   actor.ID.String(),
			"role": actor.Role,
		})
	})
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testCompany, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeActor(t *testing.T, resp *http.Response) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ActorMiddleware — resolución del principal
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: Token válido → el actor sale de los claims.
func TestActorMiddleware_TokenValido_ActorDesdeClaims(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/whoami", tokenForRole(t, "agencyadmin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeActor(t, resp)
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, "agencyadmin", body["role"])
}

// Caso 2: Sin header Authorization → la petición continúa y el actor sale
// del descriptor adminId/adminRole de la query.
func TestActorMiddleware_SinHeader_FallbackQuery(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/whoami?adminId=7&adminRole=superadmin", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeActor(t, resp)
	assert.Equal(t, "7", body["id"])
	assert.Equal(t, "superadmin", body["role"])
}

// Caso 3: Con token válido, los claims pisan al descriptor de la query.
func TestActorMiddleware_ClaimsPisanQuery(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/whoami?adminId=7&adminRole=superadmin", tokenForRole(t, "staff"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeActor(t, resp)
	assert.Equal(t, testUserID, body["id"])
	assert.Equal(t, "staff", body["role"])
}

// Caso 4: Token malformado → HTTP 401.
func TestActorMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/whoami", "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: Header con formato incorrecto → HTTP 401.
func TestActorMiddleware_FormatoIncorrecto_Retorna401(t *testing.T) {
	app := buildTestApp()
	resp := doRequest(t, app, "/whoami", "Basic dXNlcjpwYXNz")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token expirado → HTTP 401.
func TestActorMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "client", testCompany, testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "/whoami", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "client", testCompany, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, role, company, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, "client", role)
	assert.Equal(t, testCompany, company)
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "staff", testCompany, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
