package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"homequote/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// seedTestCatalog inserts a small price list, module catalog and mandatory
// component set covering the pricing paths the handler tests exercise.
func seedTestCatalog(t *testing.T, app *pocketbase.PocketBase) {
	t.Helper()

	testhelpers.CreatePriceEntry(t, app, "Lights", "", "", 450, 1)
	testhelpers.CreatePriceEntry(t, app, "Lights", "RGB", "", 1850, 2)
	testhelpers.CreatePriceEntry(t, app, "Curtain & Blinds", "", "", 8500, 3)
	testhelpers.CreatePriceEntry(t, app, "Wiring", "", "", 18, 4)
	testhelpers.CreatePriceEntry(t, app, "Panel", "", "lumio", 14500, 5)
	testhelpers.CreatePriceEntry(t, app, "Panel", "", "tisio", 21000, 6)

	testhelpers.CreateModuleType(t, app, "actuator", "Actuator 8ch", 8, 9800, 1)
	testhelpers.CreateModuleType(t, app, "actuator", "Actuator 16ch", 16, 16500, 2)
	testhelpers.CreateModuleType(t, app, "lighting", "Lighting Bus 64ch", 64, 42000, 3)

	testhelpers.CreateWiredComponent(t, app, "Automation Processor", 58000, 1)
	testhelpers.CreateWiredComponent(t, app, "DIN Rail Power Supply", 7200, 2)
}
