package stats

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type fakeStatsService struct{}

func (fakeStatsService) TopCustomers(ctx context.Context, dateToken string, limit int) ([]CustomerCount, bool, error) {
	return []CustomerCount{{Name: "Acme Logistics", Count: 7}}, false, nil
}

func (fakeStatsService) TopCities(ctx context.Context, dateToken string, limit int) ([]CityCount, bool, error) {
	return []CityCount{{City: "Dubai", Count: 3}}, true, nil
}

func (fakeStatsService) ShipmentsByCity(ctx context.Context, city string, limit int) ([]CityCount, error) {
	return []CityCount{}, nil
}

func (fakeStatsService) AverageWeight(ctx context.Context, dateToken string) (float64, int, error) {
	return 12.5, 240, nil
}

func (fakeStatsService) Total(ctx context.Context, dateToken string) (int, error) {
	return 9000, nil
}

func newTestApp() *fiber.App {
	app := fiber.New()
	api := NewStatsApi(NewStatsController(fakeStatsService{}))
	api.Setup(app)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) map[string]interface{} {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("GET %s: status %d", path, resp.StatusCode)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return body
}

func TestRankingRoutes(t *testing.T) {
	app := newTestApp()

	body := getJSON(t, app, "/api/customers/top")
	rows, ok := body["data"].([]interface{})
	if !ok || len(rows) != 1 {
		t.Errorf("customers body = %v", body)
	}

	body = getJSON(t, app, "/api/cities/top?date_filter=total")
	if body["note"] == nil {
		t.Errorf("sampled ranking missing note: %v", body)
	}
}

func TestAverageWeightEnvelope(t *testing.T) {
	app := newTestApp()

	body := getJSON(t, app, "/api/stats/average-weight?date_filter=today")
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data not nested: %v", body)
	}
	if data["average_weight"] != 12.5 {
		t.Errorf("average_weight = %v", data["average_weight"])
	}
	if data["total_shipments"] != float64(240) {
		t.Errorf("total_shipments = %v", data["total_shipments"])
	}
	if body["date_filter"] != "today" {
		t.Errorf("date_filter = %v", body["date_filter"])
	}
}

func TestTotalEnvelope(t *testing.T) {
	app := newTestApp()

	body := getJSON(t, app, "/api/stats/total")
	data, ok := body["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("data not nested: %v", body)
	}
	if data["total"] != float64(9000) {
		t.Errorf("total = %v", data["total"])
	}
}
