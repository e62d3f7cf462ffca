package wungo

import (
	"testing"
)

func TestParseJSON(t *testing.T) {
	body := []byte(`{"response": {}, "current_observation": {"temp_f": 50, "weather": "Clear"}}`)

	result, err := parseResponse(body, FormatJSON)
	if err != nil {
		t.Fatalf("parseResponse returned error: %v", err)
	}

	if result.Format != FormatJSON {
		t.Errorf("Expected json format, got %s", result.Format)
	}
	if result.XML != nil {
		t.Error("Expected XML field to be nil for a JSON result")
	}

	obs, ok := result.JSON["current_observation"].(map[string]any)
	if !ok {
		t.Fatal("Expected current_observation object")
	}
	if obs["weather"] != "Clear" {
		t.Errorf("Expected weather=Clear, got %v", obs["weather"])
	}
}

func TestParseJSONMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"truncated object", `{"response": `},
		{"not an object", `[1, 2, 3]`},
		{"empty body", ``},
		{"html error page", `<html><body>502 Bad Gateway</body></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseResponse([]byte(tt.body), FormatJSON)
			if err == nil {
				t.Fatal("Expected parse error")
			}
			if err.Type != ErrorTypeParse {
				t.Errorf("Expected Parse error type, got %s", err.Type)
			}
		})
	}
}

func TestParseJSONAPIError(t *testing.T) {
	body := []byte(`{"response": {"error": {"type": "querynotfound", "description": "No cities match your search query"}}}`)

	_, err := parseResponse(body, FormatJSON)
	if err == nil {
		t.Fatal("Expected API error")
	}
	if err.Type != ErrorTypeAPI {
		t.Errorf("Expected API error type, got %s", err.Type)
	}
	if err.Message != "No cities match your search query" {
		t.Errorf("Expected API error description, got %q", err.Message)
	}
}

func TestParseJSONAPIErrorWithoutDescription(t *testing.T) {
	body := []byte(`{"response": {"error": {"type": "keynotfound"}}}`)

	_, err := parseResponse(body, FormatJSON)
	if err == nil {
		t.Fatal("Expected API error")
	}
	if err.Type != ErrorTypeAPI {
		t.Errorf("Expected API error type, got %s", err.Type)
	}
}

func TestParseXML(t *testing.T) {
	body := []byte(`<response>
		<current_observation>
			<temp_f>50.0</temp_f>
			<display_location>
				<city>Minneapolis</city>
			</display_location>
		</current_observation>
	</response>`)

	result, err := parseResponse(body, FormatXML)
	if err != nil {
		t.Fatalf("parseResponse returned error: %v", err)
	}

	if result.Format != FormatXML {
		t.Errorf("Expected xml format, got %s", result.Format)
	}
	if result.JSON != nil {
		t.Error("Expected JSON field to be nil for an XML result")
	}

	obs := result.XML.Find("current_observation")
	if obs == nil {
		t.Fatal("Expected current_observation element")
	}
	if got := obs.Find("temp_f").Text(); got != "50.0" {
		t.Errorf("Expected temp_f=50.0, got %q", got)
	}
	if got := obs.Find("display_location").Find("city").Text(); got != "Minneapolis" {
		t.Errorf("Expected city=Minneapolis, got %q", got)
	}
}

func TestParseXMLMalformed(t *testing.T) {
	_, err := parseResponse([]byte(`<response><unclosed>`), FormatXML)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if err.Type != ErrorTypeParse {
		t.Errorf("Expected Parse error type, got %s", err.Type)
	}
}

func TestParseXMLAPIError(t *testing.T) {
	body := []byte(`<response><error><type>querynotfound</type><description>Unknown location</description></error></response>`)

	_, err := parseResponse(body, FormatXML)
	if err == nil {
		t.Fatal("Expected API error")
	}
	if err.Type != ErrorTypeAPI {
		t.Errorf("Expected API error type, got %s", err.Type)
	}
	if err.Message != "Unknown location" {
		t.Errorf("Expected API error description, got %q", err.Message)
	}
}

func TestXMLNodeFindMissing(t *testing.T) {
	result, err := parseResponse([]byte(`<response><alerts /></response>`), FormatXML)
	if err != nil {
		t.Fatalf("parseResponse returned error: %v", err)
	}

	if result.XML.Find("forecast") != nil {
		t.Error("Expected nil for a missing child element")
	}

	// Find and Text are nil-safe so lookups can be chained.
	if got := result.XML.Find("forecast").Find("txt_forecast").Text(); got != "" {
		t.Errorf("Expected empty text from missing chain, got %q", got)
	}
}
