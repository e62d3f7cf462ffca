package wungo

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"time"
)

// Result holds a parsed API response. Exactly one of JSON or XML is
// populated, indicated by Format. The structure is generic on purpose: the
// remote API's schema varies per feature and the caller decides which parts
// to pull out.
type Result struct {
	Format Format
	JSON   map[string]any
	XML    *XMLNode
}

// XMLNode is a generic XML element tree node.
type XMLNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []XMLNode  `xml:",any"`
}

// Find returns the first direct child element with the given local name, or
// nil if there is none.
func (n *XMLNode) Find(name string) *XMLNode {
	if n == nil {
		return nil
	}
	for i := range n.Children {
		if n.Children[i].XMLName.Local == name {
			return &n.Children[i]
		}
	}
	return nil
}

// Text returns the node's character data with surrounding whitespace removed.
func (n *XMLNode) Text() string {
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Content)
}

// parseResponse decodes a 2xx response body per the configured format. The
// remote API reports failures like unknown locations inside a 200 body, so a
// well-formed error payload maps to an API error rather than a Parse error.
func parseResponse(body []byte, format Format) (*Result, *ClientError) {
	switch format {
	case FormatXML:
		return parseXML(body)
	default:
		return parseJSON(body)
	}
}

func parseJSON(body []byte) (*Result, *ClientError) {
	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeParse,
			Message:   "malformed JSON response body",
			Cause:     err,
			Timestamp: time.Now(),
		}
	}

	if msg, found := jsonAPIError(data); found {
		return nil, &ClientError{
			Type:      ErrorTypeAPI,
			Message:   msg,
			Timestamp: time.Now(),
		}
	}

	return &Result{Format: FormatJSON, JSON: data}, nil
}

func parseXML(body []byte) (*Result, *ClientError) {
	var root XMLNode
	if err := xml.Unmarshal(body, &root); err != nil {
		return nil, &ClientError{
			Type:      ErrorTypeParse,
			Message:   "malformed XML response body",
			Cause:     err,
			Timestamp: time.Now(),
		}
	}

	if errNode := root.Find("error"); errNode != nil {
		msg := errNode.Find("description").Text()
		if msg == "" {
			msg = "API reported an error without a description"
		}
		return nil, &ClientError{
			Type:      ErrorTypeAPI,
			Message:   msg,
			Timestamp: time.Now(),
		}
	}

	return &Result{Format: FormatXML, XML: &root}, nil
}

// jsonAPIError extracts response.error.description from a decoded JSON body.
func jsonAPIError(data map[string]any) (string, bool) {
	respObj, ok := data["response"].(map[string]any)
	if !ok {
		return "", false
	}
	errObj, ok := respObj["error"].(map[string]any)
	if !ok {
		return "", false
	}
	if desc, ok := errObj["description"].(string); ok && desc != "" {
		return desc, true
	}
	return "API reported an error without a description", true
}
