package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/event-ticketing/internal/codec"
	"github.com/iliyamo/event-ticketing/internal/store"
)

// ExportHandler persists the event graph to the two serialized forms and
// reads them back. POST writes the configured file from the live store;
// GET decodes the file on disk, so the pair exercises a full round-trip
// through either format.
type ExportHandler struct {
	Store    *store.Store
	JSONPath string
	XMLPath  string
}

// NewExportHandler constructs an ExportHandler. The store must be non-nil.
func NewExportHandler(s *store.Store, jsonPath, xmlPath string) *ExportHandler {
	if s == nil {
		panic("nil store passed to NewExportHandler")
	}
	return &ExportHandler{Store: s, JSONPath: jsonPath, XMLPath: xmlPath}
}

// ExportJSON handles POST /v1/export/json: snapshot the store, write the
// JSON export file and return the document that was written.
func (h *ExportHandler) ExportJSON(c echo.Context) error {
	doc := h.Store.Snapshot()
	if err := codec.WriteJSONFile(h.JSONPath, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, doc)
}

// ExportXML handles POST /v1/export/xml: snapshot the store, write the
// XML export file and return the document that was written.
func (h *ExportHandler) ExportXML(c echo.Context) error {
	doc := h.Store.Snapshot()
	if err := codec.WriteXMLFile(h.XMLPath, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	data, err := codec.EncodeXML(doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, data)
}

// GetJSON handles GET /v1/export/json: decode the JSON export file and
// return it.
func (h *ExportHandler) GetJSON(c echo.Context) error {
	doc, err := codec.ReadJSONFile(h.JSONPath)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, doc)
}

// GetXML handles GET /v1/export/xml: decode the XML export file, re-encode
// and return it.
func (h *ExportHandler) GetXML(c echo.Context) error {
	doc, err := codec.ReadXMLFile(h.XMLPath)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	}
	data, err := codec.EncodeXML(doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, data)
}
