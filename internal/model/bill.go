package model

// Bill mirrors the bills table. Services is the flattened line-item summary,
// not a normalized child table.
type Bill struct {
	ID        int64   `db:"id" json:"id"`
	PatientID int64   `db:"patient_id" json:"patient_id"`
	Services  string  `db:"services" json:"services"`
	Total     float64 `db:"total" json:"total"`
	Date      string  `db:"date" json:"date"`
}

// LineItemInput is one raw service row from the billing form. Quantity and
// price arrive as text; rows that fail to parse are dropped, not rejected.
type LineItemInput struct {
	Service  string `json:"service"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
}

// LineItem is a parsed, accepted service row.
type LineItem struct {
	Service   string  `json:"service"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"line_total"`
}

// ComposeBillRequest carries the billing form submission. Items is not
// validated here: an empty or all-invalid list surfaces as NoServices after
// filtering, not as a validation error.
type ComposeBillRequest struct {
	Patient string          `json:"patient" validate:"required"`
	Items   []LineItemInput `json:"items"`
}

// ComposedBill is the billing result: the persisted row plus the rendered
// document location (empty when rendering failed; the row is kept either way).
type ComposedBill struct {
	Bill         *Bill      `json:"bill"`
	Items        []LineItem `json:"items"`
	DocumentPath string     `json:"document_path,omitempty"`
	RenderError  string     `json:"render_error,omitempty"`
}
