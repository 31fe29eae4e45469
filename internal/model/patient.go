package model

// Patient mirrors the patients table. Name is not unique; ID is the stable
// identifier.
type Patient struct {
	ID              int64  `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Age             int    `db:"age" json:"age"`
	Gender          string `db:"gender" json:"gender"`
	Contact         string `db:"contact" json:"contact"`
	Address         string `db:"address" json:"address"`
	DateOfAdmission string `db:"date_of_admission" json:"date_of_admission"`
}

// PatientRequest carries the raw form input for create and update. Age arrives
// as text and is parsed by the service.
type PatientRequest struct {
	Name            string `json:"name" validate:"required"`
	Age             string `json:"age" validate:"required"`
	Gender          string `json:"gender"`
	Contact         string `json:"contact"`
	Address         string `json:"address"`
	DateOfAdmission string `json:"date_of_admission"`
}

// PatientSummary is the lookup panel line: who the identifier resolved to.
type PatientSummary struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Age     int    `db:"age" json:"age"`
	Contact string `db:"contact" json:"contact"`
}
