package model

// Appointment links a patient and a doctor at a date and time. There is no
// status column: done and cancelled appointments are deleted.
type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Date      string `db:"date" json:"date"`
	Time      string `db:"time" json:"time"`
	Purpose   string `db:"purpose" json:"purpose"`
}

// AppointmentRequest carries raw form input. Patient accepts a numeric id or
// a name; the service resolves it before any row is written.
type AppointmentRequest struct {
	Patient  string `json:"patient" validate:"required"`
	DoctorID int64  `json:"doctor_id" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Time     string `json:"time" validate:"required"`
	Purpose  string `json:"purpose" validate:"required"`
}

// AppointmentRow is the joined listing the schedule table shows.
type AppointmentRow struct {
	ID             int64  `db:"id" json:"id"`
	PatientName    string `db:"patient_name" json:"patient_name"`
	PatientContact string `db:"patient_contact" json:"patient_contact"`
	DoctorName     string `db:"doctor_name" json:"doctor_name"`
	Date           string `db:"date" json:"date"`
	Time           string `db:"time" json:"time"`
	Purpose        string `db:"purpose" json:"purpose"`
}
